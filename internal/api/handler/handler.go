// Package handler is the HTTP surface of the service: auth, complaint
// CRUD, thread messages, the public survey page, CSV exports and the
// websocket upgrade. Handlers translate between JSON and the domain
// services and map domain errors onto HTTP statuses.
package handler

import (
	"campusvoice/backend/internal/config"
	"campusvoice/backend/internal/hub"
	"campusvoice/backend/internal/lifecycle"
	"campusvoice/backend/internal/storage"
	"campusvoice/backend/internal/survey"
	"campusvoice/backend/internal/thread"
)

// Handler bundles every dependency the routes need.
type Handler struct {
	Lifecycle *lifecycle.Service
	Thread    *thread.Service
	Survey    *survey.Service
	Storage   storage.Storage
	Hub       *hub.ManagerService
	Cfg       *config.Config
}

func NewHandler(lc *lifecycle.Service, th *thread.Service, sv *survey.Service, s storage.Storage, h *hub.ManagerService, cfg *config.Config) *Handler {
	return &Handler{
		Lifecycle: lc,
		Thread:    th,
		Survey:    sv,
		Storage:   s,
		Hub:       h,
		Cfg:       cfg,
	}
}
