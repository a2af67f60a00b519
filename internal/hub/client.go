package hub

import "campusvoice/backend/internal/models"

// Client is one realtime subscriber viewing a single complaint. The
// interface hides the transport so the manager can be tested with an
// in-memory client and served by websockets in production.
type Client interface {
	// GetUserID returns the authenticated actor behind the connection.
	GetUserID() string
	// GetComplaintID returns the complaint topic this client watches.
	GetComplaintID() string

	// GetSendChannel returns the channel the manager pushes change
	// events into. Send-only from the manager's side.
	GetSendChannel() chan<- models.Event

	// Run starts the client's transport pumps.
	Run()
	// Close shuts the client down and releases its send channel.
	Close()
}
