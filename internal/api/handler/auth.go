package handler

import (
	"errors"
	"net/http"

	"campusvoice/backend/internal/api/middleware"
	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/models"
	"campusvoice/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type signupRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Department string `json:"department"`
	RollNo     string `json:"roll_no"`
}

// Signup registers a new student account and returns a session token.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and a password of at least 8 characters are required"})
		return
	}

	if _, err := h.Storage.GetProfileByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "an account with this email already exists"})
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		respondError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	profile := &models.Profile{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Department:   req.Department,
		RollNo:       req.RollNo,
	}
	if err := h.Storage.CreateProfile(profile); err != nil {
		respondError(c, err)
		return
	}

	token, err := middleware.GenerateToken(h.Cfg.JWTSecret, profile.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "profile": profile})
}

type signinRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signin exchanges credentials for a session token.
func (h *Handler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	profile, err := h.Storage.GetProfileByEmail(req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(h.Cfg.JWTSecret, profile.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	isAdmin, _ := h.Storage.IsAdmin(profile.ID)
	c.JSON(http.StatusOK, gin.H{"token": token, "profile": profile, "is_admin": isAdmin})
}

// Me returns the authenticated actor's profile and role.
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	profile, err := h.Storage.GetProfileByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	isAdmin, err := h.Storage.IsAdmin(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "is_admin": isAdmin})
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

// PasswordResetRequest accepts a reset request. The response is the
// same whether or not the account exists, to avoid enumeration.
func (h *Handler) PasswordResetRequest(c *gin.Context) {
	var req passwordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	if _, err := h.Storage.GetProfileByEmail(req.Email); err == nil {
		logger.Infof("[auth] password reset requested for %s", req.Email)
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "if the account exists, a reset email will be sent"})
}
