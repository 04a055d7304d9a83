package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// AuthHandler handles account and session lifecycle requests.
type AuthHandler struct {
	directory services.DirectoryServicer
	sessions  services.SessionServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(directory services.DirectoryServicer, sessions services.SessionServicer) *AuthHandler {
	return &AuthHandler{directory: directory, sessions: sessions}
}

// RegisterRequest represents the signup request payload. Field-level
// validation beyond presence lives in the directory service so the ordering
// of failures stays deterministic.
type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Handle          string `json:"handle"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest represents a login request payload for either role.
type LoginRequest struct {
	Handle   string `json:"handle" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse represents the authentication response with token.
type SessionResponse struct {
	Token   string         `json:"token"`
	Session models.Session `json:"session"`
}

// Register handles user signup
// @Summary     Register a new user
// @Description Create a user account. Registration does not log the user in.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} models.User "User created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Handle or email already taken"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.directory.RegisterUser(req.FullName, req.Email, req.Handle, req.Password, req.ConfirmPassword)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"handle":    user.Handle,
			"full_name": user.FullName,
			"email":     user.Email,
			"join_date": user.JoinDate.Format("2006-01-02"),
		},
	})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} SessionResponse "User authenticated"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     404 {object} ErrorResponse "Unknown handle"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, models.RoleUser)
}

// AdminLogin handles admin login
// @Summary     Login admin
// @Description Authenticate an admin. An unseen admin handle is created on
// @Description first use with the supplied password.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Admin login credentials"
// @Success     200 {object} SessionResponse "Admin authenticated"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Router      /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, models.RoleAdmin)
}

func (h *AuthHandler) login(c *gin.Context, role models.Role) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	session, err := h.sessions.Authenticate(role, req.Handle, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(session)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"session": session,
	})
}

// Logout ends the active session
// @Summary     Logout
// @Description Clear the active session. Safe to call repeatedly.
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Logged out"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.EndSession()
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// GetProfile returns the authenticated account
// @Summary     Get profile
// @Description Get the authenticated account's details
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Account details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	handle, role, err := getSessionIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	switch role {
	case models.RoleAdmin:
		admin, err := h.directory.FindAdminByHandle(handle)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"account": gin.H{
				"handle":       admin.Handle,
				"display_name": admin.DisplayName,
				"role":         models.RoleAdmin,
			},
		})
	default:
		user, err := h.directory.FindUserByHandle(handle)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"account": gin.H{
				"handle":    user.Handle,
				"full_name": user.FullName,
				"email":     user.Email,
				"join_date": user.JoinDate.Format("2006-01-02"),
				"role":      models.RoleUser,
			},
		})
	}
}
