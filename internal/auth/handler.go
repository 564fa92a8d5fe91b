package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fedventura-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc          *Service
	SecureCookie bool
}

func NewHandler(svc *Service, secureCookie bool) *Handler {
	return &Handler{Svc: svc, SecureCookie: secureCookie}
}

// RegisterRoutes attaches the JSON sign-in routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signin", h.signIn)
	rg.POST("/auth/signup", h.signUp)
	rg.POST("/auth/signout", h.signOut)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

func (h *Handler) signIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	session, err := h.Svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(c, err)
		return
	}
	SetSessionCookie(c, session.Token, h.Svc.Signer.TTL(), h.SecureCookie)
	respond.OK(c, session)
}

func (h *Handler) signUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	session, err := h.Svc.SignUp(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		WriteError(c, err)
		return
	}
	SetSessionCookie(c, session.Token, h.Svc.Signer.TTL(), h.SecureCookie)
	respond.JSON(c, http.StatusCreated, session)
}

func (h *Handler) signOut(c *gin.Context) {
	ClearSessionCookie(c, h.SecureCookie)
	c.Status(http.StatusNoContent)
}

// WriteError maps sign-in errors onto the JSON error envelope.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
	case errors.Is(err, ErrInvalidCredentials):
		respond.Error(c, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password.", nil)
	case errors.Is(err, ErrEmailTaken):
		respond.Error(c, http.StatusConflict, "email_taken", "An account with this email already exists.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "sign-in failed", nil)
	}
}

// Message is the user-facing text for a sign-in error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "Please enter a valid email and a password of at least 6 characters."
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, ErrEmailTaken):
		return "An account with this email already exists."
	default:
		return "Something went wrong. Please try again."
	}
}
