package profiles

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fedventura-backend/internal/shared/server/middleware"
	"fedventura-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes; rg must require a signed-in user.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
	rg.GET("/profile/location", h.getLocation)
	rg.PUT("/profile/location", h.putLocation)
}

func (h *Handler) me(c *gin.Context) {
	profile, ok := h.load(c)
	if !ok {
		return
	}
	respond.OK(c, profile)
}

func (h *Handler) getLocation(c *gin.Context) {
	profile, ok := h.load(c)
	if !ok {
		return
	}
	respond.OK(c, gin.H{
		"location":       profile.Location,
		"locationCoords": profile.LocationCoords,
	})
}

type locationRequest struct {
	Location string  `json:"location"`
	Coords   *Coords `json:"coords"`
}

func (h *Handler) putLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	err := h.Svc.SaveLocation(c.Request.Context(), userID, req.Location, req.Coords)
	switch {
	case errors.Is(err, ErrInvalidLocation):
		respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
		return
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		return
	case err != nil:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save location", nil)
		return
	}
	respond.OK(c, gin.H{"location": strings.TrimSpace(req.Location), "locationCoords": req.Coords})
}

func (h *Handler) load(c *gin.Context) (Profile, bool) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return Profile{}, false
	}
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return Profile{}, false
	}
	profile, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return Profile{}, false
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return Profile{}, false
	}
	return profile, true
}
