package resources

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fedventura-backend/internal/shared/server/middleware"
	"fedventura-backend/internal/shared/server/respond"
)

// LocationLookup returns the saved location for a signed-in user.
type LocationLookup interface {
	LocationFor(ctx context.Context, userID string) (string, error)
}

type Handler struct {
	Locations LocationLookup
}

func NewHandler(locations LocationLookup) *Handler {
	return &Handler{Locations: locations}
}

// RegisterRoutes attaches the public resource routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resources", h.list)
}

func (h *Handler) list(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if !ValidCategory(category) {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "unknown category", gin.H{"category": category})
		return
	}
	q := Query{
		Category:     category,
		Search:       c.Query("q"),
		UserLocation: h.UserLocation(c),
	}
	respond.OK(c, gin.H{
		"categories":   Categories(),
		"featured":     Featured(),
		"resources":    Filter(q),
		"userLocation": q.UserLocation,
	})
}

// UserLocation prefers an explicit ?location= and falls back to the signed-in
// user's saved location.
func (h *Handler) UserLocation(c *gin.Context) string {
	if loc := strings.TrimSpace(c.Query("location")); loc != "" {
		return loc
	}
	userID := middleware.UserIDFromContext(c)
	if userID == "" || h.Locations == nil {
		return ""
	}
	loc, err := h.Locations.LocationFor(c.Request.Context(), userID)
	if err != nil {
		return ""
	}
	return loc
}
