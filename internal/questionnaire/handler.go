package questionnaire

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fedventura-backend/internal/advisor"
	"fedventura-backend/internal/shared/server/middleware"
	"fedventura-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches questionnaire routes; rg must require a signed-in user.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questionnaire", h.catalog)
	rg.POST("/questionnaire", h.submit)
	rg.GET("/recommendations", h.recommendations)
}

func (h *Handler) catalog(c *gin.Context) {
	payload := gin.H{"questions": advisor.Questions()}
	if saved, err := h.Svc.Latest(c.Request.Context(), middleware.UserIDFromContext(c)); err == nil {
		payload["answers"] = saved.Answers
	}
	respond.OK(c, payload)
}

type submitRequest struct {
	Answers advisor.Answers `json:"answers"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	sub := advisor.NewSubmission()
	result, err := h.Svc.Submit(c.Request.Context(), middleware.UserIDFromContext(c), req.Answers, sub)
	if err != nil {
		if errors.Is(err, advisor.ErrInvalidAnswers) {
			respond.Error(c, http.StatusBadRequest, "invalid_answers", "Please answer every question.", gin.H{"reason": err.Error()})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate recommendations", nil)
		return
	}
	respond.OK(c, result)
	middleware.MarkDisplayed(c, sub)
}

func (h *Handler) recommendations(c *gin.Context) {
	saved, err := h.Svc.Latest(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no saved recommendations", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load recommendations", nil)
		return
	}
	respond.OK(c, saved)
}
