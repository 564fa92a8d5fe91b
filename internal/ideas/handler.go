package ideas

import (
	"errors"
	"net/http"
	"strconv"

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

// RegisterRoutes attaches business idea routes; rg must require a signed-in user.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/business-ideas", h.list)
	rg.POST("/business-ideas/courses", h.courses)
}

// RegisterPublicRoutes attaches routes that need no session.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/courses/search-url", h.searchURL)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, gin.H{"ideas": h.Svc.List()})
}

type coursesRequest struct {
	Index *int                  `json:"index"`
	Idea  *advisor.BusinessIdea `json:"idea"`
}

func (h *Handler) courses(c *gin.Context) {
	var req coursesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	var idea advisor.BusinessIdea
	switch {
	case req.Idea != nil:
		idea = *req.Idea
	case req.Index != nil:
		idea, _ = advisor.IdeaAt(*req.Index)
	default:
		idea, _ = advisor.IdeaAt(0)
	}

	sub := advisor.NewSubmission()
	result, err := h.Svc.Courses(c.Request.Context(), middleware.UserIDFromContext(c), idea, sub)
	if err != nil {
		if errors.Is(err, ErrInvalidIdea) {
			respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load courses", nil)
		return
	}
	respond.OK(c, result)
	middleware.MarkDisplayed(c, sub)
}

func (h *Handler) searchURL(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "title is required", nil)
		return
	}
	respond.OK(c, gin.H{"url": SearchURL(title, c.Query("provider"))})
}

// IndexParam parses the ?idea=N selector, defaulting to 0.
func IndexParam(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
