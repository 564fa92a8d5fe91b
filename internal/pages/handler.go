package pages

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fedventura-backend/internal/advisor"
	"fedventura-backend/internal/auth"
	"fedventura-backend/internal/ideas"
	"fedventura-backend/internal/questionnaire"
	"fedventura-backend/internal/resources"
	"fedventura-backend/internal/shared/server/middleware"
	"fedventura-backend/internal/shared/telemetry"
)

var oauthErrors = map[string]string{
	"oauth_unavailable": "That sign-in provider is not available right now.",
	"oauth_denied":      "Sign-in was cancelled.",
	"oauth_invalid":     "Your sign-in link expired. Please try again.",
	"oauth_failed":      "We couldn't sign you in with that provider. Please try again.",
}

// Deps are the services the pages read and write through.
type Deps struct {
	Auth          *auth.Service
	Questionnaire *questionnaire.Service
	Ideas         *ideas.Service
	Resources     *resources.Handler
	SecureCookie  bool
}

type Handler struct {
	Deps
	templates map[string]*template.Template
}

func NewHandler(deps Deps) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{Deps: deps, templates: templates}, nil
}

// RegisterRoutes attaches the page routes. r must run the session middleware
// and the gate.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.home)
	r.GET("/signin", h.signInForm)
	r.POST("/signin", h.signIn)
	r.GET("/signup", h.signUpForm)
	r.POST("/signup", h.signUp)
	r.POST("/signout", h.signOut)
	r.GET("/dashboard", h.dashboard)
	r.GET("/profile", h.profileForm)
	r.POST("/profile", h.profileSubmit)
	r.GET("/business-ideas", h.businessIdeas)
	r.GET("/resources", h.resources)
}

func currentViewer(c *gin.Context) viewer {
	return viewer{
		ID:    middleware.UserIDFromContext(c),
		Email: middleware.UserEmailFromContext(c),
		Name:  middleware.UserNameFromContext(c),
	}
}

func (h *Handler) home(c *gin.Context) {
	h.render(c, http.StatusOK, pageHome, "Home", nil)
}

func (h *Handler) signInForm(c *gin.Context) {
	h.render(c, http.StatusOK, pageSignIn, "Sign in", gin.H{"Error": oauthErrors[c.Query("error")]})
}

func (h *Handler) signIn(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	session, err := h.Auth.SignIn(c.Request.Context(), email, c.PostForm("password"))
	if err != nil {
		h.render(c, authStatus(err), pageSignIn, "Sign in", gin.H{"Error": auth.Message(err), "Email": email})
		return
	}
	auth.SetSessionCookie(c, session.Token, h.Auth.Signer.TTL(), h.SecureCookie)
	c.Redirect(http.StatusSeeOther, middleware.DashboardPath)
}

func (h *Handler) signUpForm(c *gin.Context) {
	h.render(c, http.StatusOK, pageSignUp, "Sign up", nil)
}

func (h *Handler) signUp(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	fullName := strings.TrimSpace(c.PostForm("fullName"))
	session, err := h.Auth.SignUp(c.Request.Context(), email, c.PostForm("password"), fullName)
	if err != nil {
		h.render(c, authStatus(err), pageSignUp, "Sign up", gin.H{"Error": auth.Message(err), "Email": email, "FullName": fullName})
		return
	}
	auth.SetSessionCookie(c, session.Token, h.Auth.Signer.TTL(), h.SecureCookie)
	c.Redirect(http.StatusSeeOther, middleware.DashboardPath)
}

func (h *Handler) signOut(c *gin.Context) {
	auth.ClearSessionCookie(c, h.SecureCookie)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) dashboard(c *gin.Context) {
	data := gin.H{}
	saved, err := h.Questionnaire.Latest(c.Request.Context(), middleware.UserIDFromContext(c))
	switch {
	case err == nil:
		data["Saved"] = &saved
	case !errors.Is(err, questionnaire.ErrNotFound):
		telemetry.Error("pages.dashboard_load_failed", map[string]any{
			"error":      err,
			"request_id": c.GetString("requestId"),
		})
		data["Error"] = "We couldn't load your saved recommendations."
	}
	h.render(c, http.StatusOK, pageDashboard, "Dashboard", data)
}

func (h *Handler) profileForm(c *gin.Context) {
	answers := advisor.Answers{}
	if saved, err := h.Questionnaire.Latest(c.Request.Context(), middleware.UserIDFromContext(c)); err == nil && saved.Answers != nil {
		answers = saved.Answers
	}
	h.render(c, http.StatusOK, pageProfile, "Profile", gin.H{
		"Questions": advisor.Questions(),
		"Answers":   answers,
	})
}

func (h *Handler) profileSubmit(c *gin.Context) {
	answers := advisor.Answers{}
	for _, q := range advisor.Questions() {
		answers[q.ID] = c.PostForm(q.ID)
	}
	answers[advisor.KeyCommitmentOther] = c.PostForm(advisor.KeyCommitmentOther)

	sub := advisor.NewSubmission()
	result, err := h.Questionnaire.Submit(c.Request.Context(), middleware.UserIDFromContext(c), answers, sub)
	if err != nil {
		status, msg := http.StatusInternalServerError, "Something went wrong. Please try again."
		if errors.Is(err, advisor.ErrInvalidAnswers) {
			status, msg = http.StatusBadRequest, "Please answer every question."
		}
		h.render(c, status, pageProfile, "Profile", gin.H{
			"Questions": advisor.Questions(),
			"Answers":   answers,
			"Error":     msg,
		})
		return
	}
	h.render(c, http.StatusOK, pageProfile, "Your recommendations", gin.H{
		"Result":  &result,
		"Notices": result.Notices,
	})
	middleware.MarkDisplayed(c, sub)
}

func (h *Handler) businessIdeas(c *gin.Context) {
	idea, selected := advisor.IdeaAt(ideas.IndexParam(c.Query("idea")))
	data := gin.H{
		"Ideas":    h.Ideas.List(),
		"Selected": selected,
	}
	sub := advisor.NewSubmission()
	result, err := h.Ideas.Courses(c.Request.Context(), middleware.UserIDFromContext(c), idea, sub)
	if err != nil {
		data["Error"] = "We couldn't load courses for this idea."
		sub = nil
	} else {
		data["Courses"] = &result
		if result.Notice != "" {
			data["Notices"] = []string{result.Notice}
		}
	}
	h.render(c, http.StatusOK, pageBusinessIdeas, "Business Ideas", data)
	middleware.MarkDisplayed(c, sub)
}

func (h *Handler) resources(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" || !resources.ValidCategory(category) {
		category = resources.CategoryAll
	}
	q := resources.Query{
		Category: category,
		Search:   strings.TrimSpace(c.Query("q")),
	}
	if h.Resources != nil {
		q.UserLocation = h.Resources.UserLocation(c)
	}
	h.render(c, http.StatusOK, pageResources, "Resources", gin.H{
		"Categories":   resources.Categories(),
		"Category":     q.Category,
		"Search":       q.Search,
		"UserLocation": q.UserLocation,
		"Featured":     resources.Featured(),
		"Resources":    resources.Filter(q),
	})
}

func authStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
