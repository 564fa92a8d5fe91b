package pages

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"fedventura-backend/internal/advisor"
	"fedventura-backend/internal/ideas"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageHome          = "home.html"
	pageSignIn        = "signin.html"
	pageSignUp        = "signup.html"
	pageDashboard     = "dashboard.html"
	pageProfile       = "profile.html"
	pageBusinessIdeas = "business_ideas.html"
	pageResources     = "resources.html"
)

var shared = []string{"templates/layout.html", "templates/recommendations.html"}

type courseTier struct {
	Name    string
	Courses []advisor.Course
}

var funcs = template.FuncMap{
	"join": strings.Join,
	"tier": func(name string, courses []advisor.Course) courseTier {
		return courseTier{Name: name, Courses: courses}
	},
	"courseURL": func(c advisor.Course) string {
		if strings.HasPrefix(c.URL, "https://") {
			return c.URL
		}
		return ideas.SearchURL(c.Title, c.Provider)
	},
}

// parseTemplates builds one template set per page so each can define its own content block.
func parseTemplates() (map[string]*template.Template, error) {
	out := make(map[string]*template.Template)
	for _, page := range []string{pageHome, pageSignIn, pageSignUp, pageDashboard, pageProfile, pageBusinessIdeas, pageResources} {
		files := append(append([]string(nil), shared...), "templates/"+page)
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		out[page] = t
	}
	return out, nil
}

// viewer is the signed-in user shown in the navigation.
type viewer struct {
	ID    string
	Email string
	Name  string
}

func (h *Handler) render(c *gin.Context, status int, page, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["User"] = currentViewer(c)
	c.Render(status, render.HTML{Template: h.templates[page], Name: "layout", Data: data})
}
