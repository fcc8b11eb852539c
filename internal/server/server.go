// Package server serves the portfolio page and its supporting routes.
package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YahyaAf/portfolio/internal/analytics"
	"github.com/YahyaAf/portfolio/internal/content"
	"github.com/YahyaAf/portfolio/internal/theme"
)

// Options wires the optional analytics pieces. Nil fields disable them.
type Options struct {
	ImagesDir  string
	Tracker    *analytics.Tracker
	Admin      *analytics.Admin
	TrackLinks bool
}

type Server struct {
	site   *content.Site
	opts   Options
	engine *gin.Engine
}

func New(site *content.Site, opts Options) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	s := &Server{site: site, opts: opts, engine: r}
	s.routes()
	return s, nil
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler { return s.engine }

func (s *Server) routes() {
	r := s.engine
	if s.opts.Tracker != nil {
		r.Use(s.opts.Tracker.Middleware())
	}

	r.StaticFS("/static", http.FS(Static()))
	if s.opts.ImagesDir != "" {
		r.Static("/images", s.opts.ImagesDir)
	}

	r.GET("/", s.handleIndex)
	r.POST("/theme", s.handleTheme)
	r.GET("/go/:slug", s.handleProjectLink)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if s.opts.Admin != nil {
		s.opts.Admin.RegisterRoutes(r)
	}
}

func (s *Server) trackLinks() bool {
	return s.opts.TrackLinks && s.opts.Tracker != nil
}

func (s *Server) handleIndex(c *gin.Context) {
	st := theme.New(theme.NewCookieStorage(c.Writer, c.Request))
	data, err := NewPageData(s.site, st.Resolve(), true, s.trackLinks())
	if err != nil {
		log.Printf("Error preparing page: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// handleTheme flips the cookie-backed preference for clients without the
// wasm runtime.
func (s *Server) handleTheme(c *gin.Context) {
	st := theme.New(theme.NewCookieStorage(c.Writer, c.Request))
	st.Toggle()
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleProjectLink(c *gin.Context) {
	p, ok := s.site.Project(c.Param("slug"))
	if !ok {
		c.String(http.StatusNotFound, "unknown project")
		return
	}
	if s.trackLinks() && c.GetHeader("DNT") != "1" {
		s.opts.Tracker.RecordClick(p.Slug)
	}
	c.Redirect(http.StatusFound, p.RepoURL)
}
