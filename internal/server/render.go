package server

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/YahyaAf/portfolio/internal/content"
	"github.com/YahyaAf/portfolio/internal/nav"
	"github.com/YahyaAf/portfolio/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// NavItem is one entry of the header navigation.
type NavItem struct {
	ID     string
	Label  string
	Active bool
}

// PageData is everything index.html needs.
type PageData struct {
	Site  *content.Site
	About []template.HTML
	Nav   []NavItem
	Theme theme.Preference
	// ThemeResolved is false when the stored preference is not known at
	// render time; the toggle is then withheld until the client resolves it.
	ThemeResolved bool
	TrackLinks    bool
	Year          int
}

// ProjectHref is where a project card links to.
func (d PageData) ProjectHref(p content.ProjectEntry) string {
	if d.TrackLinks {
		return "/go/" + p.Slug
	}
	return p.RepoURL
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// Static returns the embedded static assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewPageData builds the view for the given preference. The nav starts
// with Home active; the client tracker takes over once mounted.
func NewPageData(site *content.Site, pref theme.Preference, resolved, trackLinks bool) (PageData, error) {
	about, err := site.AboutHTML()
	if err != nil {
		return PageData{}, err
	}

	items := make([]NavItem, 0, len(nav.Sections))
	for _, s := range nav.Sections {
		items = append(items, NavItem{ID: s.String(), Label: s.Label(), Active: s == nav.Home})
	}

	return PageData{
		Site:          site,
		About:         about,
		Nav:           items,
		Theme:         pref,
		ThemeResolved: resolved,
		TrackLinks:    trackLinks,
		Year:          time.Now().Year(),
	}, nil
}

// Renderer executes the page templates outside of a request, for export.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the portfolio page.
func (r *Renderer) Render(w io.Writer, data PageData) error {
	if err := r.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	return nil
}
