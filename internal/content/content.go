// Package content is the static copy of the portfolio: biography,
// skills, projects and contact details.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ProjectEntry describes one project card.
type ProjectEntry struct {
	Slug        string
	Title       string
	Thumbnail   string
	Description string
	// Highlights are shown on the thumbnail overlay.
	Highlights []string
	Tags       []string
	RepoURL    string
}

type SkillGroup struct {
	Name   string
	Skills []string
}

type Language struct {
	Name  string
	Level string
}

// Contact is one way of reaching the author. Href is empty for entries
// that are displayed but not linked. It is a template.URL because tel:
// links are not in html/template's list of safe schemes.
type Contact struct {
	Kind  string
	Label string
	Href  template.URL
}

type Site struct {
	Name          string
	FirstName     string
	Role          string
	Tagline       string
	Portrait      string
	About         []string
	Skills        []SkillGroup
	Languages     []Language
	ProjectsIntro string
	Projects      []ProjectEntry
	ContactIntro  string
	Contacts      []Contact
}

// Default returns the portfolio content.
func Default() *Site {
	return &Site{
		Name:      "Yahya Afadisse",
		FirstName: "Yahya",
		Role:      "Full-Stack Developer",
		Tagline:   "Building clean, functional, and engaging web experiences.",
		Portrait:  "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/1094-1727859809.jpg-ZfUowYSVNXDlWmOQjQfbj9pkapZbFp.jpeg",
		About:     aboutMe,
		Skills: []SkillGroup{
			{Name: "Backend", Skills: []string{"PHP", "Laravel"}},
			{Name: "Frontend", Skills: []string{"JavaScript", "React.js", "Bootstrap", "Tailwind"}},
			{Name: "Database", Skills: []string{"SQL", "MySQL", "NoSQL", "MongoDB"}},
			{Name: "Tools & Methods", Skills: []string{"Git", "GitHub", "Jira", "Trello", "Scrum", "UML"}},
		},
		Languages: []Language{
			{Name: "Arabic", Level: "Native"},
			{Name: "French", Level: "Intermediate"},
			{Name: "English", Level: "Intermediate"},
		},
		ProjectsIntro: projectsIntro,
		Projects:      projects,
		ContactIntro:  contactIntro,
		Contacts: []Contact{
			{Kind: "phone", Label: "+212 694 285 418", Href: "tel:+212694285418"},
			{Kind: "email", Label: "yahyaafadisse92@gmail.com", Href: "mailto:yahyaafadisse92@gmail.com"},
			{Kind: "linkedin", Label: "linkedin.com/in/yahya-afadisse", Href: "https://www.linkedin.com/in/yahya-afadisse-236b022a9/"},
			{Kind: "github", Label: "github.com/YahyaAf", Href: "https://github.com/YahyaAf"},
		},
	}
}

// Project looks up a project by slug.
func (s *Site) Project(slug string) (ProjectEntry, bool) {
	for _, p := range s.Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return ProjectEntry{}, false
}

// Surname is the part of Name after the first name; the header styles
// the two parts differently.
func (s *Site) Surname() string {
	return strings.TrimSpace(strings.TrimPrefix(s.Name, s.FirstName))
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Typographer))

// RenderMarkdown converts one block of copy to HTML. Indentation left by
// Go raw strings is stripped first so continuation lines are not read as
// code blocks.
func RenderMarkdown(src string) (template.HTML, error) {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(strings.Join(lines, "\n")), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// AboutHTML renders every about paragraph.
func (s *Site) AboutHTML() ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(s.About))
	for i, p := range s.About {
		h, err := RenderMarkdown(p)
		if err != nil {
			return nil, fmt.Errorf("about paragraph %d: %w", i, err)
		}
		out = append(out, h)
	}
	return out, nil
}
