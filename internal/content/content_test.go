package content

import (
	"strings"
	"testing"
)

func TestDefaultProjects(t *testing.T) {
	site := Default()
	if len(site.Projects) != 8 {
		t.Fatalf("expected 8 projects, got %d", len(site.Projects))
	}

	want := []string{"Youdemy", "CreateCv", "TakeUrTerrain", "HRMS", "udeconnect", "ToDoList", "FutChampions", "FAKHAR.ma"}
	seen := map[string]bool{}
	for i, p := range site.Projects {
		if p.Title != want[i] {
			t.Errorf("project %d: got %q, want %q", i, p.Title, want[i])
		}
		if seen[p.Slug] {
			t.Errorf("duplicate slug %q", p.Slug)
		}
		seen[p.Slug] = true
		if !strings.HasPrefix(p.RepoURL, "https://github.com/") {
			t.Errorf("%s: unexpected repository %q", p.Title, p.RepoURL)
		}
		if len(p.Tags) == 0 || p.Thumbnail == "" {
			t.Errorf("%s: missing tags or thumbnail", p.Title)
		}
	}
}

func TestProjectLookup(t *testing.T) {
	site := Default()
	p, ok := site.Project("hrms")
	if !ok || p.Title != "HRMS" {
		t.Errorf("Project(hrms) = %+v, %v", p, ok)
	}
	if _, ok := site.Project("missing"); ok {
		t.Error("expected unknown slug to miss")
	}
}

func TestSurname(t *testing.T) {
	if got := Default().Surname(); got != "Afadisse" {
		t.Errorf("got %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	got, err := RenderMarkdown("I'm **bold**\n\t\tand indented")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	html := string(got)
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("expected strong text, got %q", html)
	}
	if strings.Contains(html, "<code>") {
		t.Errorf("indented continuation rendered as code: %q", html)
	}
}

func TestAboutHTML(t *testing.T) {
	paras, err := Default().AboutHTML()
	if err != nil {
		t.Fatalf("AboutHTML: %v", err)
	}
	if len(paras) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(paras))
	}
	if !strings.HasPrefix(string(paras[0]), "<p>") {
		t.Errorf("expected a paragraph, got %q", paras[0])
	}
}
