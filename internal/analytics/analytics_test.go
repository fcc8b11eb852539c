package analytics

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestStoreStats(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	s.now = fixedClock(now.AddDate(0, 0, -3))
	if err := s.RecordVisit(ctx, "aaaa", "ua", "/"); err != nil {
		t.Fatal(err)
	}
	s.now = fixedClock(now)
	for _, ip := range []string{"aaaa", "bbbb"} {
		if err := s.RecordVisit(ctx, ip, "ua", "/"); err != nil {
			t.Fatal(err)
		}
	}
	for _, slug := range []string{"hrms", "hrms", "youdemy"} {
		if err := s.RecordClick(ctx, slug); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalVisits != 3 || stats.UniqueVisitors != 2 {
		t.Errorf("visits: total=%d unique=%d", stats.TotalVisits, stats.UniqueVisitors)
	}
	if stats.VisitsToday != 2 || stats.VisitsThisWeek != 3 {
		t.Errorf("windows: today=%d week=%d", stats.VisitsToday, stats.VisitsThisWeek)
	}
	if stats.TotalClicks != 3 {
		t.Errorf("expected 3 clicks, got %d", stats.TotalClicks)
	}
	if len(stats.TopLinks) != 2 || stats.TopLinks[0].Slug != "hrms" || stats.TopLinks[0].Clicks != 2 {
		t.Errorf("unexpected top links %+v", stats.TopLinks)
	}
	if len(stats.RecentVisits) != 3 || !stats.RecentVisits[0].Timestamp.Equal(now) {
		t.Errorf("unexpected recent visits %+v", stats.RecentVisits)
	}
}

func TestStoreCleanup(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.now = fixedClock(now.AddDate(-2, 0, 0))
	s.RecordVisit(ctx, "old", "", "/")
	s.now = fixedClock(now.AddDate(0, -1, 0))
	s.RecordVisit(ctx, "recent", "", "/")
	s.now = fixedClock(now)

	n, err := s.Cleanup(ctx, 12)
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 removed, got %d", n)
	}
	visits, _ := s.RecentVisits(ctx, 10)
	if len(visits) != 1 || visits[0].HashedIP != "recent" {
		t.Errorf("unexpected remaining visits %+v", visits)
	}
}

func TestHasher(t *testing.T) {
	h, err := NewHasher()
	if err != nil {
		t.Fatal(err)
	}
	a := h.HashIP("203.0.113.7")
	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %q", a)
	}
	if a != h.HashIP("203.0.113.7") {
		t.Error("hash should be stable within a process")
	}
	if a == h.HashIP("203.0.113.8") {
		t.Error("different addresses should hash differently")
	}

	other, _ := NewHasher()
	if a == other.HashIP("203.0.113.7") {
		t.Error("different salts should hash differently")
	}
}

func TestTrackerMiddleware(t *testing.T) {
	s := openStore(t)
	h, _ := NewHasher()
	tr := NewTracker(s, h)

	r := gin.New()
	r.Use(tr.Middleware())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/", ok)
	r.GET("/static/site.css", ok)
	r.POST("/theme", ok)

	requests := []struct {
		method, path string
		dnt          bool
	}{
		{"GET", "/", false},
		{"GET", "/", true},
		{"GET", "/static/site.css", false},
		{"POST", "/theme", false},
	}
	for _, rq := range requests {
		req := httptest.NewRequest(rq.method, rq.path, nil)
		if rq.dnt {
			req.Header.Set("DNT", "1")
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	tr.RecordClick("hrms")
	tr.Wait()

	stats, err := s.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalVisits != 1 {
		t.Errorf("expected exactly one tracked visit, got %d", stats.TotalVisits)
	}
	if stats.TotalClicks != 1 {
		t.Errorf("expected one click, got %d", stats.TotalClicks)
	}
}

func TestRunCleanupStops(t *testing.T) {
	s := openStore(t)
	h, _ := NewHasher()
	tr := NewTracker(s, h)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tr.RunCleanup(ctx, 12, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunCleanup did not return after cancel")
	}
}

func adminRouter(t *testing.T) (*gin.Engine, *Admin) {
	t.Helper()
	s := openStore(t)
	h, _ := NewHasher()
	a, err := NewAdmin(s, h, "owner", "pw", 12)
	if err != nil {
		t.Fatalf("NewAdmin: %v", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(
		`{{define "admin-login.html"}}login {{.error}}{{end}}` +
			`{{define "admin-dashboard.html"}}visits {{.stats.TotalVisits}}{{end}}` +
			`{{define "admin-error.html"}}{{.error}}{{end}}`,
	)))
	a.RegisterRoutes(r)
	return r, a
}

func TestNewAdminRequiresCredentials(t *testing.T) {
	s := openStore(t)
	h, _ := NewHasher()
	if _, err := NewAdmin(s, h, "owner", "", 12); err == nil {
		t.Error("expected an error without a password")
	}
}

func TestAdminRequiresLogin(t *testing.T) {
	r, _ := adminRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin/dashboard", nil))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/admin/login" {
		t.Errorf("expected redirect to login, got %d %q", w.Code, w.Header().Get("Location"))
	}
}

func TestAdminLoginFlow(t *testing.T) {
	r, a := adminRouter(t)

	bad := url.Values{"username": {"owner"}, "password": {"nope"}}
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(bad.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", w.Code)
	}

	good := url.Values{"username": {"owner"}, "password": {"pw"}}
	req = httptest.NewRequest("POST", "/admin/login", strings.NewReader(good.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect after login, got %d", w.Code)
	}

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			session = c
		}
	}
	if session == nil || session.Value != a.token || !session.HttpOnly {
		t.Fatalf("unexpected session cookie %+v", session)
	}

	req = httptest.NewRequest("GET", "/admin/api/stats", nil)
	req.AddCookie(session)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var stats Stats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	req = httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(session)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "visits 0") {
		t.Errorf("dashboard: %d %q", w.Code, w.Body.String())
	}
}
