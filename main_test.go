package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/Saivya1/Portfolio/internal/config"
	"github.com/Saivya1/Portfolio/internal/contact"
	"github.com/Saivya1/Portfolio/internal/store"
)

const testCert = "AI_Powered_Software_and_System_Design.pdf"

func newTestApp(t *testing.T) (*app, *gin.Engine) {
	t.Helper()

	static := t.TempDir()
	if err := os.MkdirAll(filepath.Join(static, "certs"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{filepath.Join("certs", testCert), "resume.pdf"} {
		if err := os.WriteFile(filepath.Join(static, f), []byte("%PDF-1.4 test"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.Config{
		Port:         8080,
		Mode:         gin.TestMode,
		DBPath:       store.MemoryPath,
		TemplatesDir: "templates",
		StaticDir:    static,
		ImagesDir:    t.TempDir(),
		Contact:      config.Contact{Transport: config.TransportMock},
		Admin:        config.Admin{Username: "owner", Password: "hunter2"},
		Log:          config.Log{Level: "info"},
		Privacy:      config.Privacy{Retention: 365 * 24 * time.Hour},
	}

	st, err := store.Open(context.Background(), store.MemoryPath, store.WithSalt("test"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	a, err := newApp(cfg, st, log.New(io.Discard))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a, newRouter(a)
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHomePageRendersAndTracksVisit(t *testing.T) {
	a, r := newTestApp(t)

	rec := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{a.portfolio.Profile.Name, "--m-from-opacity", `data-threshold="0.2"`, "hx-post=\"/contact\""} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}

	dnt := httptest.NewRequest(http.MethodGet, "/", nil)
	dnt.Header.Set("DNT", "1")
	do(r, dnt)
	do(r, httptest.NewRequest(http.MethodGet, "/privacy", nil))

	a.visits.Wait()
	visits, err := a.store.RecentVisitors(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(visits) != 1 || visits[0].Path != "/" {
		t.Fatalf("expected a single tracked visit to /, got %+v", visits)
	}
}

func TestProjectFilterFragment(t *testing.T) {
	_, r := newTestApp(t)

	rec := do(r, httptest.NewRequest(http.MethodGet, "/projects?category=Embedded", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatal("fragment should not render a full page")
	}
	if got := strings.Count(body, `class="reveal card project"`); got != 1 {
		t.Fatalf("expected 1 embedded project, got %d", got)
	}
}

func TestContactFormFragment(t *testing.T) {
	_, r := newTestApp(t)

	ok := do(r, postForm("/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Nice site"},
	}))
	if !strings.Contains(ok.Body.String(), "Thank you for your message") {
		t.Fatalf("expected success fragment, got %s", ok.Body.String())
	}
	if !strings.Contains(ok.Body.String(), `data-message-id="mock-`) {
		t.Fatalf("expected mock message id, got %s", ok.Body.String())
	}

	bad := do(r, postForm("/contact", url.Values{"name": {"Ada"}}))
	if !strings.Contains(bad.Body.String(), contact.MsgMissingFields) {
		t.Fatalf("expected missing fields error, got %s", bad.Body.String())
	}
}

func TestContactAPI(t *testing.T) {
	a, r := newTestApp(t)

	cases := []struct {
		name   string
		body   string
		status int
		want   contact.Result
	}{
		{
			name:   "invalid email",
			body:   `{"name":"Ada","email":"not-an-email","subject":"Hi","message":"Hello"}`,
			status: http.StatusBadRequest,
			want:   contact.Result{Error: contact.MsgInvalidEmail},
		},
		{
			name:   "missing field",
			body:   `{"name":"Ada","email":"ada@example.com","subject":"","message":"Hello"}`,
			status: http.StatusBadRequest,
			want:   contact.Result{Error: contact.MsgMissingFields},
		},
		{
			name:   "malformed json",
			body:   `{"name":`,
			status: http.StatusBadRequest,
			want:   contact.Result{Error: contact.MsgFailed},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(r, postJSON("/api/contact", tc.body))
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			var got contact.Result
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}

	rec := do(r, postJSON("/api/contact", `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var res contact.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if !res.Success || !strings.HasPrefix(res.MessageID, "mock-") {
		t.Fatalf("unexpected result %+v", res)
	}

	stats, err := a.store.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := map[contact.Outcome]int64{contact.OutcomeSent: 1, contact.OutcomeInvalid: 2}
	if diff := cmp.Diff(want, stats.ContactAttempts); diff != "" {
		t.Fatalf("attempts mismatch (-want +got):\n%s", diff)
	}
}

func TestCertificatesServedAsPDF(t *testing.T) {
	_, r := newTestApp(t)

	rec := do(r, httptest.NewRequest(http.MethodGet, "/certs/"+testCert, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}

	if rec := do(r, httptest.NewRequest(http.MethodGet, "/certs/unknown.pdf", nil)); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown certificate, got %d", rec.Code)
	}

	resume := do(r, httptest.NewRequest(http.MethodGet, "/resume.pdf", nil))
	if resume.Code != http.StatusOK || resume.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("unexpected resume response %d %q", resume.Code, resume.Header().Get("Content-Type"))
	}
}

func TestAdminFlow(t *testing.T) {
	a, r := newTestApp(t)

	rec := do(r, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin/login" {
		t.Fatalf("expected redirect to login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	bad := do(r, postForm("/admin/login", url.Values{"username": {"owner"}, "password": {"nope"}}))
	if bad.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", bad.Code)
	}

	login := do(r, postForm("/admin/login", url.Values{"username": {"owner"}, "password": {"hunter2"}}))
	if login.Code != http.StatusFound {
		t.Fatalf("expected redirect after login, got %d", login.Code)
	}
	var cookie *http.Cookie
	for _, c := range login.Result().Cookies() {
		if c.Name == adminCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != a.adminToken {
		t.Fatal("login did not set the admin cookie")
	}

	authed := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.AddCookie(cookie)
		return do(r, req)
	}

	do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	a.visits.Wait()

	if rec := authed(http.MethodGet, "/admin/dashboard"); rec.Code != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d", rec.Code)
	}

	rec = authed(http.MethodGet, "/admin/api/stats")
	var stats store.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalVisitors != 1 {
		t.Fatalf("expected 1 visitor, got %d", stats.TotalVisitors)
	}

	export := authed(http.MethodGet, "/admin/export/stats")
	if !strings.Contains(export.Header().Get("Content-Disposition"), "admin-stats.json") {
		t.Fatal("export should be an attachment")
	}

	if rec := authed(http.MethodDelete, "/admin/visitors/abc"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", rec.Code)
	}
	if rec := authed(http.MethodDelete, "/admin/visitors/999"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing visitor, got %d", rec.Code)
	}
	id := stats.RecentVisitors[0].ID
	if rec := authed(http.MethodDelete, "/admin/visitors/"+strconv.FormatInt(id, 10)); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting visitor, got %d", rec.Code)
	}

	cleanup := authed(http.MethodPost, "/admin/privacy/cleanup")
	if cleanup.Code != http.StatusOK || !strings.Contains(cleanup.Body.String(), `"removed":0`) {
		t.Fatalf("unexpected cleanup response %d %s", cleanup.Code, cleanup.Body.String())
	}
}

func TestMotionEndpoints(t *testing.T) {
	_, r := newTestApp(t)

	rec := do(r, httptest.NewRequest(http.MethodGet, "/api/motion/parallax?scroll=400&height=800", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var frame struct {
		Background struct {
			Layers []struct {
				Name string  `json:"name"`
				Y    float64 `json:"y"`
			} `json:"layers"`
		} `json:"background"`
		Scrolled    bool `json:"scrolled"`
		ScrollToTop bool `json:"scroll_to_top"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &frame); err != nil {
		t.Fatal(err)
	}
	if len(frame.Background.Layers) != 4 || frame.Background.Layers[0].Y != 50 {
		t.Fatalf("unexpected layers %+v", frame.Background.Layers)
	}
	if !frame.Scrolled || frame.ScrollToTop {
		t.Fatalf("unexpected flags scrolled=%v top=%v", frame.Scrolled, frame.ScrollToTop)
	}

	for _, path := range []string{
		"/api/motion/parallax?scroll=abc",
		"/api/motion/parallax?height=0",
		"/api/motion/parallax?scroll=NaN",
		"/api/motion/parallax?height=Inf",
		"/api/motion/element?top=-Inf",
		"/api/motion/variants/fadeUp?elapsed=nan",
		"/api/motion/scroll-to?from=NaN",
	} {
		rec := do(r, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "bad query parameter") && !strings.Contains(rec.Body.String(), "height must be positive") {
			t.Errorf("%s: expected 400 with an error body, got %d %q", path, rec.Code, rec.Body.String())
		}
	}

	rec = do(r, httptest.NewRequest(http.MethodGet, "/api/motion/variants", nil))
	var catalog struct {
		Variants []struct {
			Name string `json:"name"`
		} `json:"variants"`
		Threshold float64 `json:"threshold"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &catalog); err != nil {
		t.Fatal(err)
	}
	if len(catalog.Variants) != 6 || catalog.Threshold != 0.2 {
		t.Fatalf("unexpected catalog %+v", catalog)
	}
}

func TestHealthz(t *testing.T) {
	_, r := newTestApp(t)
	rec := do(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}
}

func TestMotionSampling(t *testing.T) {
	_, r := newTestApp(t)

	get := func(path string, v any) {
		t.Helper()
		rec := do(r, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", path, rec.Code, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
	}

	var el struct {
		Fraction  float64 `json:"fraction"`
		Visible   bool    `json:"visible"`
		Transform string  `json:"transform"`
	}
	get("/api/motion/element?scroll=0&height=800&top=400&size=400&speed=10", &el)
	if el.Fraction != 1 || !el.Visible || !strings.HasPrefix(el.Transform, "translateY(") {
		t.Fatalf("unexpected element sample %+v", el)
	}

	var sample struct {
		Style struct {
			Opacity float64 `json:"opacity"`
		} `json:"style"`
		CSS string `json:"css"`
	}
	get("/api/motion/variants/fadeUp?elapsed=600", &sample)
	if sample.Style.Opacity != 1 || !strings.Contains(sample.CSS, "--m-duration:600ms") {
		t.Fatalf("unexpected variant sample %+v", sample)
	}
	get("/api/motion/variants/fadeUp?child=true&index=2", &sample)
	if sample.Style.Opacity != 0 || !strings.Contains(sample.CSS, "--m-delay:300ms") {
		t.Fatalf("unexpected child sample %+v", sample)
	}

	var drift struct {
		X, Y      float64
		Amplitude struct{ X, Y float64 }
	}
	get("/api/motion/drift?pattern=circular&at=0", &drift)
	if drift.X != 0 || drift.Y != 20 || drift.Amplitude.X != 20 {
		t.Fatalf("unexpected drift %+v", drift)
	}

	var scroll struct {
		Target   float64 `json:"target"`
		Position float64 `json:"position"`
	}
	get("/api/motion/scroll-to?from=0&top=1000", &scroll)
	if scroll.Target != 920 || scroll.Position != 920 {
		t.Fatalf("unexpected scroll target %+v", scroll)
	}
}

func TestRouterLogsRecoveredPanics(t *testing.T) {
	a, _ := newTestApp(t)
	var buf bytes.Buffer
	a.logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	r := newRouter(a)
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := do(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	a.visits.Wait()
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	out := buf.String()
	if !strings.Contains(out, "path=/boom") || !strings.Contains(out, "status=500") {
		t.Fatalf("panic not logged as a request line: %s", out)
	}
}
