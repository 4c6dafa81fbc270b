package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gaurav-prasanna/descpipe/core"
	"github.com/gaurav-prasanna/descpipe/core/describe"
	"github.com/gaurav-prasanna/descpipe/core/excerpt"
	"github.com/gaurav-prasanna/descpipe/internal/logging"
)

func newTestRouter(maxBody int64, origins ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(describe.New(), excerpt.New(5), logging.NoOp())
	return NewRouter(h, RouterOptions{MaxBodyBytes: maxBody, AllowedOrigins: origins})
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(0), http.MethodGet, "/api/v1/health", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}
}

func TestCreateDescription(t *testing.T) {
	rec := do(t, newTestRouter(0), http.MethodPost, "/api/v1/descriptions", DescriptionRequest{
		Domain: "product",
		Text:   "# Course\n\nLearn Go in six weeks with weekly reviews.\n\n- Video\n- Exercises",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp DescriptionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := `<div class="product-description"><h1>Course</h1><p>Learn Go in six weeks with weekly reviews.</p><ul><li>Video</li><li>Exercises</li></ul></div>`
	if resp.HTML != want {
		t.Fatalf("html = %q, want %q", resp.HTML, want)
	}
	if resp.Excerpt != "Learn Go in six weeks…" {
		t.Fatalf("unexpected excerpt %q", resp.Excerpt)
	}
	if len(resp.Blocks) != 3 || resp.Blocks[2].Kind != core.KindBulletList {
		t.Fatalf("unexpected blocks %#v", resp.Blocks)
	}
}

func TestCreateDescriptionEmptyText(t *testing.T) {
	rec := do(t, newTestRouter(0), http.MethodPost, "/api/v1/descriptions", DescriptionRequest{Domain: "job"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp DescriptionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.HTML != `<div class="job-description"></div>` || len(resp.Blocks) != 0 {
		t.Fatalf("expected empty container, got %#v", resp)
	}
}

func TestCreateDescriptionMarkdown(t *testing.T) {
	rec := do(t, newTestRouter(0), http.MethodPost, "/api/v1/descriptions", DescriptionRequest{
		Domain: "job",
		Text:   "Some *emphasis* here",
		Format: "markdown",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp DescriptionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.HTML, "<em>emphasis</em>") {
		t.Fatalf("expected goldmark output, got %q", resp.HTML)
	}
}

func TestCreateDescriptionMarkdownExcerptMatchesHTML(t *testing.T) {
	rec := do(t, newTestRouter(0), http.MethodPost, "/api/v1/descriptions", DescriptionRequest{
		Domain: "job",
		Text:   "* **Go** experience\n* SQL",
		Format: "markdown",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw["blocks"]; ok {
		t.Fatalf("expected no blocks for markdown input, got %s", raw["blocks"])
	}

	var resp DescriptionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.HTML, "<li><strong>Go</strong> experience</li>") {
		t.Fatalf("expected goldmark list, got %q", resp.HTML)
	}
	if resp.Excerpt != "Go experience SQL" {
		t.Fatalf("excerpt = %q, want %q", resp.Excerpt, "Go experience SQL")
	}
}

func TestCreateDescriptionValidation(t *testing.T) {
	r := newTestRouter(0)

	cases := []any{
		DescriptionRequest{Domain: "blog", Text: "x"},
		DescriptionRequest{Text: "x"},
		DescriptionRequest{Domain: "job", Format: "rtf"},
	}
	for _, body := range cases {
		rec := do(t, r, http.MethodPost, "/api/v1/descriptions", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %#v, got %d", body, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/descriptions", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestCreateDescriptionTooLarge(t *testing.T) {
	rec := do(t, newTestRouter(64), http.MethodPost, "/api/v1/descriptions", DescriptionRequest{
		Domain: "job",
		Text:   strings.Repeat("word ", 100),
	})
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateTemplate(t *testing.T) {
	rec := do(t, newTestRouter(0), http.MethodPost, "/api/v1/descriptions/template", TemplateRequest{
		Domain:       "job",
		About:        "<b>bold</b>",
		Requirements: "- Go",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		HTML string `json:"html"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := `<div class="job-description"><h2>About the Role</h2><p>&lt;b&gt;bold&lt;/b&gt;</p><h3>Requirements:</h3><ul><li>Go</li></ul></div>`
	if resp.HTML != want {
		t.Fatalf("html = %q, want %q", resp.HTML, want)
	}
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(0)

	rec := do(t, r, http.MethodGet, "/api/v1/health", nil)
	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Fatalf("expected generated request id, got %q", rec.Header().Get(RequestIDHeader))
	}

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(RequestIDHeader, id)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != id {
		t.Fatalf("expected client id %q echoed, got %q", id, got)
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter(0, "https://admin.example.com")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/descriptions", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.example.com" {
		t.Fatalf("expected allowed origin header, got %q (status %d)", got, rec.Code)
	}

	rec = do(t, newTestRouter(0), http.MethodGet, "/api/v1/health", nil)
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("expected no CORS headers when disabled")
	}
}
