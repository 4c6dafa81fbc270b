// Package api exposes the normalizer over a small JSON HTTP API so the
// listing backend can call it instead of linking the library.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gaurav-prasanna/descpipe/core"
	"github.com/gaurav-prasanna/descpipe/core/describe"
	"github.com/gaurav-prasanna/descpipe/core/excerpt"
	"github.com/gaurav-prasanna/descpipe/core/render"
	"github.com/gaurav-prasanna/descpipe/internal/logging"
)

// DescriptionRequest is the body of POST /descriptions.
type DescriptionRequest struct {
	Domain string `json:"domain" binding:"required,oneof=job product"`
	Text   string `json:"text"`
	Format string `json:"format" binding:"omitempty,oneof=plain markdown"`
}

// TemplateRequest is the body of POST /descriptions/template.
type TemplateRequest struct {
	Domain       string `json:"domain" binding:"required,oneof=job product"`
	About        string `json:"about"`
	Requirements string `json:"requirements"`
	Benefits     string `json:"benefits"`
}

// DescriptionResponse carries the rendered HTML and what it was built from.
// Blocks is omitted for Markdown input.
type DescriptionResponse struct {
	HTML    string       `json:"html"`
	Excerpt string       `json:"excerpt"`
	Blocks  []core.Block `json:"blocks,omitempty"`
}

// Handler serves the description endpoints.
type Handler struct {
	Normalizer *describe.Normalizer
	Excerpter  *excerpt.Excerpter
	Logger     logging.Logger
}

// NewHandler creates the handler with its dependencies.
func NewHandler(n *describe.Normalizer, e *excerpt.Excerpter, logger logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Handler{Normalizer: n, Excerpter: e, Logger: logger}
}

// HealthCheck is GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateDescription is POST /descriptions.
func (h *Handler) CreateDescription(c *gin.Context) {
	var req DescriptionRequest
	if !h.bind(c, &req) {
		return
	}
	domain, _ := core.DomainByName(req.Domain)

	if req.Format == "markdown" {
		h.createFromMarkdown(c, req.Text, domain)
		return
	}

	blocks := h.Normalizer.Blocks(req.Text)
	h.Logger.Debug("description normalized", "domain", domain.Name, "blocks", len(blocks))
	c.JSON(http.StatusOK, DescriptionResponse{
		HTML:    render.HTML(blocks, domain.Class),
		Excerpt: h.Excerpter.Excerpt(blocks),
		Blocks:  blocks,
	})
}

// createFromMarkdown renders with goldmark. There is no block list on this
// path, so blocks are omitted and the excerpt is read from the HTML.
func (h *Handler) createFromMarkdown(c *gin.Context, text string, domain core.Domain) {
	html, err := describe.FromMarkdown(text, domain)
	if err != nil {
		h.Logger.Error("markdown conversion failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Markdown conversion failed: " + err.Error()})
		return
	}
	teaser, err := h.Excerpter.FromHTML(html)
	if err != nil {
		h.Logger.Error("excerpt failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Excerpt failed: " + err.Error()})
		return
	}

	h.Logger.Debug("description rendered from markdown", "domain", domain.Name)
	c.JSON(http.StatusOK, DescriptionResponse{HTML: html, Excerpt: teaser})
}

// CreateTemplate is POST /descriptions/template.
func (h *Handler) CreateTemplate(c *gin.Context) {
	var req TemplateRequest
	if !h.bind(c, &req) {
		return
	}
	domain, _ := core.DomainByName(req.Domain)

	html := describe.DefaultTemplate(core.TemplateFields{
		About:        req.About,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
	}, domain)
	c.JSON(http.StatusOK, gin.H{"html": html})
}

// bind decodes and validates the JSON body, writing the error response
// itself when that fails.
func (h *Handler) bind(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.Logger.Warn("request body too large", "limit", tooLarge.Limit, "path", c.FullPath())
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
	return false
}
