package describe

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/gaurav-prasanna/descpipe/core"
	"github.com/gaurav-prasanna/descpipe/core/render"
)

// markdownEngine is stateless and reused across calls. Raw HTML in the
// source is omitted because html.WithUnsafe is not set.
var markdownEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// FromMarkdown renders Markdown with goldmark inside the domain's container.
// Use it when the caller knows the text is real Markdown rather than
// loosely formatted paste.
func FromMarkdown(markdown string, d core.Domain) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return render.Wrap(buf.String(), d.Class), nil
}
