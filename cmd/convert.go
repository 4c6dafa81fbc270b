// Package cmd — convert command.
// Runs the full pipeline for one source (a file, stdin or a URL):
// read → [fetch → extract → textify] → split → classify → render → write.
//
// It handles flag validation, renderer selection, and the --all crawl mode.
package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/descpipe/core"
	"github.com/gaurav-prasanna/descpipe/core/describe"
	"github.com/gaurav-prasanna/descpipe/core/extract"
	"github.com/gaurav-prasanna/descpipe/core/fetch"
	"github.com/gaurav-prasanna/descpipe/core/output"
	"github.com/gaurav-prasanna/descpipe/core/render"
	"github.com/gaurav-prasanna/descpipe/core/textify"
	"github.com/gaurav-prasanna/descpipe/crawl"
	"github.com/gaurav-prasanna/descpipe/internal/logging"
)

const (
	inputPlain    = "plain"
	inputMarkdown = "markdown"
)

// Flag variables.
var (
	flagAll         bool
	flagHTML        bool
	flagMarkdown    bool
	flagJSON        bool
	flagPDF         bool
	flagInputFormat string
	flagPathPrefix  string
	flagMaxPages    int
	flagOutputDir   string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|-|url>",
	Short: "Convert a listing description to the specified output format",
	Long: `Convert reads a plain-text description from a file, stdin ("-") or a
web page, rebuilds its structure and writes it in the chosen format.

Examples:
  descpipe convert posting.txt --html
  cat posting.txt | descpipe convert - --json --product
  descpipe convert posting.md --html --input_format markdown
  descpipe convert https://example.com/jobs/42 --pdf --output_dir ./out
  descpipe convert https://example.com/careers --all --path_prefix /jobs/ --markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Mode flags.
	convertCmd.Flags().BoolVar(&flagAll, "all", false, "Convert every listing discovered from the given URL")
	convertCmd.Flags().StringVar(&flagPathPrefix, "path_prefix", "", "Only convert listings under this URL path (--all)")
	convertCmd.Flags().IntVar(&flagMaxPages, "max_pages", 100, "Maximum pages to visit while discovering listings (--all)")

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagHTML, "html", false, "Output an HTML fragment")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output normalized plain text")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	convertCmd.Flags().StringVar(&flagInputFormat, "input_format", inputPlain, "Input dialect: plain or markdown (markdown requires --html)")

	// Output directory.
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

// pipeline bundles the stages one conversion run needs.
type pipeline struct {
	fetcher    core.Fetcher
	extractor  core.Extractor
	textifier  core.Textifier
	normalizer *describe.Normalizer
	renderer   core.Renderer
	domain     core.Domain
	stdin      io.Reader
	logger     logging.Logger
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]

	// --- Validate flags ---
	if err := validateFlags(); err != nil {
		return err
	}
	if flagAll && !isURL(source) {
		return fmt.Errorf("--all requires a URL source (must include scheme, e.g. https://example.com), got %s", source)
	}

	domain, err := selectDomain()
	if err != nil {
		return err
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	p := &pipeline{
		fetcher:    fetch.New(cfg.FetchTimeout),
		extractor:  extract.New(),
		textifier:  textify.New(),
		normalizer: describe.New(),
		renderer:   renderer,
		domain:     domain,
		stdin:      cmd.InOrStdin(),
		logger:     logs.GetLogger("cli"),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	if flagAll {
		return runAll(ctx, source, p, writer, out, cmd.ErrOrStderr())
	}
	return runOnly(ctx, source, p, writer, out)
}

// runOnly processes a single source through the pipeline.
func runOnly(ctx context.Context, source string, p *pipeline, writer *output.Writer, out io.Writer) error {
	data, err := p.process(ctx, source)
	if err != nil {
		return err
	}

	path, err := writer.WriteOnly(source, data, p.renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Written: %s\n", path)
	return nil
}

// runAll discovers listing pages and processes each through the pipeline.
// A failing page is reported and skipped.
func runAll(ctx context.Context, rawURL string, p *pipeline, writer *output.Writer, out, errOut io.Writer) error {
	fmt.Fprintf(out, "Discovering listings from %s...\n", rawURL)

	urls, err := crawl.DiscoverListings(ctx, rawURL, p.fetcher, crawl.Options{
		PathPrefix: flagPathPrefix,
		MaxPages:   flagMaxPages,
		Logger:     logs.GetLogger("crawl"),
	})
	if err != nil {
		return fmt.Errorf("discovering listings: %w", err)
	}

	fmt.Fprintf(out, "Found %d listings to process\n", len(urls))

	var errCount int
	for i, pageURL := range urls {
		fmt.Fprintf(out, "[%d/%d] Processing %s\n", i+1, len(urls), pageURL)

		data, err := p.process(ctx, pageURL)
		if err != nil {
			fmt.Fprintf(errOut, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		path, err := writer.WriteAll(pageURL, data, p.renderer.Extension())
		if err != nil {
			fmt.Fprintf(errOut, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(out, "  ✓ Written: %s\n", path)
	}

	if errCount > 0 {
		fmt.Fprintf(errOut, "\n%d/%d listings failed\n", errCount, len(urls))
	}
	return nil
}

// process reads one source and renders it.
func (p *pipeline) process(ctx context.Context, source string) ([]byte, error) {
	text, title, err := p.read(ctx, source)
	if err != nil {
		return nil, err
	}

	if flagInputFormat == inputMarkdown {
		html, err := describe.FromMarkdown(text, p.domain)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		return []byte(html), nil
	}

	blocks := p.normalizer.Blocks(text)
	p.logger.Debug("source classified", "source", source, "blocks", len(blocks))

	meta := core.Metadata{
		Source:      source,
		Domain:      p.domain,
		Title:       title,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := p.renderer.Render(blocks, meta)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}

// read returns the description text of a source and, for web pages,
// the page title.
func (p *pipeline) read(ctx context.Context, source string) (text, title string, err error) {
	switch {
	case source == output.StdinSource:
		data, err := io.ReadAll(p.stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil

	case isURL(source):
		result, err := p.fetcher.Fetch(ctx, source)
		if err != nil {
			return "", "", fmt.Errorf("fetch: %w", err)
		}
		content, err := p.extractor.Extract(result.HTML)
		if err != nil {
			return "", "", fmt.Errorf("extract: %w", err)
		}
		text, err := p.textifier.Textify(content)
		if err != nil {
			return "", "", fmt.Errorf("textify: %w", err)
		}
		return text, extract.Title(result.HTML), nil

	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", source, err)
		}
		return string(data), "", nil
	}
}

func isURL(source string) bool {
	parsed, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// validateFlags checks that exactly one output format is chosen and that
// the input dialect is compatible with it.
func validateFlags() error {
	formatCount := 0
	for _, set := range []bool{flagHTML, flagMarkdown, flagJSON, flagPDF} {
		if set {
			formatCount++
		}
	}

	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --html, --markdown, --json, or --pdf")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	switch flagInputFormat {
	case inputPlain:
	case inputMarkdown:
		if !flagHTML {
			return fmt.Errorf("--input_format markdown is only supported with --html")
		}
	default:
		return fmt.Errorf("unknown --input_format %q (want plain or markdown)", flagInputFormat)
	}

	if flagMaxPages < 1 {
		return fmt.Errorf("--max_pages must be at least 1")
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagHTML:
		return render.NewHTMLRenderer(), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(cfg.ExcerptWords), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
