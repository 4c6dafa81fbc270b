package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/descpipe/core/render"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DESCRIPTION_DOMAIN", "")
	t.Setenv("LOG_LEVEL", "error")
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags() {
	flagLogLevel, flagLogFormat = "", ""
	flagJob, flagProduct = false, false
	flagAll, flagHTML, flagMarkdown, flagJSON, flagPDF = false, false, false, false, false
	flagInputFormat = inputPlain
	flagPathPrefix = ""
	flagMaxPages = 100
	flagOutputDir = ""
	flagAbout, flagRequirements, flagBenefits = "", "", ""
	flagPort = ""
}

const posting = "# Senior Engineer\n\nWe build tools for <em>hiring</em>.\n\nREQUIREMENTS\n\nWhat you bring:\n\n- Go\n- SQL\n"

func TestConvertFileToHTML(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "job posting.txt")
	if err := os.WriteFile(src, []byte(posting), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execute(t, "", "convert", src, "--html", "--output_dir", dir)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	path := filepath.Join(dir, "job_posting.html")
	if !strings.Contains(out, path) {
		t.Fatalf("expected written path in output, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	want := `<div class="job-description">` +
		`<h1>Senior Engineer</h1>` +
		`<p>We build tools for <em>hiring</em>.</p>` +
		`<h2>REQUIREMENTS</h2>` +
		`<h3>What you bring:</h3>` +
		`<ul><li>Go</li><li>SQL</li></ul>` +
		`</div>`
	if string(data) != want {
		t.Fatalf("output =\n%s\nwant\n%s", data, want)
	}
}

func TestConvertStdinToJSON(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, posting, "convert", "-", "--json", "--product", "--output_dir", dir); err != nil {
		t.Fatalf("convert: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stdin.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var doc render.DescriptionJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if doc.Metadata.Source != "-" || doc.Metadata.Domain.Name != "product" {
		t.Fatalf("unexpected metadata %#v", doc.Metadata)
	}
	if doc.Metadata.GeneratedAt == "" {
		t.Fatalf("expected generation timestamp")
	}
	if !strings.HasPrefix(doc.HTML, `<div class="product-description">`) {
		t.Fatalf("unexpected html %q", doc.HTML)
	}
	want := render.Structure{Headings: 2, SectionLabels: 1, Lists: 1, ListItems: 2, Paragraphs: 1}
	if doc.Structure != want {
		t.Fatalf("structure = %#v, want %#v", doc.Structure, want)
	}
}

func TestConvertMarkdownInput(t *testing.T) {
	dir := t.TempDir()
	md := "## Perks\n\n* **Remote** first\n* Equity\n"
	if _, err := execute(t, md, "convert", "-", "--html", "--input_format", "markdown", "--output_dir", dir); err != nil {
		t.Fatalf("convert: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stdin.html"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got := string(data)
	for _, want := range []string{`<div class="job-description">`, "<h2>Perks</h2>", "<strong>Remote</strong>", "<li>Equity</li>"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestConvertURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Jobs</title></head><body>
<nav><a href="/">Home</a></nav>
<h1>Backend Engineer</h1>
<div class="job-description"><h2>Perks</h2><ul><li>Remote</li><li>Equity</li></ul></div>
</body></html>`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	if _, err := execute(t, "", "convert", srv.URL+"/jobs/42", "--markdown", "--output_dir", dir); err != nil {
		t.Fatalf("convert: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*_jobs_42.md"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one markdown file, got %v (%v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "## Perks\n\n- Remote\n- Equity\n" {
		t.Fatalf("unexpected output %q", data)
	}
}

func TestConvertFlagErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no format", []string{"convert", "-"}, "exactly one output format"},
		{"two formats", []string{"convert", "-", "--html", "--json"}, "only one output format"},
		{"markdown input needs html", []string{"convert", "-", "--pdf", "--input_format", "markdown"}, "only supported with --html"},
		{"unknown input format", []string{"convert", "-", "--html", "--input_format", "rst"}, "unknown --input_format"},
		{"all needs url", []string{"convert", "posting.txt", "--html", "--all"}, "--all requires a URL"},
		{"both domains", []string{"convert", "-", "--html", "--job", "--product"}, "mutually exclusive"},
		{"missing file", []string{"convert", filepath.Join(t.TempDir(), "nope.txt"), "--html"}, "reading"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, "", tc.args...)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestTemplateCommand(t *testing.T) {
	out, err := execute(t, "", "template", "--product",
		"--about", "Made <b>by hand</b>.",
		"--requirements", "",
		"--benefits", "- Free returns\n- Warranty")
	if err != nil {
		t.Fatalf("template: %v", err)
	}

	want := `<div class="product-description">` +
		`<h2>About this Product</h2><p>Made &lt;b&gt;by hand&lt;/b&gt;.</p>` +
		`<h3>Benefits:</h3><ul><li>Free returns</li><li>Warranty</li></ul>` +
		`</div>` + "\n"
	if out != want {
		t.Fatalf("output =\n%q\nwant\n%q", out, want)
	}
}

func TestTemplateReadsFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reqs.txt")
	if err := os.WriteFile(path, []byte("- Go\n- Kubernetes\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execute(t, "", "template", "--requirements", "@"+path)
	if err != nil {
		t.Fatalf("template: %v", err)
	}
	if !strings.Contains(out, "<ul><li>Go</li><li>Kubernetes</li></ul>") {
		t.Fatalf("expected list from file, got %q", out)
	}

	if _, err := execute(t, "", "template", "--about", "@"+path+".missing"); err == nil {
		t.Fatalf("expected error for missing @file")
	}
}

func TestReadFieldValue(t *testing.T) {
	got, err := readFieldValue("plain text")
	if err != nil || got != "plain text" {
		t.Fatalf("readFieldValue() = %q, %v", got, err)
	}
}

func TestIsURL(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/jobs/1": true,
		"http://localhost:8080":      true,
		"ftp://example.com/x":        false,
		"posting.txt":                false,
		"-":                          false,
		"https://":                   false,
	}
	for in, want := range cases {
		if got := isURL(in); got != want {
			t.Fatalf("isURL(%q) = %v, want %v", in, got, want)
		}
	}
}
