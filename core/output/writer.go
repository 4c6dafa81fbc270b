// Package output handles file naming and writing for descpipe outputs.
// Single sources get a flat filename (job_posting.html, example_com_jobs_42.html);
// in --all mode filenames mirror the listing URL path.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// StdinSource is the source name used for text read from standard input.
const StdinSource = "-"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteOnly writes output for a single source.
// Filename: derived from the URL, the input file name, or "stdin".
func (w *Writer) WriteOnly(source string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, FilenameFromSource(source)+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteAll writes output for --all mode, mirroring the URL path structure.
// Example: https://site.com/jobs/42 → ./jobs/42.html
func (w *Writer) WriteAll(rawURL string, data []byte, ext string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	urlPath := strings.Trim(parsed.Path, "/")
	if urlPath == "" {
		urlPath = "index"
	}

	segments := strings.Split(urlPath, "/")
	for i, seg := range segments {
		segments[i] = sanitize(seg)
	}
	fullPath := filepath.Join(append([]string{w.OutputDir}, segments...)...) + ext

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// FilenameFromSource converts a source into a flat filename without extension.
// Examples: https://example.com/jobs/42 → example_com_jobs_42,
// ./drafts/job posting.txt → job_posting, "-" → stdin.
func FilenameFromSource(source string) string {
	if source == "" || source == StdinSource {
		return "stdin"
	}

	if parsed, err := url.Parse(source); err == nil && parsed.Scheme != "" && parsed.Host != "" {
		parts := []string{sanitize(parsed.Host)}
		if path := strings.Trim(parsed.Path, "/"); path != "" {
			for _, seg := range strings.Split(path, "/") {
				parts = append(parts, sanitize(seg))
			}
		}
		return strings.Join(parts, "_")
	}

	base := filepath.Base(source)
	return sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
