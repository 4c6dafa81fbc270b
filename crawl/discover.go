// Package crawl discovers listing pages for --all mode.
// It reads sitemap.xml when the site has one and falls back to a bounded
// breadth-first crawl of same-host links otherwise.
package crawl

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/descpipe/core"
	"github.com/gaurav-prasanna/descpipe/internal/logging"
)

const defaultMaxPages = 100

// Options tunes listing discovery.
type Options struct {
	// PathPrefix keeps only listings under this path, e.g. "/jobs/".
	PathPrefix string
	// MaxPages bounds both the crawl and the result. Defaults to 100.
	MaxPages int
	// Logger receives discovery progress. Nil disables logging.
	Logger logging.Logger
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	URLs []sitemapURL `xml:"url"`
}

// DiscoverListings finds listing URLs on the same host as baseURL.
func DiscoverListings(ctx context.Context, baseURL string, fetcher core.Fetcher, opts Options) ([]string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("parsing base URL %q: invalid URL", baseURL)
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = defaultMaxPages
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOp()
	}

	sitemap := fmt.Sprintf("%s://%s/sitemap.xml", parsed.Scheme, parsed.Host)
	urls, err := fromSitemap(ctx, sitemap, parsed.Host, fetcher, opts)
	if err == nil && len(urls) > 0 {
		opts.Logger.Debug("listings found in sitemap", "sitemap", sitemap, "count", len(urls))
		return urls, nil
	}
	opts.Logger.Debug("sitemap unusable, crawling links", "sitemap", sitemap, "error", err)

	return fromLinks(ctx, baseURL, parsed.Host, fetcher, opts)
}

func fromSitemap(ctx context.Context, sitemap, host string, fetcher core.Fetcher, opts Options) ([]string, error) {
	result, err := fetcher.Fetch(ctx, sitemap)
	if err != nil {
		return nil, err
	}

	var set urlSet
	if err := xml.Unmarshal([]byte(result.HTML), &set); err != nil {
		return nil, fmt.Errorf("parsing sitemap: %w", err)
	}

	frontier := NewFrontier()
	var urls []string
	for _, u := range set.URLs {
		loc := NormalizeURL(strings.TrimSpace(u.Loc))
		if !isListing(loc, host, opts.PathPrefix) || !frontier.Push(loc) {
			continue
		}
		urls = append(urls, loc)
		if len(urls) >= opts.MaxPages {
			break
		}
	}
	return urls, nil
}

func fromLinks(ctx context.Context, startURL, host string, fetcher core.Fetcher, opts Options) ([]string, error) {
	frontier := NewFrontier()
	frontier.Push(NormalizeURL(startURL))

	var listings []string
	for frontier.Visited() < opts.MaxPages {
		if err := ctx.Err(); err != nil {
			return listings, err
		}
		current, ok := frontier.Pop()
		if !ok {
			break
		}

		result, err := fetcher.Fetch(ctx, current)
		if err != nil {
			opts.Logger.Warn("fetch failed", "url", current, "error", err)
			continue // a dead link should not end the crawl
		}
		if HasPathPrefix(current, opts.PathPrefix) {
			listings = append(listings, current)
		}

		links, err := extractLinks(result.HTML, current)
		if err != nil {
			continue
		}
		for _, link := range links {
			if IsSameHost(link, host) && !IsAsset(link) {
				frontier.Push(NormalizeURL(link))
			}
		}
	}

	return listings, nil
}

func isListing(rawURL, host, prefix string) bool {
	return IsSameHost(rawURL, host) && !IsAsset(rawURL) && HasPathPrefix(rawURL, prefix)
}

// extractLinks returns every <a href> resolved against baseURL.
func extractLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if resolved := resolveURL(strings.TrimSpace(href), base); resolved != "" {
			links = append(links, resolved)
		}
	})
	return links, nil
}

// resolveURL resolves href against base, dropping non-page schemes.
func resolveURL(href string, base *url.URL) string {
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	for _, scheme := range []string{"mailto:", "javascript:", "tel:"} {
		if strings.HasPrefix(href, scheme) {
			return ""
		}
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
