// Package crawl — listing URL rules.
// Helpers that decide which discovered URLs are listing pages worth
// normalizing and how they are deduplicated.
package crawl

import (
	"net/url"
	"path"
	"strings"
)

// assetExtensions are file extensions that never hold a listing description.
var assetExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true,
	".css": true, ".js": true, ".mjs": true, ".map": true,
	".woff": true, ".woff2": true, ".ttf": true,
	".mp4": true, ".webm": true, ".mp3": true,
	".zip": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xlsx": true,
	".xml": true, ".rss": true, ".json": true,
}

// IsSameHost reports whether rawURL is served from host.
func IsSameHost(rawURL string, host string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == host
}

// IsAsset reports whether rawURL points to a static asset or feed.
func IsAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return assetExtensions[strings.ToLower(path.Ext(parsed.Path))]
}

// HasPathPrefix reports whether rawURL's path starts with prefix.
// An empty prefix accepts every URL.
func HasPathPrefix(rawURL string, prefix string) bool {
	if prefix == "" {
		return true
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return strings.HasPrefix(parsed.Path, prefix)
}

// NormalizeURL strips fragments, query strings used for tracking and
// trailing slashes so the same listing is only visited once.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""

	if q := parsed.Query(); len(q) > 0 {
		for key := range q {
			if strings.HasPrefix(key, "utm_") {
				q.Del(key)
			}
		}
		parsed.RawQuery = q.Encode()
	}

	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}
