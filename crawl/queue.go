// Package crawl — BFS frontier with deduplication.
package crawl

// Frontier is a FIFO of URLs that remembers everything it has accepted.
type Frontier struct {
	pending []string
	seen    map[string]struct{}
	next    int
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{seen: make(map[string]struct{})}
}

// Push enqueues url unless it was accepted before. It reports whether
// the URL was new.
func (f *Frontier) Push(url string) bool {
	if _, ok := f.seen[url]; ok {
		return false
	}
	f.seen[url] = struct{}{}
	f.pending = append(f.pending, url)
	return true
}

// Pop returns the oldest unvisited URL. ok is false when the frontier is drained.
func (f *Frontier) Pop() (url string, ok bool) {
	if f.next >= len(f.pending) {
		return "", false
	}
	url = f.pending[f.next]
	f.next++
	return url, true
}

// Visited returns how many URLs have been popped.
func (f *Frontier) Visited() int {
	return f.next
}

// Len returns how many distinct URLs were accepted.
func (f *Frontier) Len() int {
	return len(f.seen)
}
