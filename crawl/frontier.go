package crawl

import (
	"container/heap"
	"sync"

	flat "github.com/Ryan-Knowles/make-it-flat"
	"github.com/Ryan-Knowles/make-it-flat/bloom"
)

// Compile-time interface verification.
var _ flat.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory URL frontier with priority queue and Bloom
// filter visited tracking. URLs are normalized before deduplication so
// fragment and trailing-slash variants count as the same page.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *linkHeap
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &linkHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push adds a link to the frontier.
// Returns false if the URL has already been seen or cannot be normalized.
func (f *Frontier) Push(link flat.DiscoveredLink) bool {
	url, err := NormalizeURL(link.URL)
	if err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	// Queue the normalized form so downstream consumers see canonical URLs
	link.URL = url
	heap.Push(f.queue, link)
	return true
}

// Pop returns the next link by priority.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (flat.DiscoveredLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return flat.DiscoveredLink{}, false
	}
	link, _ := heap.Pop(f.queue).(flat.DiscoveredLink)
	return link, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been processed or queued.
func (f *Frontier) Seen(rawURL string) bool {
	url, err := NormalizeURL(rawURL)
	if err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(url)
}

// linkHeap implements heap.Interface for DiscoveredLink priority queue.
// Higher priority links are popped first.
type linkHeap []flat.DiscoveredLink

func (h linkHeap) Len() int { return len(h) }

// Less returns true if i has higher priority than j (max-heap).
func (h linkHeap) Less(i, j int) bool {
	return h[i].Priority > h[j].Priority
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	link, _ := x.(flat.DiscoveredLink)
	*h = append(*h, link)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
