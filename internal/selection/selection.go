// Package selection tracks which collected articles the operator has picked
// for export. The set is keyed by URL, the one stable business key an
// article has, and is independent of how results are rendered.
package selection

import (
	"sync"

	"github.com/minafoods/newsclip/internal/pipeline"
)

// Set is an insertion-ordered set of picked articles.
type Set struct {
	mu    sync.RWMutex
	items map[string]pipeline.Article
	order []string
}

func New() *Set {
	return &Set{items: make(map[string]pipeline.Article)}
}

// Add picks an article. Re-adding the same URL updates the stored record but
// keeps its original position.
func (s *Set) Add(a pipeline.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[a.URL]; !ok {
		s.order = append(s.order, a.URL)
	}
	s.items[a.URL] = a
}

// Remove unpicks by URL. Absent URLs are a no-op.
func (s *Set) Remove(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[url]; !ok {
		return
	}
	delete(s.items, url)
	for i, u := range s.order {
		if u == url {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Set) Has(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[url]
	return ok
}

// Clear drops every pick. Called after each new collection run and on
// explicit operator request.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]pipeline.Article)
	s.order = nil
}

// Items returns the picked articles in the order they were added.
func (s *Set) Items() []pipeline.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pipeline.Article, 0, len(s.order))
	for _, url := range s.order {
		out = append(out, s.items[url])
	}
	return out
}

func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
