package client

import (
	"sync"

	"github.com/packtime/api/catalog"
)

// Searcher runs searches without blocking the caller. In-flight
// requests are never cancelled or de-duplicated, so when two overlap
// the last response to resolve is the one that sticks. A view switch
// does not abort anything.
type Searcher struct {
	client *Client

	mu       sync.Mutex
	pending  int
	sections []catalog.Section
	err      error

	// OnUpdate, when set, runs after every search resolves so the UI
	// can repaint.
	OnUpdate func()
}

// NewSearcher wraps a client for background searches.
func NewSearcher(c *Client) *Searcher {
	return &Searcher{client: c}
}

// Search issues a search for the applied filters and returns
// immediately.
func (s *Searcher) Search(applied AppliedFilters) {
	params := BuildSearchParams(applied)
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
	go func() {
		sections, err := s.client.Search(params)
		s.mu.Lock()
		s.pending--
		if err != nil {
			// failed searches clear the result area
			s.sections = nil
			s.err = err
		} else {
			s.sections = sections
			s.err = nil
		}
		update := s.OnUpdate
		s.mu.Unlock()
		if update != nil {
			update()
		}
	}()
}

// Results returns whatever the most recently resolved search produced.
func (s *Searcher) Results() ([]catalog.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sections, s.err
}

// Loading reports whether any search is still in flight.
func (s *Searcher) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending > 0
}
