package search

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Source supplies the full list of hawker centre names. Backed by the
// catalog store in production and by the static catalog document in the
// offline variant.
type Source interface {
	HawkerNames(ctx context.Context) ([]string, error)
}

// ErrSuperseded is returned when a newer keystroke arrived while this
// one's fetch was in flight; its result was discarded.
var ErrSuperseded = errors.New("search: superseded by newer input")

// Suggester is the type-ahead state for one search box. Each keystroke
// refetches the name list and filters it; a keystroke cancels the previous
// fetch and tags its own with a generation number, so a slow, stale
// response can never overwrite a newer one's suggestions.
type Suggester struct {
	src Source

	mu          sync.Mutex
	gen         uint64
	cancel      context.CancelFunc
	value       string
	suggestions []string
}

func NewSuggester(src Source) *Suggester {
	return &Suggester{src: src}
}

// Type records the current input and rebuilds the suggestion list.
// Empty input clears the suggestions without issuing a fetch.
func (s *Suggester) Type(ctx context.Context, input string) ([]string, error) {
	s.mu.Lock()
	s.value = input
	s.suggestions = nil
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if strings.TrimSpace(input) == "" {
		s.mu.Unlock()
		return nil, nil
	}
	s.gen++
	gen := s.gen
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	names, err := s.src.HawkerNames(fetchCtx)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil, ErrSuperseded
	}
	if err != nil {
		// suggestions stay empty; the caller sees the failure
		return nil, err
	}
	s.suggestions = Filter(names, input)
	return append([]string(nil), s.suggestions...), nil
}

// Select fills the input with the chosen suggestion and clears the list.
func (s *Suggester) Select(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = name
	s.suggestions = nil
	s.gen++ // any in-flight fetch is now stale
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Suggester) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *Suggester) Suggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.suggestions...)
}

// Filter keeps the names containing input as a case-insensitive,
// unanchored substring. Empty input matches nothing.
func Filter(names []string, input string) []string {
	q := strings.ToLower(strings.TrimSpace(input))
	if q == "" {
		return nil
	}
	var out []string
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, name)
		}
	}
	return out
}
