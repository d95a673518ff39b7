// Package locator turns the geotagged location rows into map markers for
// the find-locator page.
package locator

import (
	"context"
	"fmt"
	"html"
	"sync"

	"github.com/hawkerhub/hawker-app/models"
)

type Source interface {
	All(ctx context.Context) ([]models.Location, error)
}

type Marker struct {
	ID        uint    `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Popup     string  `json:"popup"`
}

// Map holds the currently placed markers. Refresh throws all of them away
// and redraws from a fresh fetch; marker counts are small enough that a
// full redraw is fine.
type Map struct {
	src Source

	mu      sync.Mutex
	markers []Marker
}

func New(src Source) *Map {
	return &Map{src: src}
}

// Load fetches every location and places one marker per location that has
// both coordinates.
func (m *Map) Load(ctx context.Context) ([]Marker, error) {
	locations, err := m.src.All(ctx)
	if err != nil {
		return nil, err
	}
	markers := make([]Marker, 0, len(locations))
	for _, loc := range locations {
		if loc.Latitude == nil || loc.Longitude == nil {
			continue
		}
		markers = append(markers, Marker{
			ID:        loc.ID,
			Latitude:  *loc.Latitude,
			Longitude: *loc.Longitude,
			Popup:     popupHTML(loc),
		})
	}
	m.mu.Lock()
	m.markers = markers
	m.mu.Unlock()
	return append([]Marker(nil), markers...), nil
}

// Refresh clears all placed markers and redraws from scratch.
func (m *Map) Refresh(ctx context.Context) ([]Marker, error) {
	m.mu.Lock()
	m.markers = nil
	m.mu.Unlock()
	return m.Load(ctx)
}

func (m *Map) Markers() []Marker {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Marker(nil), m.markers...)
}

// popupHTML escapes the stored text so a location row cannot inject markup
// into the popup.
func popupHTML(loc models.Location) string {
	name := loc.Name
	if name == "" {
		name = "Untitled"
	}
	out := fmt.Sprintf("<strong>%s</strong>", html.EscapeString(name))
	if loc.Address != "" {
		out += fmt.Sprintf("<div>%s</div>", html.EscapeString(loc.Address))
	}
	if loc.Description != "" {
		out += fmt.Sprintf("<div>%s</div>", html.EscapeString(loc.Description))
	}
	return out
}
