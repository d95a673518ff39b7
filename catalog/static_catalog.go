// Package catalog loads the bundled hawker catalog document, the offline
// alternative to the database-backed catalog store. The document is a
// list of hawker centres, each with nested stalls and menus.
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"os"
)

type StaticMenuItem struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

type StaticStall struct {
	Name        string           `json:"name"`
	Cuisine     string           `json:"cuisine"`
	QueueLength int              `json:"queueLength"`
	Rating      float64          `json:"rating"`
	Menu        []StaticMenuItem `json:"menu"`
}

type StaticHawker struct {
	Hawker string        `json:"hawker"`
	Stalls []StaticStall `json:"stalls"`
}

type Static struct {
	hawkers []StaticHawker
}

func Load(r io.Reader) (*Static, error) {
	var hawkers []StaticHawker
	if err := json.NewDecoder(r).Decode(&hawkers); err != nil {
		return nil, err
	}
	return &Static{hawkers: hawkers}, nil
}

func LoadFile(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (s *Static) Hawkers() []StaticHawker {
	return s.hawkers
}

// HawkerNames satisfies search.Source.
func (s *Static) HawkerNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(s.hawkers))
	for _, h := range s.hawkers {
		names = append(names, h.Hawker)
	}
	return names, nil
}

// Find locates a hawker centre by exact name.
func (s *Static) Find(name string) (*StaticHawker, bool) {
	for i := range s.hawkers {
		if s.hawkers[i].Hawker == name {
			return &s.hawkers[i], true
		}
	}
	return nil, false
}
