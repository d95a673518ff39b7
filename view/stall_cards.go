// Package view builds the page models for the stall listing: one card per
// stall with a colour-banded queue badge, a rating and a collapsible menu.
package view

import (
	"github.com/hawkerhub/hawker-app/catalog"
	"github.com/hawkerhub/hawker-app/models"
)

type QueueBand string

const (
	QueueLow    QueueBand = "low"    // green badge
	QueueMedium QueueBand = "medium" // amber badge
	QueueHigh   QueueBand = "high"   // red badge
)

const (
	showMenuLabel = "Show Menu ▼"
	hideMenuLabel = "Hide Menu ▲"

	emptyStateMessage = "No stalls found for this hawker centre."
)

// BandForQueue maps waiting minutes to a badge band: under 10 is low,
// 10-19 medium, 20 and up high.
func BandForQueue(minutes int) QueueBand {
	switch {
	case minutes < 10:
		return QueueLow
	case minutes < 20:
		return QueueMedium
	default:
		return QueueHigh
	}
}

type MenuLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type StallCard struct {
	StallID     uint       `json:"stall_id,omitempty"`
	Name        string     `json:"name"`
	QueueLength int        `json:"queue_length"`
	QueueBand   QueueBand  `json:"queue_band"`
	Rating      float64    `json:"rating"`
	Menu        []MenuLine `json:"menu"`
	MenuVisible bool       `json:"menu_visible"`
	ToggleLabel string     `json:"toggle_label"`
}

// ToggleMenu flips the collapsed menu open or shut and relabels the button.
func (c *StallCard) ToggleMenu() {
	c.MenuVisible = !c.MenuVisible
	if c.MenuVisible {
		c.ToggleLabel = hideMenuLabel
	} else {
		c.ToggleLabel = showMenuLabel
	}
}

type StallPage struct {
	HawkerName   string      `json:"hawker_name"`
	Empty        bool        `json:"empty"`
	EmptyMessage string      `json:"empty_message,omitempty"`
	Cards        []StallCard `json:"cards"`
}

// BuildStallPage renders one card per stall; zero stalls yields the
// empty-state page with no cards.
func BuildStallPage(hawkerName string, stalls []models.Stall) StallPage {
	page := StallPage{HawkerName: hawkerName}
	if len(stalls) == 0 {
		page.Empty = true
		page.EmptyMessage = emptyStateMessage
		return page
	}
	for _, stall := range stalls {
		card := StallCard{
			StallID:     stall.ID,
			Name:        stall.Name,
			QueueLength: stall.QueueLength,
			QueueBand:   BandForQueue(stall.QueueLength),
			Rating:      stall.Rating,
			ToggleLabel: showMenuLabel, // menus start collapsed
		}
		for _, item := range stall.MenuItems {
			card.Menu = append(card.Menu, MenuLine{Name: item.Name, Price: item.Price})
		}
		page.Cards = append(page.Cards, card)
	}
	return page
}

// BuildStaticStallPage is the static-catalog variant of BuildStallPage.
func BuildStaticStallPage(hawker *catalog.StaticHawker) StallPage {
	if hawker == nil || len(hawker.Stalls) == 0 {
		name := ""
		if hawker != nil {
			name = hawker.Hawker
		}
		return StallPage{HawkerName: name, Empty: true, EmptyMessage: emptyStateMessage}
	}
	page := StallPage{HawkerName: hawker.Hawker}
	for _, stall := range hawker.Stalls {
		card := StallCard{
			Name:        stall.Name,
			QueueLength: stall.QueueLength,
			QueueBand:   BandForQueue(stall.QueueLength),
			Rating:      stall.Rating,
			ToggleLabel: showMenuLabel,
		}
		for _, item := range stall.Menu {
			card.Menu = append(card.Menu, MenuLine{Name: item.Item, Price: item.Price})
		}
		page.Cards = append(page.Cards, card)
	}
	return page
}
