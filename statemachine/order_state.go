package statemachine

import (
	"fmt"
	"strings"

	"github.com/hawkerhub/hawker-app/models"
)

// validTransitions is the authoritative order state machine. Status used
// to be a free-form overwrite; every change now has to pass through here.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:   {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing: {models.OrderReady, models.OrderCancelled},
	models.OrderReady:     {models.OrderCompleted},
	// completed and cancelled are terminal
}

// ValidTransitionsFrom returns all states reachable from status.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	return validTransitions[status]
}

// CanTransition reports whether moving from one status to the other is
// allowed, with a message naming the legal next states when it is not.
func CanTransition(from, to models.OrderStatus) error {
	for _, next := range validTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("invalid transition: %s -> %s (valid from %s: %s)",
		from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := validTransitions[status]
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	parts := make([]string, len(nexts))
	for i, s := range nexts {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
