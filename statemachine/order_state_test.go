package statemachine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hawkerhub/hawker-app/models"
	"github.com/hawkerhub/hawker-app/statemachine"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to models.OrderStatus }{
		{models.OrderPending, models.OrderPreparing},
		{models.OrderPending, models.OrderCancelled},
		{models.OrderPreparing, models.OrderReady},
		{models.OrderPreparing, models.OrderCancelled},
		{models.OrderReady, models.OrderCompleted},
	}
	for _, tt := range allowed {
		assert.NoError(t, statemachine.CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}

	denied := []struct{ from, to models.OrderStatus }{
		{models.OrderPending, models.OrderReady},
		{models.OrderPending, models.OrderCompleted},
		{models.OrderReady, models.OrderCancelled},
		{models.OrderCompleted, models.OrderPending},
		{models.OrderCancelled, models.OrderPreparing},
		// no going backwards, e.g. completed orders cannot become pending again
		{models.OrderCompleted, models.OrderPreparing},
	}
	for _, tt := range denied {
		assert.Error(t, statemachine.CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.OrderPreparing, models.OrderCancelled},
		statemachine.ValidTransitionsFrom(models.OrderPending))
	assert.Empty(t, statemachine.ValidTransitionsFrom(models.OrderCompleted))
}
