package statemachine

import (
	"testing"

	"cafe-pos-api/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		actor   models.StaffRole
		allowed bool
	}{
		{"waiter completes pending", models.StatusPending, models.StatusCompleted, models.RoleWaiter, true},
		{"manager completes pending", models.StatusPending, models.StatusCompleted, models.RoleManager, true},
		{"waiter cancels pending", models.StatusPending, models.StatusCanceled, models.RoleWaiter, true},
		{"manager cancels pending", models.StatusPending, models.StatusCanceled, models.RoleManager, true},
		{"completed cannot reopen", models.StatusCompleted, models.StatusPending, models.RoleManager, false},
		{"canceled cannot complete", models.StatusCanceled, models.StatusCompleted, models.RoleManager, false},
		{"completed cannot cancel", models.StatusCompleted, models.StatusCanceled, models.RoleWaiter, false},
		{"chef cannot complete", models.StatusPending, models.StatusCompleted, models.RoleChef, false},
		{"no self transition", models.StatusPending, models.StatusPending, models.RoleWaiter, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to, tt.actor)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPending)
	assert.ElementsMatch(t, []models.OrderStatus{models.StatusCompleted, models.StatusCanceled}, nexts)

	assert.Empty(t, ValidTransitionsFrom(models.StatusCompleted))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCanceled))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.StatusPending))
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusCanceled))
}
