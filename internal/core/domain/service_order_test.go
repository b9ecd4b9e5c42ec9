package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

func TestServiceOrderTransitions(t *testing.T) {
	statuses := []domain.ServiceOrderStatus{
		domain.ServiceOrderOpen,
		domain.ServiceOrderInProgress,
		domain.ServiceOrderFinished,
	}

	allowed := map[domain.ServiceOrderStatus]domain.ServiceOrderStatus{
		domain.ServiceOrderOpen:       domain.ServiceOrderInProgress,
		domain.ServiceOrderInProgress: domain.ServiceOrderFinished,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[from] == to
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestServiceOrderFinishedIsTerminal(t *testing.T) {
	finished := domain.ServiceOrderFinished
	assert.False(t, finished.CanTransitionTo(domain.ServiceOrderOpen))
	assert.False(t, finished.CanTransitionTo(domain.ServiceOrderInProgress))
	assert.False(t, finished.CanTransitionTo(domain.ServiceOrderFinished))

	order := domain.ServiceOrder{Status: domain.ServiceOrderFinished}
	assert.True(t, order.Finished())
}
