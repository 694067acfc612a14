package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-api/internal/domain/model"
)

type stubDBGateway struct {
	status model.ComponentHealthStatus
}

func (s stubDBGateway) Health(context.Context) model.ComponentHealthStatus {
	return s.status
}

func TestCheckHealth(t *testing.T) {
	cases := []struct {
		name string
		db   model.HealthStatus
		want model.HealthStatus
	}{
		{name: "database up", db: model.StatusUp, want: model.StatusUp},
		{name: "database down", db: model.StatusDown, want: model.StatusDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := stubDBGateway{status: model.ComponentHealthStatus{Status: tc.db}}

			response := NewHealthUseCase(gateway).CheckHealth(context.Background())

			assert.Equal(t, tc.want, response.Status)
			assert.Equal(t, tc.db, response.Database.Status)
		})
	}
}
