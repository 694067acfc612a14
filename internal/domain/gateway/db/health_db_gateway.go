package db

import (
	"context"

	"todo-api/internal/domain/model"
)

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

func componentStatus(driver string, err error) model.ComponentHealthStatus {
	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"driver":  driver,
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver":  driver,
			"message": string(model.StatusUp),
		},
	}
}
