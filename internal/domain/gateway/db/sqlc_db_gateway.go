package db

import (
	"context"
	"database/sql"
	"time"

	"todo-api/internal/domain/model"
)

type SQLCHealthDBGateway struct {
	DB     *sql.DB
	Driver string
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB, driver string) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db, Driver: driver}
}

func (gateway *SQLCHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return componentStatus(gateway.Driver, gateway.DB.PingContext(ctx))
}
