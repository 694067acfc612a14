package main

import (
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/infra/database"
	gormdb "todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/sqlc"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// store bundles the storage handle chosen by app.db.gateway.
type store struct {
	sessions db.TodoSessionFactory
	health   db.HealthDBGateway
	close    func() error
}

func openStore(cfg database.Config) (*store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Info(msg.GetMessage("db.open", cfg.Driver, cfg.Gateway))

	if cfg.Gateway == database.GatewaySQL {
		sqlDB, err := sqlc.Open(cfg)
		if err != nil {
			return nil, err
		}
		log.Info(msg.GetMessage("db.opened"))
		return &store{
			sessions: db.NewSQLCTodoSessionFactory(sqlDB, cfg.Driver),
			health:   db.NewSQLCHealthDBGateway(sqlDB, cfg.Driver),
			close:    sqlDB.Close,
		}, nil
	}

	gormDB, err := gormdb.Open(cfg)
	if err != nil {
		return nil, err
	}
	log.Info(msg.GetMessage("db.opened"))
	return &store{
		sessions: db.NewGormTodoSessionFactory(gormDB),
		health:   db.NewGormHealthDBGateway(gormDB),
		close:    func() error { return gormdb.Close(gormDB) },
	}, nil
}
