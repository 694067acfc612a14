package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/model"
	"todo-api/internal/infra/database"
)

func TestOpenStore(t *testing.T) {
	for _, gateway := range []string{database.GatewayGorm, database.GatewaySQL} {
		t.Run(gateway, func(t *testing.T) {
			s, err := openStore(database.Config{
				Driver:  database.DriverSQLite,
				Gateway: gateway,
				Path:    filepath.Join(t.TempDir(), "todos.db"),
			})
			require.NoError(t, err)

			session, err := s.sessions.OpenSession(context.Background())
			require.NoError(t, err)
			todos, err := session.FindAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, todos)
			require.NoError(t, session.Close())

			assert.Equal(t, model.StatusUp, s.health.Health(context.Background()).Status)
			assert.NoError(t, s.close())
		})
	}
}

func TestOpenStoreRejectsUnknownGateway(t *testing.T) {
	_, err := openStore(database.Config{Driver: database.DriverSQLite, Gateway: "ent", Path: "x.db"})
	assert.EqualError(t, err, "Unsupported database gateway: ent")
}
