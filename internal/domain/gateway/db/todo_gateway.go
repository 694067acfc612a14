package db

import (
	"context"
	"errors"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/msg"
)

// ErrSessionClosed is returned by a TodoSession used after Close.
var ErrSessionClosed = errors.New(msg.GetMessage("db.error.session-closed"))

// TodoGateway is the data-access layer over the todos table.
// Lookups by id report absence as a nil todo with a nil error.
type TodoGateway interface {
	FindAll(ctx context.Context) ([]entity.Todo, error)
	FindByID(ctx context.Context, id int64) (*entity.Todo, error)
	FindByCompleted(ctx context.Context, completed bool) ([]entity.Todo, error)

	Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error)
	UpdateByID(ctx context.Context, id int64, updated entity.Todo) (*entity.Todo, error)
	DeleteByID(ctx context.Context, id int64) (*entity.Todo, error)
}

// TodoSession is a TodoGateway scoped to one request. Close must be called exactly once
// the caller is done, on every exit path.
type TodoSession interface {
	TodoGateway
	Close() error
}

type TodoSessionFactory interface {
	OpenSession(ctx context.Context) (TodoSession, error)
}
