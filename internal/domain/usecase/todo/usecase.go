package todo

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context) ([]entity.Todo, error)
	FindByID(ctx context.Context, id int64) (*entity.Todo, error)
	FindByCompleted(ctx context.Context, completed bool) ([]entity.Todo, error)
	Create(ctx context.Context, dto model.CreateTodoDTO) (*entity.Todo, error)
	Update(ctx context.Context, id int64, dto model.UpdateTodoDTO) (*entity.Todo, error)
	// Delete returns the removed todo, or nil when no todo had that id.
	Delete(ctx context.Context, id int64) (*entity.Todo, error)
}
