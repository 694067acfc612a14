package todo

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

var ErrTodoNotFound = errors.New(msg.GetMessage("todo.error.not-found"))

type todoUseCase struct {
	sessions db.TodoSessionFactory
}

func NewTodoUseCase(sessions db.TodoSessionFactory) UseCase {
	return &todoUseCase{
		sessions: sessions,
	}
}

// withSession opens one storage session, runs fn and always releases the session.
func withSession[T any](ctx context.Context, uc *todoUseCase, fn func(db.TodoSession) (T, error)) (result T, err error) {
	session, err := uc.sessions.OpenSession(ctx)
	if err != nil {
		return result, fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Error(msg.GetMessage("db.error.session-close"), zap.Error(closeErr))
		}
	}()

	return fn(session)
}

func (uc *todoUseCase) FindAll(ctx context.Context) ([]entity.Todo, error) {
	return withSession(ctx, uc, func(session db.TodoSession) ([]entity.Todo, error) {
		return session.FindAll(ctx)
	})
}

func (uc *todoUseCase) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	todo, err := withSession(ctx, uc, func(session db.TodoSession) (*entity.Todo, error) {
		return session.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

func (uc *todoUseCase) FindByCompleted(ctx context.Context, completed bool) ([]entity.Todo, error) {
	return withSession(ctx, uc, func(session db.TodoSession) ([]entity.Todo, error) {
		return session.FindByCompleted(ctx, completed)
	})
}

func (uc *todoUseCase) Create(ctx context.Context, dto model.CreateTodoDTO) (*entity.Todo, error) {
	return withSession(ctx, uc, func(session db.TodoSession) (*entity.Todo, error) {
		return session.Create(ctx, dto.ToEntity())
	})
}

func (uc *todoUseCase) Update(ctx context.Context, id int64, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	updated, err := withSession(ctx, uc, func(session db.TodoSession) (*entity.Todo, error) {
		existing, err := session.FindByID(ctx, id)
		if err != nil || existing == nil {
			return nil, err
		}
		return session.UpdateByID(ctx, id, dto.ApplyTo(*existing))
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTodoNotFound
	}
	return updated, nil
}

func (uc *todoUseCase) Delete(ctx context.Context, id int64) (*entity.Todo, error) {
	removed, err := withSession(ctx, uc, func(session db.TodoSession) (*entity.Todo, error) {
		return session.DeleteByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	if removed == nil {
		log.Debug(msg.GetMessage("todo.delete-missing", id))
	} else {
		log.Debug(msg.GetMessage("todo.deleted", id))
	}
	return removed, nil
}
