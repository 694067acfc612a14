package db

import (
	"context"
	"errors"
	"sync/atomic"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

type GormTodoSessionFactory struct {
	DB *gorm.DB
}

var _ TodoSessionFactory = (*GormTodoSessionFactory)(nil)

func NewGormTodoSessionFactory(db *gorm.DB) *GormTodoSessionFactory {
	return &GormTodoSessionFactory{DB: db}
}

// OpenSession starts a gorm session bound to ctx.
func (factory *GormTodoSessionFactory) OpenSession(ctx context.Context) (TodoSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &GormTodoGateway{db: factory.DB.WithContext(ctx)}, nil
}

type GormTodoGateway struct {
	db     *gorm.DB
	closed atomic.Bool
}

var _ TodoSession = (*GormTodoGateway)(nil)

func (gateway *GormTodoGateway) session(ctx context.Context) (*gorm.DB, error) {
	if gateway.closed.Load() {
		return nil, ErrSessionClosed
	}
	return gateway.db.WithContext(ctx), nil
}

func (gateway *GormTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	db, err := gateway.session(ctx)
	if err != nil {
		return nil, err
	}

	todos := make([]entity.Todo, 0)
	if err := db.Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	db, err := gateway.session(ctx)
	if err != nil {
		return nil, err
	}
	return takeByID(db, id)
}

func (gateway *GormTodoGateway) FindByCompleted(ctx context.Context, completed bool) ([]entity.Todo, error) {
	db, err := gateway.session(ctx)
	if err != nil {
		return nil, err
	}

	todos := make([]entity.Todo, 0)
	if err := db.Where("completed = ?", completed).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error) {
	db, err := gateway.session(ctx)
	if err != nil {
		return nil, err
	}

	todo.ID = 0
	if err := db.Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) UpdateByID(ctx context.Context, id int64, updated entity.Todo) (*entity.Todo, error) {
	db, err := gateway.session(ctx)
	if err != nil {
		return nil, err
	}

	var result *entity.Todo
	err = db.Transaction(func(tx *gorm.DB) error {
		existing, err := takeByID(tx, id)
		if err != nil || existing == nil {
			return err
		}

		err = tx.Model(existing).Updates(map[string]any{
			"title":     updated.Title,
			"completed": updated.Completed,
		}).Error
		if err != nil {
			return err
		}

		result, err = takeByID(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (gateway *GormTodoGateway) DeleteByID(ctx context.Context, id int64) (*entity.Todo, error) {
	db, err := gateway.session(ctx)
	if err != nil {
		return nil, err
	}

	var removed *entity.Todo
	err = db.Transaction(func(tx *gorm.DB) error {
		existing, err := takeByID(tx, id)
		if err != nil || existing == nil {
			return err
		}

		if err := tx.Delete(&entity.Todo{}, id).Error; err != nil {
			return err
		}
		removed = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// Close ends the session. Later calls fail with ErrSessionClosed.
func (gateway *GormTodoGateway) Close() error {
	if gateway.closed.Swap(true) {
		return ErrSessionClosed
	}
	return nil
}

func takeByID(db *gorm.DB, id int64) (*entity.Todo, error) {
	var todo entity.Todo
	err := db.Where("id = ?", id).Take(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}
