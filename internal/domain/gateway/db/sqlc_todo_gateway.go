package db

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"sync/atomic"

	"todo-api/internal/domain/entity"
)

const todoColumns = "id, title, completed"

type SQLCTodoSessionFactory struct {
	DB *sql.DB
	// Driver is the database/sql driver name; "postgres" switches placeholders to $n.
	Driver string
}

var _ TodoSessionFactory = (*SQLCTodoSessionFactory)(nil)

func NewSQLCTodoSessionFactory(db *sql.DB, driver string) *SQLCTodoSessionFactory {
	return &SQLCTodoSessionFactory{DB: db, Driver: driver}
}

// OpenSession reserves one pooled connection until the session is closed.
func (factory *SQLCTodoSessionFactory) OpenSession(ctx context.Context) (TodoSession, error) {
	conn, err := factory.DB.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &SQLCTodoGateway{conn: conn, dollarPlaceholders: factory.Driver == "postgres"}, nil
}

type SQLCTodoGateway struct {
	conn               *sql.Conn
	dollarPlaceholders bool
	closed             atomic.Bool
}

var _ TodoSession = (*SQLCTodoGateway)(nil)

func (gateway *SQLCTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	return gateway.queryTodos(ctx, `SELECT `+todoColumns+` FROM todos`)
}

func (gateway *SQLCTodoGateway) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	return gateway.queryTodo(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)
}

func (gateway *SQLCTodoGateway) FindByCompleted(ctx context.Context, completed bool) ([]entity.Todo, error) {
	return gateway.queryTodos(ctx, `SELECT `+todoColumns+` FROM todos WHERE completed = ?`, completed)
}

func (gateway *SQLCTodoGateway) Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error) {
	created, err := gateway.queryTodo(ctx, `
		INSERT INTO todos (title, completed)
		VALUES (?, ?)
		RETURNING `+todoColumns, todo.Title, todo.Completed)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, sql.ErrNoRows
	}
	return created, nil
}

func (gateway *SQLCTodoGateway) UpdateByID(ctx context.Context, id int64, updated entity.Todo) (*entity.Todo, error) {
	return gateway.queryTodo(ctx, `
		UPDATE todos
		SET title = ?, completed = ?
		WHERE id = ?
		RETURNING `+todoColumns, updated.Title, updated.Completed, id)
}

func (gateway *SQLCTodoGateway) DeleteByID(ctx context.Context, id int64) (*entity.Todo, error) {
	return gateway.queryTodo(ctx, `DELETE FROM todos WHERE id = ? RETURNING `+todoColumns, id)
}

// Close returns the reserved connection to the pool.
func (gateway *SQLCTodoGateway) Close() error {
	if gateway.closed.Swap(true) {
		return ErrSessionClosed
	}
	return gateway.conn.Close()
}

func (gateway *SQLCTodoGateway) queryTodo(ctx context.Context, query string, args ...any) (*entity.Todo, error) {
	if gateway.closed.Load() {
		return nil, ErrSessionClosed
	}

	var todo entity.Todo
	err := gateway.conn.QueryRowContext(ctx, gateway.rebind(query), args...).
		Scan(&todo.ID, &todo.Title, &todo.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *SQLCTodoGateway) queryTodos(ctx context.Context, query string, args ...any) (results []entity.Todo, err error) {
	if gateway.closed.Load() {
		return nil, ErrSessionClosed
	}

	rows, err := gateway.conn.QueryContext(ctx, gateway.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results = make([]entity.Todo, 0)
	for rows.Next() {
		var todo entity.Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Completed); err != nil {
			return nil, err
		}
		results = append(results, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// rebind rewrites ? placeholders to $1..$n for postgres.
func (gateway *SQLCTodoGateway) rebind(query string) string {
	if !gateway.dollarPlaceholders {
		return query
	}

	var builder strings.Builder
	builder.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			builder.WriteByte('$')
			builder.WriteString(strconv.Itoa(n))
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
