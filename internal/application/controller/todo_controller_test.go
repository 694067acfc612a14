package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
)

// failingUseCase fails every call with err and records whether storage was reached.
type failingUseCase struct {
	err    error
	called bool
}

func (f *failingUseCase) FindAll(context.Context) ([]entity.Todo, error) {
	f.called = true
	return nil, f.err
}

func (f *failingUseCase) FindByID(context.Context, int64) (*entity.Todo, error) {
	f.called = true
	return nil, f.err
}

func (f *failingUseCase) FindByCompleted(context.Context, bool) ([]entity.Todo, error) {
	f.called = true
	return nil, f.err
}

func (f *failingUseCase) Create(context.Context, model.CreateTodoDTO) (*entity.Todo, error) {
	f.called = true
	return nil, f.err
}

func (f *failingUseCase) Update(context.Context, int64, model.UpdateTodoDTO) (*entity.Todo, error) {
	f.called = true
	return nil, f.err
}

func (f *failingUseCase) Delete(context.Context, int64) (*entity.Todo, error) {
	f.called = true
	return nil, f.err
}

func newTodoEcho(useCase todo.UseCase) *echo.Echo {
	e := echo.New()
	middleware.SetupValidator(e)
	NewTodoController(e.Group(""), useCase).InitTodoRoutes()
	NewRootController(e.Group("")).InitRootRoutes()
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStorageErrorsAreInternalServerErrors(t *testing.T) {
	requests := []struct {
		method, target, body string
	}{
		{http.MethodGet, "/todos", ""},
		{http.MethodGet, "/todos/1", ""},
		{http.MethodGet, "/todos/filter/true", ""},
		{http.MethodPost, "/todos", `{"title":"A","completed":false}`},
		{http.MethodPut, "/todos/1", `{"title":"A"}`},
		{http.MethodDelete, "/todos/1", ""},
	}

	for _, r := range requests {
		t.Run(r.method+" "+r.target, func(t *testing.T) {
			useCase := &failingUseCase{err: errors.New("database is locked")}

			rec := serve(newTodoEcho(useCase), r.method, r.target, r.body)

			assert.True(t, useCase.called)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"database is locked"}`, rec.Body.String())
		})
	}
}

func TestNotFoundMapsTo404(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut} {
		useCase := &failingUseCase{err: todo.ErrTodoNotFound}

		rec := serve(newTodoEcho(useCase), method, "/todos/7", `{"title":"x"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code, method)
	}
}

func TestInvalidInputNeverReachesStorage(t *testing.T) {
	requests := []struct {
		method, target, body string
	}{
		{http.MethodGet, "/todos/one", ""},
		{http.MethodGet, "/todos/filter/sometimes", ""},
		{http.MethodPost, "/todos", `{"title":"A"}`},
		{http.MethodPost, "/todos", `{"title":"A","completed":1}`},
		{http.MethodPut, "/todos/1.5", `{"title":"A"}`},
		{http.MethodPut, "/todos/1", `{"title":false}`},
		{http.MethodDelete, "/todos/-", ""},
	}

	for _, r := range requests {
		t.Run(r.method+" "+r.target+" "+r.body, func(t *testing.T) {
			useCase := &failingUseCase{err: errors.New("unreachable")}

			rec := serve(newTodoEcho(useCase), r.method, r.target, r.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, useCase.called)
		})
	}
}

func TestGreet(t *testing.T) {
	rec := serve(newTodoEcho(&failingUseCase{}), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello, Human!"}`, rec.Body.String())
}
