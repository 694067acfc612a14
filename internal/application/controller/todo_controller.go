package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/boolutils"
	"todo-api/pkg/util/numberutils"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewTodoController(api *echo.Group, useCase todo.UseCase) *TodoController {
	return &TodoController{api: api, useCase: useCase}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.GET("/todos/filter/:completed", controller.FindByCompleted)
	controller.api.GET("/todos/:id", controller.FindByID)
	controller.api.POST("/todos", controller.Create)
	controller.api.PUT("/todos/:id", controller.Update)
	controller.api.DELETE("/todos/:id", controller.Delete)
}

// FindAll godoc
// @Summary List todos
// @Description Retrieve every todo in storage order
// @Tags todos
// @Produce json
// @Success 200 {array} model.TodoResponse "All todos"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	todos, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewTodoResponses(todos))
}

// FindByID godoc
// @Summary Get todo by id
// @Tags todos
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} model.TodoResponse "Todo"
// @Failure 400 {object} model.ErrorResponse "Invalid id"
// @Failure 404 {object} model.ErrorResponse "Todo not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos/{id} [get]
func (controller *TodoController) FindByID(c echo.Context) error {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	if err != nil {
		return badRequest(c, msg.GetMessage("todo.error.invalid-id", c.Param("id")))
	}

	found, err := controller.useCase.FindByID(c.Request().Context(), id)
	if errors.Is(err, todo.ErrTodoNotFound) {
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewTodoResponse(*found))
}

// FindByCompleted godoc
// @Summary Filter todos by status
// @Description Retrieve the todos whose completed flag equals the path value
// @Tags todos
// @Produce json
// @Param completed path bool true "Completion status"
// @Success 200 {array} model.TodoResponse "Matching todos"
// @Failure 400 {object} model.ErrorResponse "Invalid boolean"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos/filter/{completed} [get]
func (controller *TodoController) FindByCompleted(c echo.Context) error {
	completed, err := boolutils.ToBoolWithError(c.Param("completed"))
	if err != nil {
		return badRequest(c, msg.GetMessage("todo.error.invalid-completed", c.Param("completed")))
	}

	todos, err := controller.useCase.FindByCompleted(c.Request().Context(), completed)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewTodoResponses(todos))
}

// Create godoc
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} model.TodoResponse "Created todo"
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if problem := bindAndValidate(c, &dto); problem != nil {
		return c.JSON(http.StatusBadRequest, problem)
	}

	created, err := controller.useCase.Create(c.Request().Context(), dto)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusCreated, model.NewTodoResponse(*created))
}

// Update godoc
// @Summary Update a todo
// @Description Overwrite the fields present in the body; omitted fields keep their value
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Todo update data"
// @Success 200 {object} model.TodoResponse "Updated todo"
// @Failure 400 {object} model.ErrorResponse "Invalid id or request body"
// @Failure 404 {object} model.ErrorResponse "Todo not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos/{id} [put]
func (controller *TodoController) Update(c echo.Context) error {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	if err != nil {
		return badRequest(c, msg.GetMessage("todo.error.invalid-id", c.Param("id")))
	}

	var dto model.UpdateTodoDTO
	if problem := bindAndValidate(c, &dto); problem != nil {
		return c.JSON(http.StatusBadRequest, problem)
	}

	updated, err := controller.useCase.Update(c.Request().Context(), id, dto)
	if errors.Is(err, todo.ErrTodoNotFound) {
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewTodoResponse(*updated))
}

// Delete godoc
// @Summary Delete a todo
// @Description Remove a todo; deleting a missing id also reports ok
// @Tags todos
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} model.DeleteTodoResponse "Deleted"
// @Failure 400 {object} model.ErrorResponse "Invalid id"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	if err != nil {
		return badRequest(c, msg.GetMessage("todo.error.invalid-id", c.Param("id")))
	}

	if _, err := controller.useCase.Delete(c.Request().Context(), id); err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, model.DeleteTodoResponse{OK: true})
}

// bindAndValidate decodes the JSON body into dto and runs the registered validator.
// It returns the 400 payload to send, or nil when dto is valid.
func bindAndValidate(c echo.Context, dto interface{}) *model.ErrorResponse {
	if err := c.Bind(dto); err != nil {
		return &model.ErrorResponse{Error: msg.GetMessage("todo.error.invalid-body")}
	}
	if err := c.Validate(dto); err != nil {
		return &model.ErrorResponse{
			Error:   msg.GetMessage("todo.error.validation"),
			Details: middleware.ValidationDetails(err),
		}
	}
	return nil
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: message})
}

func internalError(c echo.Context, err error) error {
	log.Error(msg.GetMessage("app.error.internal"),
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
}
