package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/resource"
)

// UseCases groups the domain services the HTTP layer delegates to.
type UseCases struct {
	Todo   todo.UseCase
	Health health.UseCase
}

// New builds the echo instance with middleware and every route registered.
func New(useCases UseCases) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	middleware.SetupRequestLogger(e)
	e.Use(echomw.Recover())
	middleware.SetupCORS(e)
	middleware.SetupValidator(e)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(resource.GetString("app.server.context-path"))

	rootController := controller.NewRootController(api)
	healthController := controller.NewHealthController(api, useCases.Health)
	todoController := controller.NewTodoController(api, useCases.Todo)

	rootController.InitRootRoutes()
	healthController.InitHealthRoutes()
	todoController.InitTodoRoutes()

	return e
}
