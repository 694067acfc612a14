package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"todo-api/configs"
	"todo-api/internal/application/schedule"
	"todo-api/internal/application/server"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/infra/database"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

// @title todo-api
// @version 1.0
// @description CRUD service for to-do items.
// @BasePath /
func main() {
	log.Setup(configs.Env.ApplicationName, configs.Env.LogLevel)
	defer log.Sync()

	if path := configs.Env.PropertiesFilePath; path != "" {
		if err := resource.Init(path); err != nil {
			log.Fatal(err.Error())
		}
	}
	if path := configs.Env.MessagesFilePath; path != "" {
		if err := msg.Init(path); err != nil {
			log.Fatal(err.Error())
		}
	}

	log.Info(msg.GetMessage("app.start"))

	// Init infra
	dbConfig := database.LoadConfig()
	todoStore, err := openStore(dbConfig)
	if err != nil {
		log.Fatal(msg.GetMessage("db.error.open"), zap.Error(err))
	}
	defer func() {
		if err := todoStore.close(); err != nil {
			log.Error(msg.GetMessage("db.error.close"), zap.Error(err))
		}
	}()

	// Init UseCase
	todoUseCase := todo.NewTodoUseCase(todoStore.sessions)
	healthUseCase := health.NewHealthUseCase(todoStore.health)

	// Init Schedules
	probeCron := ""
	if resource.GetBool("app.health.probe.enabled") {
		probeCron = resource.GetString("app.health.probe.cron")
	}
	healthScheduler := schedule.NewHealthScheduler(healthUseCase, probeCron, resource.GetDuration("app.health.probe.timeout"))
	if err := healthScheduler.InitHealthScheduleTasks(); err != nil {
		log.Fatal(msg.GetMessage("health.probe.error.schedule"), zap.Error(err))
	}
	defer healthScheduler.Stop()

	// Init Routes
	e := server.New(server.UseCases{Todo: todoUseCase, Health: healthUseCase})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err.Error())
			stop()
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	timeout := resource.GetDuration("app.server.shutdown-timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.error.shutdown"), zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}
