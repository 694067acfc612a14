package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/health"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

const defaultProbeTimeout = 5 * time.Second

// HealthScheduler periodically checks storage health and logs status transitions.
type HealthScheduler struct {
	cron       *cron.Cron
	useCase    health.UseCase
	expression string
	timeout    time.Duration
	lastStatus model.HealthStatus
}

func NewHealthScheduler(useCase health.UseCase, expression string, timeout time.Duration) *HealthScheduler {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &HealthScheduler{
		cron:       cron.New(),
		useCase:    useCase,
		expression: expression,
		timeout:    timeout,
		lastStatus: model.StatusUp,
	}
}

// InitHealthScheduleTasks registers the probe and starts the cron runner.
// An empty expression leaves the scheduler disabled.
func (scheduler *HealthScheduler) InitHealthScheduleTasks() error {
	if scheduler.expression == "" {
		log.Info(msg.GetMessage("health.probe.disabled"))
		return nil
	}

	if _, err := scheduler.cron.AddFunc(scheduler.expression, func() { scheduler.Probe() }); err != nil {
		return err
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("health.probe.started", scheduler.expression))
	return nil
}

// Probe runs one health check. Cron never overlaps runs of a single entry, so lastStatus needs no lock.
func (scheduler *HealthScheduler) Probe() model.HealthStatus {
	probeID := uuid.New().String()

	ctx, cancel := context.WithTimeout(context.Background(), scheduler.timeout)
	defer cancel()

	response := scheduler.useCase.CheckHealth(ctx)
	status := response.Status

	switch {
	case status != model.StatusUp && scheduler.lastStatus == model.StatusUp:
		log.Warn(msg.GetMessage("health.probe.down"),
			zap.String("probe_id", probeID),
			zap.Any("database", response.Database.Details))
	case status == model.StatusUp && scheduler.lastStatus != model.StatusUp:
		log.Info(msg.GetMessage("health.probe.recovered"), zap.String("probe_id", probeID))
	default:
		log.Debug(msg.GetMessage("health.probe.done", status), zap.String("probe_id", probeID))
	}

	scheduler.lastStatus = status
	return status
}

// Stop waits for a running probe to finish.
func (scheduler *HealthScheduler) Stop() {
	ctx := scheduler.cron.Stop()
	<-ctx.Done()
}
