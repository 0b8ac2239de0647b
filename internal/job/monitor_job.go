package job

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// CycleRunner is one full fetch-format-deliver cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) error
}

// MonitorJob fires the monitoring cycle once at startup and then on a fixed
// interval. Cycles run sequentially on one goroutine, so a slow cycle can
// never overlap the next one.
type MonitorJob struct {
	tracer       trace.Tracer
	runner       CycleRunner
	pollInterval time.Duration
}

func NewMonitorJob(tracer trace.Tracer, runner CycleRunner, pollIntervalSecs int) *MonitorJob {
	if pollIntervalSecs <= 0 {
		pollIntervalSecs = 60
	}
	return &MonitorJob{
		tracer:       tracer,
		runner:       runner,
		pollInterval: time.Duration(pollIntervalSecs) * time.Second,
	}
}

// Start blocks until ctx is cancelled. A failed cycle is logged and
// abandoned; the next tick proceeds normally.
func (j *MonitorJob) Start(ctx context.Context) {
	log.Println("Vault monitor job starting...")

	j.runOnce(ctx)

	ticker := time.NewTicker(j.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Vault monitor job stopped")
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *MonitorJob) runOnce(ctx context.Context) {
	_, span := j.tracer.Start(ctx, "monitor-job.run-once")
	defer span.End()

	if err := j.runner.RunCycle(ctx); err != nil {
		log.Printf("monitor cycle error: %v", err)
	}
}
