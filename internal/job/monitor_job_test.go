package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

func TestNewMonitorJobInterval(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	job := NewMonitorJob(tracer, &stubRunner{}, 120)
	if job.pollInterval != 120*time.Second {
		t.Fatalf("expected 120s interval, got %v", job.pollInterval)
	}
}

func TestNewMonitorJobDefaultInterval(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	job := NewMonitorJob(tracer, &stubRunner{}, 0)
	if job.pollInterval != 60*time.Second {
		t.Fatalf("expected 60s default interval, got %v", job.pollInterval)
	}
}

func TestMonitorJobStartRunsImmediately(t *testing.T) {
	t.Parallel()

	tracer := trace.NewNoopTracerProvider().Tracer("test")
	stub := &stubRunner{}
	job := NewMonitorJob(tracer, stub, 3600)

	ctx, cancel := context.WithCancel(context.Background())
	go job.Start(ctx)

	// The interval is an hour, so any observed cycle is the startup one.
	eventually(t, func() bool { return stub.cycles > 0 })
	cancel()
}

func TestMonitorJobSurvivesFailedCycle(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	stub := &stubRunner{failures: 1}
	job := NewMonitorJob(tracer, stub, 60)

	job.runOnce(context.Background())
	job.runOnce(context.Background())

	if stub.cycles != 2 {
		t.Fatalf("expected the cycle after a failure to run, got %d cycles", stub.cycles)
	}
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(100 * time.Millisecond)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met")
}

type stubRunner struct {
	cycles   int
	failures int
}

func (s *stubRunner) RunCycle(ctx context.Context) error {
	s.cycles++
	if s.failures > 0 {
		s.failures--
		return errors.New("delivery failed")
	}
	return nil
}
