// Package scheduler runs the board's polling tasks as independent
// self-rescheduling loops.
package scheduler

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/lobbyboard/lobbyboard/internal/scheduler"

// Task is one recurring (or one-shot) unit of work. Run performs a single
// fetch-and-render cycle; it handles its own fallback rendering and returns
// the underlying error for logging and metrics only.
type Task struct {
	// Name identifies the task in logs and metrics.
	Name string

	// Interval is the delay between the end of one cycle and the start of
	// the next. Zero means run once and stop.
	Interval time.Duration

	// Run performs one cycle.
	Run func(ctx context.Context) error
}

// Runner executes tasks, one goroutine per task. Tasks never overlap with
// themselves: the next cycle is scheduled only after the current one
// finishes, so a slow fetch pushes the schedule back instead of stacking
// up. There is no ordering between tasks and no shared state beyond what
// each task's own target region holds.
type Runner struct {
	logger zerolog.Logger
	tasks  []Task

	cycleDuration metric.Float64Histogram
	cycleTotal    metric.Int64Counter

	wg sync.WaitGroup
}

// NewRunner creates a task runner.
func NewRunner(logger zerolog.Logger) (*Runner, error) {
	meter := otel.Meter(meterName)

	cycleDuration, err := meter.Float64Histogram(
		"poller.cycle.duration",
		metric.WithDescription("Duration of poll cycles in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	cycleTotal, err := meter.Int64Counter(
		"poller.cycle.total",
		metric.WithDescription("Total number of poll cycles"),
		metric.WithUnit("{cycle}"),
	)
	if err != nil {
		return nil, err
	}

	return &Runner{
		logger:        logger,
		cycleDuration: cycleDuration,
		cycleTotal:    cycleTotal,
	}, nil
}

// Add registers a task. Must be called before Start.
func (r *Runner) Add(tasks ...Task) {
	r.tasks = append(r.tasks, tasks...)
}

// Start launches every registered task. Each loop stops when ctx is
// cancelled; in-flight cycles run to completion.
func (r *Runner) Start(ctx context.Context) {
	for _, t := range r.tasks {
		r.wg.Add(1)
		go func(task Task) {
			defer r.wg.Done()
			r.loop(ctx, task)
		}(t)
	}
}

// Wait blocks until every task loop has exited.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) loop(ctx context.Context, task Task) {
	for {
		r.runCycle(ctx, task)

		if task.Interval == 0 {
			return
		}

		// Interval is measured from the end of the cycle.
		select {
		case <-ctx.Done():
			return
		case <-time.After(task.Interval):
		}
	}
}

// runCycle executes one cycle, recording duration and outcome. A panic in
// a task must not take the process (and the other regions) down with it.
func (r *Runner) runCycle(ctx context.Context, task Task) {
	start := time.Now()
	var err error

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().
				Str("task", task.Name).
				Interface("error", rec).
				Str("stack", string(debug.Stack())).
				Msg("panic recovered in poll cycle")
		}

		duration := time.Since(start)
		attrs := []attribute.KeyValue{
			attribute.String("task.name", task.Name),
		}
		if err != nil {
			attrs = append(attrs, attribute.Bool("error", true))
		}
		r.cycleDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
		r.cycleTotal.Add(ctx, 1, metric.WithAttributes(attrs...))

		r.logger.Debug().
			Str("task", task.Name).
			Dur("duration", duration).
			Err(err).
			Msg("poll cycle completed")
	}()

	err = task.Run(ctx)
}
