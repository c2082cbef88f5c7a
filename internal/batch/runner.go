// internal/batch/runner.go
package batch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/xkilldash9x/vector2/internal/config"
)

// Runner evaluates jobs concurrently.
type Runner struct {
	logger  *zap.Logger
	eval    *Evaluator
	cfg     config.BatchConfig
	limiter *rate.Limiter
}

// NewRunner creates a Runner. A zero RateLimit leaves job starts unthrottled.
func NewRunner(logger *zap.Logger, eval *Evaluator, cfg config.BatchConfig) *Runner {
	r := &Runner{
		logger: logger.Named("batch"),
		eval:   eval,
		cfg:    cfg,
	}
	if cfg.RateLimit > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.Burst, 1))
	}
	return r
}

// Run evaluates every job and returns one Result per job, in input order.
// A failing job only fails its own Result unless FailFast is set, in which
// case Run stops starting new jobs and returns an error wrapping
// ErrJobFailed. Jobs that never ran are reported as skipped.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(jobs))
	done := make([]bool, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.cfg.Concurrency, 1))

	for i := range jobs {
		if err := r.wait(gctx); err != nil {
			break
		}
		g.Go(func() error {
			results[i] = r.evaluate(jobs[i])
			done[i] = true
			if results[i].Failed() && r.cfg.FailFast {
				return fmt.Errorf("%w: %s (%s): %s", ErrJobFailed, jobs[i].ID, jobs[i].Op, results[i].Error)
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	skipped := 0
	for i, ok := range done {
		if !ok {
			results[i] = Result{ID: jobs[i].ID, Op: jobs[i].Op, Error: "skipped"}
			skipped++
		}
	}

	r.logger.Info("Batch finished.",
		zap.Int("jobs", len(jobs)),
		zap.Int("skipped", skipped),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	return results, err
}

// wait blocks until the rate limiter admits another job.
func (r *Runner) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.limiter == nil {
		return nil
	}
	return r.limiter.Wait(ctx)
}

func (r *Runner) evaluate(job Job) Result {
	res := Result{ID: job.ID, Op: job.Op}
	value, err := r.eval.Evaluate(job)
	if err != nil {
		res.Error = err.Error()
		r.logger.Debug("Job failed.", zap.String("id", job.ID), zap.String("op", job.Op), zap.Error(err))
		return res
	}
	res.Value = encodable(value)
	r.logger.Debug("Job evaluated.", zap.String("id", job.ID), zap.String("op", job.Op))
	return res
}
