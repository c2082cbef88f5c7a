// internal/batch/follow.go
package batch

import (
	"context"
	"fmt"

	"github.com/hpcloud/tail"
	"go.uber.org/zap"
)

// Sink receives follow-mode results as they are produced.
type Sink func(Result) error

// Follow tails a JSONL job file, evaluating each job as its line is appended,
// until ctx is done or sink returns an error. The file does not need to exist
// yet, and it may be truncated or rotated while followed.
func (r *Runner) Follow(ctx context.Context, path string, sink Sink) error {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
		Poll:      r.cfg.Poll,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to follow %s: %w", path, err)
	}
	defer t.Cleanup()
	defer func() { _ = t.Stop() }()

	r.logger.Info("Following job file.", zap.String("path", path))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-t.Lines:
			if !ok {
				return t.Err()
			}
			if line.Err != nil {
				r.logger.Warn("Error reading job file.", zap.Error(line.Err))
				continue
			}
			job, ok, err := DecodeLine([]byte(line.Text))
			if err != nil {
				r.logger.Warn("Skipping malformed job.", zap.String("line", line.Text), zap.Error(err))
				continue
			}
			if !ok {
				continue
			}
			if err := r.wait(ctx); err != nil {
				return err
			}
			if err := sink(r.evaluate(job)); err != nil {
				return fmt.Errorf("sink rejected result for job %s: %w", job.ID, err)
			}
		}
	}
}
