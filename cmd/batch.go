// File: cmd/batch.go
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/vector2/internal/batch"
	"github.com/xkilldash9x/vector2/internal/config"
	"github.com/xkilldash9x/vector2/internal/observability"
	"github.com/xkilldash9x/vector2/pkg/dispatch"
)

// batchOptions holds the flags of the batch command.
type batchOptions struct {
	format      string
	output      string
	follow      bool
	concurrency int
	failFast    bool
}

func newBatchCmd() *cobra.Command {
	var opts batchOptions

	batchCmd := &cobra.Command{
		Use:   "batch <jobs-file>",
		Short: "Evaluate a file of vector jobs",
		Long: `Evaluates every job in a JSON, JSONL or YAML file and writes the results
as a JSON array, in input order. Files ending in .br are read and written
brotli-compressed.

With --follow the file is tailed as JSONL and each appended job is evaluated
as it arrives, one JSON result per line, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.SetBatchConcurrency(opts.concurrency)
			}
			if cmd.Flags().Changed("fail-fast") {
				cfg.SetBatchFailFast(opts.failFast)
			}
			return runBatch(cmd.Context(), observability.GetLogger(), cfg, cmd.OutOrStdout(), args[0], opts)
		},
	}

	batchCmd.Flags().StringVarP(&opts.format, "format", "f", "", "job file format: json, jsonl or yaml (default from the file extension)")
	batchCmd.Flags().StringVarP(&opts.output, "output", "o", "", "write results to this file instead of stdout")
	batchCmd.Flags().BoolVar(&opts.follow, "follow", false, "tail the job file and evaluate jobs as they are appended")
	batchCmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "number of jobs evaluated in parallel (default from config)")
	batchCmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "stop at the first failing job")

	return batchCmd
}

// runBatch contains the testable core of the batch command.
func runBatch(ctx context.Context, logger *zap.Logger, cfg config.Interface, out io.Writer, path string, opts batchOptions) error {
	if err := cfg.Batch().Validate(); err != nil {
		return fmt.Errorf("invalid batch settings: %w", err)
	}
	eval := batch.NewEvaluator(dispatch.New(logger), cfg.Tolerance())
	runner := batch.NewRunner(logger, eval, cfg.Batch())

	if opts.follow {
		return runner.Follow(ctx, path, batch.LineSink(out))
	}

	format, err := resolveFormat(path, opts.format)
	if err != nil {
		return err
	}

	rc, err := batch.Open(path)
	if err != nil {
		return err
	}
	jobs, err := batch.Decode(rc, format)
	rc.Close()
	if err != nil {
		return err
	}
	logger.Info("Evaluating batch.", zap.String("path", path), zap.Int("jobs", len(jobs)))

	results, runErr := runner.Run(ctx, jobs)

	// Partial results are still written when the run was cut short.
	if opts.output != "" {
		if err := batch.WriteResultsFile(opts.output, results); err != nil {
			return err
		}
		logger.Info("Results written.", zap.String("path", opts.output))
	} else if err := batch.WriteResults(out, "", results); err != nil {
		return err
	}
	return runErr
}

func resolveFormat(path, explicit string) (batch.Format, error) {
	if explicit != "" {
		return batch.ParseFormat(explicit)
	}
	return batch.FormatFromPath(path)
}
