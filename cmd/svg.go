// File: cmd/svg.go
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/vector2/internal/config"
	"github.com/xkilldash9x/vector2/internal/observability"
	"github.com/xkilldash9x/vector2/internal/render"
	"github.com/xkilldash9x/vector2/pkg/vector"
)

func newSVGCmd() *cobra.Command {
	var output string
	var from string

	svgCmd := &cobra.Command{
		Use:   "svg <vector>...",
		Short: "Draw vectors as arrows in an SVG image",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			arrows, err := parseArrows(args, from)
			if err != nil {
				return err
			}

			if output == "" {
				return runSVG(observability.GetLogger(), cfg, cmd.OutOrStdout(), arrows)
			}
			return writeSVGFile(observability.GetLogger(), cfg, output, arrows)
		},
	}

	svgCmd.Flags().StringVarP(&output, "output", "o", "", "write the SVG to this file instead of stdout")
	svgCmd.Flags().StringVar(&from, "from", "", "common starting point of every arrow (default origin)")
	return svgCmd
}

// parseArrows converts command line vectors into arrows starting at from.
func parseArrows(args []string, from string) ([]render.Arrow, error) {
	origin := vector.Zero
	if from != "" {
		raw, err := parseOperand(from)
		if err != nil {
			return nil, fmt.Errorf("invalid --from: %w", err)
		}
		if origin, err = vector.ConvertAny(raw); err != nil {
			return nil, fmt.Errorf("invalid --from: %w", err)
		}
	}

	arrows := make([]render.Arrow, 0, len(args))
	for i, arg := range args {
		raw, err := parseOperand(arg)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}
		v, err := vector.ConvertAny(raw)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}
		arrows = append(arrows, render.Arrow{From: origin, Vector: v})
	}
	return arrows, nil
}

// writeSVGFile renders arrows into the file at path.
func writeSVGFile(logger *zap.Logger, cfg config.Interface, path string, arrows []render.Arrow) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return runSVG(logger, cfg, f, arrows)
}

// runSVG contains the testable core of the svg command.
func runSVG(logger *zap.Logger, cfg config.Interface, out io.Writer, arrows []render.Arrow) error {
	if err := render.NewRenderer(cfg.Render()).Write(out, arrows); err != nil {
		return err
	}
	logger.Debug("Rendered SVG.", zap.Int("arrows", len(arrows)))
	return nil
}
