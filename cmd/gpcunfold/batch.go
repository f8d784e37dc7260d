package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gpcunfold/internal/config"
	"github.com/philipparndt/gpcunfold/internal/logger"
	"github.com/philipparndt/gpcunfold/pkg/batch"
	"github.com/philipparndt/gpcunfold/pkg/watcher"
)

func newBatchCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "batch [cases.yaml]",
		Short: "Solve every update listed in a YAML case file",
		Long: `Evaluate a YAML case file. Each case names the triangle vertices i, j, k and
the known polar coordinates j_polar and k_polar. Invalid cases are reported
without stopping the run. With --watch the file is evaluated again every time
it is saved, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			failed, err := runBatch(out, path, a.cfg)
			if !watch {
				if err != nil {
					return err
				}
				if failed > 0 {
					return fmt.Errorf("%d case(s) failed", failed)
				}
				return nil
			}
			if err != nil {
				logger.Error("batch failed", zap.Error(err))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchBatch(ctx, out, path, a.cfg)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run when the case file changes")

	return cmd
}

func runBatch(w io.Writer, path string, cfg *config.Config) (int, error) {
	cases, err := batch.Load(path)
	if err != nil {
		return 0, err
	}

	outcomes := batch.Run(cases, cfg.Validate.MinArea)
	failed, err := writeOutcomes(w, outcomes, cfg.Output)
	logger.Info("batch evaluated",
		zap.String("file", path),
		zap.Int("cases", len(outcomes)),
		zap.Int("failed", failed))
	return failed, err
}

// watchBatch re-runs the case file on every change until ctx is done.
func watchBatch(ctx context.Context, w io.Writer, path string, cfg *config.Config) error {
	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce, func(err error) {
		logger.Warn("watcher error", zap.Error(err))
	})
	if err != nil {
		return err
	}
	defer fw.Close()

	reruns := make(chan struct{}, 1)
	if err := fw.Watch([]string{path}, func(string) {
		select {
		case reruns <- struct{}{}:
		default:
		}
	}); err != nil {
		return err
	}
	fw.Start()
	logger.Info("watching for changes", zap.String("file", path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-reruns:
			if _, err := runBatch(w, path, cfg); err != nil {
				logger.Error("batch failed", zap.Error(err))
			}
		}
	}
}
