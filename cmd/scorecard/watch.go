package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/om-scorecard/internal/async"
	"github.com/joseph-ayodele/om-scorecard/internal/ingest"
	"github.com/joseph-ayodele/om-scorecard/internal/pipeline"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		outDir   string
		existing bool
		debounce time.Duration
		workers  int
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch <dir>...",
		Short: "Build a scorecard for every OM dropped into the directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := a.log()
			proc, err := pipeline.FromConfig(ctx, a.config(), log)
			if err != nil {
				return err
			}

			events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
				Roots:       args,
				InitialScan: existing,
				Debounce:    debounce,
				Logger:      log,
			})
			if err != nil {
				return err
			}

			// one worker keeps builds sequential
			q := async.NewBuildQueue(proc, log, async.WithWorkers(workers), async.WithProcessTimeout(timeout))
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				q.Shutdown(sctx)
			}()

			for {
				select {
				case p, ok := <-events:
					if !ok {
						return nil
					}
					if err := q.Enqueue(ctx, async.Job{Path: p, OutputDir: outDir}); err != nil {
						return err
					}
				case err, ok := <-errs:
					if !ok {
						errs = nil
						continue
					}
					log.Warn("ingest.watch.error", "err", err)
				case <-ctx.Done():
					return nil
				}
			}
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&existing, "existing", false, "also build documents already in the directories")
	cmd.Flags().DurationVar(&debounce, "debounce", 2*time.Second, "wait this long after the last write before building")
	cmd.Flags().IntVar(&workers, "workers", 1, "concurrent builds")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "per-document build timeout")
	return cmd
}
