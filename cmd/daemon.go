package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/foomo/keel"
	"github.com/foomo/keel/service"
	"github.com/foomo/storesweep/pkg/sweep"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewDaemonCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Periodically sweep the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			svr := keel.NewServer(
				keel.WithHTTPPrometheusService(servicePrometheusEnabledFlag(v)),
				keel.WithHTTPHealthzService(serviceHealthzEnabledFlag(v)),
			)

			l := svr.Logger()

			st, err := createStore(cmd.Context(), v, l)
			if err != nil {
				return fmt.Errorf("failed to create store: %w", err)
			}

			sweeper, err := sweep.New(l.Named("inst.sweeper"),
				sweep.WithBatchSize(batchSizeFlag(v)),
				sweep.WithParallel(parallelFlag(v)),
			)
			if err != nil {
				return fmt.Errorf("failed to create sweeper: %w", err)
			}

			svr.AddClosers(func(ctx context.Context) error {
				return st.Close()
			})

			svr.AddServices(
				service.NewGoRoutine(l.Named("go.sweep"), "sweep", func(ctx context.Context, l *zap.Logger) error {
					ticker := time.NewTicker(intervalFlag(v))
					defer ticker.Stop()
					for {
						select {
						case <-ctx.Done():
							l.Debug("routine canceled", zap.Error(ctx.Err()))
							return nil
						case <-ticker.C:
							res, err := sweeper.DeleteAll(ctx, st)
							if err != nil {
								l.Error("sweep failed", zap.Error(err))
								continue
							}
							l.Info("sweep completed",
								zap.Int("deleted", res.Deleted),
								zap.Int("pages", res.Pages),
							)
						}
					}
				}),
			)

			svr.Run()
			return nil
		},
	}

	flags := cmd.Flags()
	addStorageTypeFlag(flags, v)
	addStorageBlobBucketFlag(flags, v)
	addStorageBlobPrefixFlag(flags, v)
	addStorageDirFlag(flags, v)
	addBatchSizeFlag(flags, v)
	addParallelFlag(flags, v)
	addIntervalFlag(flags, v)
	addServiceHealthzEnabledFlag(flags, v)
	addServicePrometheusEnabledFlag(flags, v)

	return cmd
}
