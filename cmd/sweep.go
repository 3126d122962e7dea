package cmd

import (
	"fmt"

	"github.com/foomo/storesweep/pkg/sweep"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewSweepCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete everything in the configured store, one page at a time",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			l := zap.L()

			st, err := createStore(cmd.Context(), v, l)
			if err != nil {
				return fmt.Errorf("failed to create store: %w", err)
			}
			defer func() {
				err = multierr.Append(err, st.Close())
			}()

			sweeper, err := sweep.New(l,
				sweep.WithBatchSize(batchSizeFlag(v)),
				sweep.WithParallel(parallelFlag(v)),
			)
			if err != nil {
				return fmt.Errorf("failed to create sweeper: %w", err)
			}

			res, err := sweeper.DeleteAll(cmd.Context(), st)
			if err != nil {
				return err
			}

			out, err := json.Marshal(res)
			if err != nil {
				return fmt.Errorf("failed to marshal result: %w", err)
			}
			cmd.Println(string(out))
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

	return cmd
}
