package sweep

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/foomo/storesweep/pkg/metrics"
	"github.com/foomo/storesweep/pkg/store"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize is the page size used when none is configured.
const DefaultBatchSize = 10

// ErrInvalidBatchSize rejects batch sizes below 1.
var ErrInvalidBatchSize = errors.New("batch size must be at least 1")

type (
	// Sweeper drains whole stores in bounded-size pages. One Sweeper may be
	// shared by any number of stores and concurrent DeleteAll runs; the
	// batch size is the only shared mutable state.
	Sweeper struct {
		l         *zap.Logger
		batchSize atomic.Int64
		parallel  bool
	}
	Option func(*Sweeper)
)

// Result describes one DeleteAll run. On an aborted run it reflects the
// pages that completed before the error.
type Result struct {
	// Deleted is the number of items removed from the store.
	Deleted int `json:"deleted"`
	// Pages is the number of fully processed pages.
	Pages int `json:"pages"`
	// BatchSize is the page size the run was started with.
	BatchSize int `json:"batchSize"`
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func WithBatchSize(v int) Option {
	return func(o *Sweeper) {
		o.batchSize.Store(int64(v))
	}
}

// WithParallel enables concurrent deletes within a page. Pages still
// complete one at a time and a failed page still aborts the run.
func WithParallel(v bool) Option {
	return func(o *Sweeper) {
		o.parallel = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func New(l *zap.Logger, opts ...Option) (*Sweeper, error) {
	inst := &Sweeper{
		l: l.Named("sweeper"),
	}
	inst.batchSize.Store(DefaultBatchSize)

	for _, opt := range opts {
		opt(inst)
	}

	if inst.batchSize.Load() < 1 {
		return nil, errors.Wrapf(ErrInvalidBatchSize, "got %d", inst.batchSize.Load())
	}

	return inst, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// BatchSize returns the page size used by subsequent runs.
func (s *Sweeper) BatchSize() int {
	return int(s.batchSize.Load())
}

// SetBatchSize changes the page size for all subsequent DeleteAll runs on
// this Sweeper. Runs already in progress keep the size they started with.
func (s *Sweeper) SetBatchSize(n int) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidBatchSize, "got %d", n)
	}
	s.batchSize.Store(int64(n))
	return nil
}

// DeleteAll drains the store's full listing in pages of at most the
// configured batch size. The listing is fetched once and never re-queried
// mid drain: items added to the store afterwards are left for the next
// run. The first failed delete aborts the run and is propagated unchanged;
// already processed pages stay deleted and there is no retry. Cancellation
// is observed between pages, not within one.
func (s *Sweeper) DeleteAll(ctx context.Context, st store.Store) (Result, error) {
	var (
		start = time.Now()
		// fixed for the whole run
		batchSize = int(s.batchSize.Load())
		l         = s.l.With(zap.String("run_id", uuid.New().String()))
		res       = Result{BatchSize: batchSize}
	)
	defer func() {
		metrics.SweepDuration.WithLabelValues().Observe(time.Since(start).Seconds())
	}()

	snapshot, err := st.List(ctx)
	if err != nil {
		metrics.SweepsFailedCounter.WithLabelValues().Inc()
		return res, errors.Wrap(err, "failed to list store")
	}

	l.Info("sweep started",
		zap.Int("items", len(snapshot)),
		zap.Int("batch_size", batchSize),
	)

	for len(snapshot) > 0 {
		if err := ctx.Err(); err != nil {
			metrics.SweepsFailedCounter.WithLabelValues().Inc()
			l.Debug("sweep canceled", zap.Error(err))
			return res, err
		}

		page := snapshot
		if len(page) > batchSize {
			page = page[:batchSize]
		}

		deleted, err := s.deletePage(ctx, st, page)
		res.Deleted += deleted
		if err != nil {
			metrics.SweepsFailedCounter.WithLabelValues().Inc()
			l.Error("sweep failed", zap.Int("page", res.Pages+1), zap.Error(err))
			return res, err
		}

		snapshot = snapshot[len(page):]
		res.Pages++
		metrics.PagesProcessedCounter.WithLabelValues().Inc()
		metrics.ItemsDeletedCounter.WithLabelValues().Add(float64(deleted))
		l.Debug("page processed",
			zap.Int("page", res.Pages),
			zap.Int("remaining", len(snapshot)),
		)
	}

	metrics.SweepsCompletedCounter.WithLabelValues().Inc()
	l.Info("sweep completed",
		zap.Int("deleted", res.Deleted),
		zap.Int("pages", res.Pages),
	)
	return res, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

// deletePage issues one delete per page member and reports how many
// succeeded. Sequential mode stops at the first failure; parallel mode
// issues the whole page and aggregates its failures.
func (s *Sweeper) deletePage(ctx context.Context, st store.Store, page []store.FileRef) (int, error) {
	if s.parallel {
		return s.deletePageParallel(ctx, st, page)
	}
	for i, ref := range page {
		if err := st.Delete(ctx, ref); err != nil {
			return i, errors.Wrapf(err, "failed to delete ref %q", ref)
		}
	}
	return len(page), nil
}

func (s *Sweeper) deletePageParallel(ctx context.Context, st store.Store, page []store.FileRef) (int, error) {
	var (
		g    errgroup.Group
		errs = make([]error, len(page))
	)
	for i, ref := range page {
		g.Go(func() error {
			errs[i] = st.Delete(ctx, ref)
			return errs[i]
		})
	}
	// wait for the whole page before deciding to abort
	_ = g.Wait()

	deleted := 0
	for _, err := range errs {
		if err == nil {
			deleted++
		}
	}
	return deleted, multierr.Combine(errs...)
}
