// Package reconcile closes the gaps polling and webhooks leave behind: records
// stuck in pending because nobody came back to verify them, and gateway
// transactions whose row was never written.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"museum/internal/payment/gateway"
	"museum/internal/payment/models"
	"museum/internal/payment/store"
	"museum/internal/platform/config"
)

const (
	pendingBatch = 200
	listPageSize = 100
	// maxListPages bounds one sweep's walk through gateway history.
	maxListPages = 50
)

type PendingLister interface {
	ListPending(ctx context.Context, olderThan time.Time, limit int) ([]store.PendingRecord, error)
}

type TransactionLister interface {
	ListTransactions(ctx context.Context, from time.Time, page, perPage int) ([]models.GatewayTransaction, *gateway.Meta, error)
}

// Payments is the slice of the payment service the sweep drives.
type Payments interface {
	Refresh(ctx context.Context, kind models.Kind, reference, source string) (*models.Verification, error)
	RestoreOrphan(ctx context.Context, gtx *models.GatewayTransaction) (bool, error)
}

// Result summarises one sweep.
type Result struct {
	Checked  int
	Settled  int
	Failed   int
	Restored int
}

// refreshSource labels status changes made by a sweep.
const refreshSource = "reconcile"

type Reconciler struct {
	pending  PendingLister
	gateway  TransactionLister
	payments Payments
	cfg      config.ReconcileConfig
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*Reconciler)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// WithClock overrides the wall clock used to compute the grace and lookback
// windows.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

func New(pending PendingLister, gw TransactionLister, payments Payments, cfg config.ReconcileConfig, opts ...Option) (*Reconciler, error) {
	if pending == nil || gw == nil || payments == nil {
		return nil, errors.New("reconciler requires a store, a gateway and the payment service")
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	r := &Reconciler{
		pending:  pending,
		gateway:  gw,
		payments: payments,
		cfg:      cfg,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run sweeps once immediately and then every Interval until ctx is cancelled.
// A zero Interval disables the loop. Sweep errors are logged, not returned, so
// a gateway outage does not take the server down.
func (r *Reconciler) Run(ctx context.Context) error {
	if r.cfg.Interval <= 0 {
		r.logger.InfoContext(ctx, "payment reconciliation disabled")
		return nil
	}
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		r.sweepAndLog(ctx)
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
}

func (r *Reconciler) sweepAndLog(ctx context.Context) {
	res, err := r.Sweep(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.ErrorContext(ctx, "payment reconciliation sweep failed", "error", err)
		return
	}
	r.logger.InfoContext(ctx, "payment reconciliation sweep finished",
		"checked", res.Checked,
		"settled", res.Settled,
		"failed", res.Failed,
		"restored", res.Restored,
	)
}

// Sweep re-verifies stale pending records, then restores gateway transactions
// that have no local row. Running it twice converges on the same state.
func (r *Reconciler) Sweep(ctx context.Context) (Result, error) {
	var res Result
	if err := r.refreshPending(ctx, &res); err != nil {
		return res, err
	}
	if err := r.restoreOrphans(ctx, &res); err != nil {
		return res, err
	}
	return res, nil
}

func (r *Reconciler) refreshPending(ctx context.Context, res *Result) error {
	now := r.now()
	records, err := r.pending.ListPending(ctx, now.Add(-r.cfg.Grace), pendingBatch)
	if err != nil {
		return fmt.Errorf("list pending payments: %w", err)
	}
	res.Checked = len(records)

	var settled, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for _, rec := range records {
		g.Go(func() error {
			v, err := r.payments.Refresh(gctx, rec.Kind, rec.Reference, refreshSource)
			if err != nil {
				// One bad reference must not stall the rest of the batch.
				failed.Add(1)
				r.logger.WarnContext(gctx, "pending payment not refreshed",
					"kind", rec.Kind,
					"reference", rec.Reference,
					"error", err,
				)
				return nil
			}
			if v.Change.To.IsTerminal() {
				settled.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()
	res.Settled = int(settled.Load())
	res.Failed = int(failed.Load())
	return ctx.Err()
}

func (r *Reconciler) restoreOrphans(ctx context.Context, res *Result) error {
	from := r.now().Add(-r.cfg.Lookback)
	for page := 1; page <= maxListPages; page++ {
		txs, meta, err := r.gateway.ListTransactions(ctx, from, page, listPageSize)
		if err != nil {
			return fmt.Errorf("list gateway transactions: %w", err)
		}
		for i := range txs {
			restored, err := r.payments.RestoreOrphan(ctx, &txs[i])
			if err != nil {
				return err
			}
			if restored {
				res.Restored++
				r.logger.InfoContext(ctx, "restored payment record from gateway",
					"reference", txs[i].Reference,
					"status", txs[i].Status,
				)
			}
		}
		if len(txs) < listPageSize || meta == nil || page >= meta.PageCount {
			return nil
		}
	}
	return nil
}
