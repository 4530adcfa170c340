package worker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"crm/config"
	"crm/internal/delivery"
	"crm/internal/domain/repository"
	"crm/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPurgeInterval = time.Hour

// purgeJob periodically deletes expired refresh tokens.
type purgeJob struct {
	txManager repository.TransactionManager
	interval  time.Duration
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time

	ctx     context.Context
	cancel  context.CancelFunc
	started atomic.Bool
	done    chan struct{}
}

// PurgeJobParams holds dependencies for the purge job, injected by Fx
type PurgeJobParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	TxManager repository.TransactionManager
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewPurgeJob creates the expired refresh token purge delivery.
func NewPurgeJob(params PurgeJobParams) delivery.Delivery {
	interval := defaultPurgeInterval
	if params.Cfg.Purge != nil && params.Cfg.Purge.Interval > 0 {
		interval = params.Cfg.Purge.Interval
	}

	job := newPurgeJob(params.TxManager, interval, params.Metrics, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: job.stop,
	})

	return job
}

func newPurgeJob(txManager repository.TransactionManager, interval time.Duration, m *metrics.Metrics, logger *slog.Logger) *purgeJob {
	ctx, cancel := context.WithCancel(context.Background())

	return &purgeJob{
		txManager: txManager,
		interval:  interval,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// Serve purges once per interval until the job is stopped.
func (j *purgeJob) Serve(_ context.Context) error {
	j.started.Store(true)
	defer close(j.done)

	j.logger.Info("Starting refresh token purge", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.ctx.Done():
			return nil
		case <-ticker.C:
			// A failed pass is retried on the next tick.
			if _, err := j.purgeOnce(j.ctx); err != nil && j.ctx.Err() == nil {
				j.logger.Error("Refresh token purge failed", slog.Any("error", err))
			}
		}
	}
}

func (j *purgeJob) purgeOnce(ctx context.Context) (int64, error) {
	var purged int64
	err := j.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		purged, err = repoFactory.NewRefreshTokenRepository().DeleteExpired(ctx, j.now().UTC())

		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired refresh tokens")
	}

	j.metrics.AddPurged(purged)
	if purged > 0 {
		j.logger.Info("Purged expired refresh tokens", slog.Int64("count", purged))
	}

	return purged, nil
}

func (j *purgeJob) stop(ctx context.Context) error {
	j.cancel()
	if !j.started.Load() {
		return nil
	}

	select {
	case <-j.done:
	case <-ctx.Done():
	}

	return nil
}
