package metrics

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

// Querier is the subset of *sql.DB the refresher needs.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Refresher periodically recomputes the dataset gauges from the store.
type Refresher struct {
	DB       Querier
	Interval time.Duration
	Logger   *slog.Logger
}

// Run refreshes the gauges on the configured interval until ctx is done.
func (r *Refresher) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	r.refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, g := range []struct {
		table string
		gauge interface{ Set(float64) }
	}{
		{"articles", ArticlesTotal},
		{"comments", CommentsTotal},
		{"topics", TopicsTotal},
		{"users", UsersTotal},
	} {
		var count int64
		if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+g.table).Scan(&count); err != nil {
			if r.Logger != nil {
				r.Logger.Warn("metrics refresh failed", slog.String("table", g.table), slog.Any("error", err))
			}
			continue
		}
		g.gauge.Set(float64(count))
	}
}
