package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// poolMonitor reports connection pool waits between two samples.
type poolMonitor struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	prev   sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, sqlDB *sql.DB) *poolMonitor {
	return &poolMonitor{
		logger: logger,
		stats:  sqlDB.Stats,
	}
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	if m.logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.prev = m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.observe(ctx, m.stats())
		}
	}
}

// observe logs when requests waited for a connection since the previous sample.
func (m *poolMonitor) observe(ctx context.Context, cur sql.DBStats) {
	waitDelta := cur.WaitCount - m.prev.WaitCount
	waitDurationDelta := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waitDelta <= 0 {
		return
	}

	level := slog.LevelDebug
	msg := "Postgres pool wait observed"
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
		msg = "Postgres pool wait detected"
	}

	m.logger.LogAttrs(ctx, level, msg,
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
