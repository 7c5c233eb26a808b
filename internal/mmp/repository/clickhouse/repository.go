// Package clickhouse stores marketplace sightings and audit records in ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

// Repository reads and writes marketplace records of one network.
type Repository struct {
	conn    Conn
	network model.Network
	metrics Metrics
	now     func() time.Time
}

// NewRepository opens a ClickHouse connection for dsn.
func NewRepository(dsn string, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{
		conn:    driverConn{conn: conn},
		network: network,
		metrics: metrics,
		now:     time.Now,
	}, nil
}

// Close releases the connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// insert runs query as one batch with a row appended per item.
func insert[T any](ctx context.Context, r *Repository, operation, query string, items []T, row func(T) []any) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe(operation, r.network, err, start)
		if err == nil {
			r.metrics.ObserveRows(operation, r.network, len(items))
		}
	}()

	if len(items) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare %s batch: %w", operation, err)
	}

	for _, item := range items {
		if err = batch.Append(row(item)...); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append %s row: %w", operation, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	return nil
}

// query runs q for the repository network and converts every row with scan.
func query[T any](ctx context.Context, r *Repository, operation, q string, scan func(Rows) (T, error)) (items []T, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe(operation, r.network, err, start)
		if err == nil {
			r.metrics.ObserveRows(operation, r.network, len(items))
		}
	}()

	rows, err := r.conn.Query(ctx, q, string(r.network))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", operation, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			items = nil
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan %s row: %w", operation, scanErr)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", operation, err)
	}
	return items, nil
}

// blockTime is the provenance timestamp stored with a sighting, seenAt when unknown.
func blockTime(p model.Provenance, seenAt time.Time) time.Time {
	if p.Timestamp.IsZero() {
		return seenAt
	}
	return p.Timestamp.UTC()
}

type driverConn struct {
	conn driver.Conn
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	batch, err := c.conn.PrepareBatch(ctx, query)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (c driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c driverConn) Close() error {
	return c.conn.Close()
}
