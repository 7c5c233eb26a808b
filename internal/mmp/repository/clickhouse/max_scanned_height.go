package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const maxScannedHeightQuery = `
SELECT coalesce(max(height), toUInt32(0)) AS max_height
FROM mmp_scanned_blocks
WHERE network = ?`

// MaxScannedHeight returns the highest scanned height of the network, zero if none.
func (r *Repository) MaxScannedHeight(ctx context.Context) (height uint32, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_scanned_height", r.network, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxScannedHeightQuery, string(r.network))
	if err != nil {
		return 0, fmt.Errorf("query max scanned height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("max scanned height not found")
	}
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max scanned height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max scanned height: %w", err)
	}
	return height, nil
}
