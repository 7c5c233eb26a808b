package clickhouse

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
	"github.com/goodnatureofminers/mmp-backend/pkg/safe"
)

const insertScannedBlocksQuery = `
INSERT INTO mmp_scanned_blocks (
	network,
	height,
	job_count,
	application_count,
	scanned_at
) VALUES`

// InsertScannedBlocks records heights that were searched for marketplace records.
func (r *Repository) InsertScannedBlocks(ctx context.Context, blocks []model.ScannedBlock) error {
	for _, block := range blocks {
		if _, err := safe.Uint32(block.Jobs); err != nil {
			return fmt.Errorf("block %d job count: %w", block.Height, err)
		}
		if _, err := safe.Uint32(block.Applications); err != nil {
			return fmt.Errorf("block %d application count: %w", block.Height, err)
		}
	}
	return insert(ctx, r, "insert_scanned_blocks", insertScannedBlocksQuery, blocks, func(block model.ScannedBlock) []any {
		return []any{
			string(r.network),
			block.Height,
			uint32(block.Jobs),
			uint32(block.Applications),
			block.ScannedAt.UTC(),
		}
	})
}
