package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

const selectJobPostingsQuery = `
SELECT
	job_id,
	txid,
	block_height,
	in_mempool,
	title,
	description,
	amount,
	timeout_blocks,
	requirements,
	deliverables,
	escrow_amount,
	block_time
FROM mmp_job_postings FINAL
WHERE network = ?
ORDER BY in_mempool, block_height, seen_at`

// JobPostings returns every stored posting sighting, confirmed ones first by height.
func (r *Repository) JobPostings(ctx context.Context) ([]model.JobSearchResult, error) {
	return query(ctx, r, "select_job_postings", selectJobPostingsQuery, scanJobPosting)
}

func scanJobPosting(rows Rows) (model.JobSearchResult, error) {
	var (
		jobID, txID                string
		height, timeout            uint32
		inMempool                  bool
		title, description         string
		requirements, deliverables string
		amount, escrowAmount       int64
		seenBlockAt                time.Time
	)
	if err := rows.Scan(&jobID, &txID, &height, &inMempool, &title, &description, &amount, &timeout,
		&requirements, &deliverables, &escrowAmount, &seenBlockAt); err != nil {
		return model.JobSearchResult{}, err
	}

	id, err := chainhash.NewHashFromStr(jobID)
	if err != nil {
		return model.JobSearchResult{}, fmt.Errorf("job id %q: %w", jobID, err)
	}
	tx, err := chainhash.NewHashFromStr(txID)
	if err != nil {
		return model.JobSearchResult{}, fmt.Errorf("txid %q: %w", txID, err)
	}

	return model.JobSearchResult{
		Provenance: model.Provenance{
			TxID:        *tx,
			BlockHeight: height,
			InMempool:   inMempool,
			Timestamp:   seenBlockAt.UTC(),
		},
		Posting: model.JobPosting{
			JobID:         *id,
			Title:         title,
			Description:   description,
			Amount:        btcutil.Amount(amount),
			TimeoutBlocks: timeout,
			Requirements:  requirements,
			Deliverables:  deliverables,
		},
		EscrowAmount: btcutil.Amount(escrowAmount),
	}, nil
}
