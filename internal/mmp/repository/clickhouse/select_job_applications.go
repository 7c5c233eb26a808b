package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

const selectJobApplicationsQuery = `
SELECT
	job_id,
	txid,
	block_height,
	in_mempool,
	worker_key,
	proposal,
	block_time
FROM mmp_job_applications FINAL
WHERE network = ?
ORDER BY job_id, in_mempool, block_height, seen_at`

// JobApplications returns every stored application sighting grouped by job.
func (r *Repository) JobApplications(ctx context.Context) ([]model.ApplicationSearchResult, error) {
	return query(ctx, r, "select_job_applications", selectJobApplicationsQuery, scanJobApplication)
}

func scanJobApplication(rows Rows) (model.ApplicationSearchResult, error) {
	var (
		jobID, txID, workerKey, proposal string
		height                           uint32
		inMempool                        bool
		seenBlockAt                      time.Time
	)
	if err := rows.Scan(&jobID, &txID, &height, &inMempool, &workerKey, &proposal, &seenBlockAt); err != nil {
		return model.ApplicationSearchResult{}, err
	}

	id, err := chainhash.NewHashFromStr(jobID)
	if err != nil {
		return model.ApplicationSearchResult{}, fmt.Errorf("job id %q: %w", jobID, err)
	}
	tx, err := chainhash.NewHashFromStr(txID)
	if err != nil {
		return model.ApplicationSearchResult{}, fmt.Errorf("txid %q: %w", txID, err)
	}
	var worker *btcec.PublicKey
	if workerKey != "" {
		raw, err := hex.DecodeString(workerKey)
		if err != nil {
			return model.ApplicationSearchResult{}, fmt.Errorf("worker key: %w", err)
		}
		if worker, err = btcec.ParsePubKey(raw); err != nil {
			return model.ApplicationSearchResult{}, fmt.Errorf("worker key: %w", err)
		}
	}

	return model.ApplicationSearchResult{
		Provenance: model.Provenance{
			TxID:        *tx,
			BlockHeight: height,
			InMempool:   inMempool,
			Timestamp:   seenBlockAt.UTC(),
		},
		Application: model.JobApplication{
			JobID:     *id,
			Proposal:  proposal,
			WorkerKey: worker,
		},
	}, nil
}
