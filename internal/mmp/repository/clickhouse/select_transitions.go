package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

const selectTransitionsQuery = `
SELECT
	job_id,
	from_state,
	to_state,
	txid,
	memo,
	timestamp
FROM mmp_state_transitions
WHERE network = ?
ORDER BY job_id, timestamp`

// Transitions returns every stored state transition ordered by job and time.
func (r *Repository) Transitions(ctx context.Context) ([]model.StateTransition, error) {
	return query(ctx, r, "select_transitions", selectTransitionsQuery, scanTransition)
}

func scanTransition(rows Rows) (model.StateTransition, error) {
	var (
		jobID, from, to, txID, memo string
		timestamp                   time.Time
	)
	if err := rows.Scan(&jobID, &from, &to, &txID, &memo, &timestamp); err != nil {
		return model.StateTransition{}, err
	}

	id, err := chainhash.NewHashFromStr(jobID)
	if err != nil {
		return model.StateTransition{}, fmt.Errorf("job id %q: %w", jobID, err)
	}
	tx, err := chainhash.NewHashFromStr(txID)
	if err != nil {
		return model.StateTransition{}, fmt.Errorf("txid %q: %w", txID, err)
	}
	fromState, err := model.ParseJobState(from)
	if err != nil {
		return model.StateTransition{}, err
	}
	toState, err := model.ParseJobState(to)
	if err != nil {
		return model.StateTransition{}, err
	}

	return model.StateTransition{
		JobID:     *id,
		From:      fromState,
		To:        toState,
		TxID:      *tx,
		Memo:      memo,
		Timestamp: timestamp.UTC(),
	}, nil
}
