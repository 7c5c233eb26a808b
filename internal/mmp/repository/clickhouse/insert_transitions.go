package clickhouse

import (
	"context"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

const insertTransitionsQuery = `
INSERT INTO mmp_state_transitions (
	network,
	job_id,
	from_state,
	to_state,
	txid,
	memo,
	timestamp
) VALUES`

// InsertTransitions stores contract state transition records.
func (r *Repository) InsertTransitions(ctx context.Context, transitions []model.StateTransition) error {
	return insert(ctx, r, "insert_transitions", insertTransitionsQuery, transitions, func(t model.StateTransition) []any {
		return []any{
			string(r.network),
			t.JobID.String(),
			t.From.String(),
			t.To.String(),
			t.TxID.String(),
			t.Memo,
			t.Timestamp.UTC(),
		}
	})
}
