package clickhouse

import (
	"context"
	"encoding/hex"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

const insertJobApplicationsQuery = `
INSERT INTO mmp_job_applications (
	network,
	job_id,
	txid,
	block_height,
	in_mempool,
	worker_key,
	proposal,
	block_time,
	seen_at
) VALUES`

// InsertJobApplications stores job application sightings.
func (r *Repository) InsertJobApplications(ctx context.Context, apps []model.ApplicationSearchResult) error {
	seenAt := r.now().UTC()
	return insert(ctx, r, "insert_job_applications", insertJobApplicationsQuery, apps, func(app model.ApplicationSearchResult) []any {
		var workerKey string
		if app.Application.WorkerKey != nil {
			workerKey = hex.EncodeToString(app.Application.WorkerKey.SerializeCompressed())
		}
		return []any{
			string(r.network),
			app.Application.JobID.String(),
			app.TxID.String(),
			app.BlockHeight,
			app.InMempool,
			workerKey,
			app.Application.Proposal,
			blockTime(app.Provenance, seenAt),
			seenAt,
		}
	})
}
