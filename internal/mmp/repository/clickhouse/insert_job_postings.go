package clickhouse

import (
	"context"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

const insertJobPostingsQuery = `
INSERT INTO mmp_job_postings (
	network,
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
	block_time,
	seen_at
) VALUES`

// InsertJobPostings stores job posting sightings.
func (r *Repository) InsertJobPostings(ctx context.Context, jobs []model.JobSearchResult) error {
	seenAt := r.now().UTC()
	return insert(ctx, r, "insert_job_postings", insertJobPostingsQuery, jobs, func(job model.JobSearchResult) []any {
		return []any{
			string(r.network),
			job.Posting.JobID.String(),
			job.TxID.String(),
			job.BlockHeight,
			job.InMempool,
			job.Posting.Title,
			job.Posting.Description,
			int64(job.Posting.Amount),
			job.Posting.TimeoutBlocks,
			job.Posting.Requirements,
			job.Posting.Deliverables,
			int64(job.EscrowAmount),
			blockTime(job.Provenance, seenAt),
			seenAt,
		}
	})
}
