// Package chain finds marketplace transactions in the mempool and in blocks.
package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/codec"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
	"github.com/goodnatureofminers/mmp-backend/pkg/workerpool"
)

const defaultWorkers = 4

// Scanner decodes marketplace payloads from snapshots supplied by a Source.
// It never mutates the snapshots it reads.
type Scanner struct {
	source  Source
	workers int
	logger  *zap.Logger
	now     func() time.Time
}

// NewScanner creates a Scanner fetching up to workers blocks concurrently.
func NewScanner(source Source, workers int, logger *zap.Logger) *Scanner {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Scanner{
		source:  source,
		workers: workers,
		logger:  logger.Named("scanner"),
		now:     time.Now,
	}
}

// SearchMempoolForJobs decodes every marketplace transaction currently in the mempool.
func (s *Scanner) SearchMempoolForJobs(ctx context.Context) (model.ScanResult, error) {
	txs, err := s.source.MempoolTxs(ctx)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("mempool snapshot: %w", err)
	}

	seenAt := s.now()
	var result model.ScanResult
	for _, tx := range txs {
		result.Append(s.scanTx(tx, model.Provenance{InMempool: true, Timestamp: seenAt}))
	}
	return result, nil
}

// SearchBlockchainForJobs decodes every marketplace transaction in blocks
// start..end inclusive. An end of zero means the current tip. A range that is
// reversed or beyond the tip yields an empty result.
func (s *Scanner) SearchBlockchainForJobs(ctx context.Context, start, end uint32) (model.ScanResult, error) {
	tip, err := s.source.TipHeight(ctx)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("tip height: %w", err)
	}
	if end == 0 {
		end = tip
	}
	if start > end || end > tip {
		s.logger.Debug("skip invalid scan range",
			zap.Uint32("start", start), zap.Uint32("end", end), zap.Uint32("tip", tip))
		return model.ScanResult{}, nil
	}

	heights := make([]uint32, 0, end-start+1)
	for h := start; ; h++ {
		heights = append(heights, h)
		if h == end {
			break
		}
	}

	perBlock, err := workerpool.Map(ctx, s.workers, heights, func(ctx context.Context, height uint32) (model.ScanResult, error) {
		block, err := s.source.BlockAt(ctx, height)
		if err != nil {
			return model.ScanResult{}, fmt.Errorf("block %d: %w", height, err)
		}
		return s.ScanBlock(block, height), nil
	})
	if err != nil {
		return model.ScanResult{}, err
	}

	var result model.ScanResult
	for _, r := range perBlock {
		result.Append(r)
	}
	return result, nil
}

// ScanBlock decodes the marketplace transactions of block mined at height.
func (s *Scanner) ScanBlock(block *wire.MsgBlock, height uint32) model.ScanResult {
	var result model.ScanResult
	for _, tx := range block.Transactions {
		result.Append(s.scanTx(tx, model.Provenance{BlockHeight: height, Timestamp: block.Header.Timestamp}))
	}
	return result
}

// scanTx decodes tx and tags the result with provenance plus the txid.
func (s *Scanner) scanTx(tx *wire.MsgTx, provenance model.Provenance) model.ScanResult {
	var result model.ScanResult
	if !codec.IsJobTransaction(tx) {
		return result
	}

	payload, index, err := codec.DecodeTx(tx)
	txid := tx.TxHash()
	if err != nil {
		s.logger.Debug("skip malformed marketplace payload", zap.Stringer("txid", txid), zap.Error(err))
		return result
	}

	provenance.TxID = txid
	switch payload.Kind {
	case codec.KindJobPosting:
		found := model.JobSearchResult{Provenance: provenance, Posting: *payload.Posting}
		if index+1 < len(tx.TxOut) {
			found.EscrowAmount = btcutil.Amount(tx.TxOut[index+1].Value)
		}
		result.Jobs = append(result.Jobs, found)
	case codec.KindJobApplication:
		result.Applications = append(result.Applications, model.ApplicationSearchResult{
			Provenance:  provenance,
			Application: *payload.Application,
		})
	}
	return result
}
