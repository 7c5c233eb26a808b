package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mmp-backend/pkg/safe"
)

// Source implements chain.Source on top of a node RPC connection.
type Source struct {
	rpc    RPCClient
	logger *zap.Logger
}

// NewSource creates a Source reading through rpc.
func NewSource(rpc RPCClient, logger *zap.Logger) *Source {
	return &Source{
		rpc:    rpc,
		logger: logger.Named("bitcoin_source"),
	}
}

// TipHeight returns the height of the best block.
func (s *Source) TipHeight(ctx context.Context) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	height, err := safe.Uint32(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// BlockAt returns the block of the active chain at height.
func (s *Source) BlockAt(ctx context.Context, height uint32) (*wire.MsgBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	block, err := s.rpc.GetBlock(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return block, nil
}

// MempoolTxs returns a snapshot of the mempool. Transactions evicted between
// listing and fetching are skipped.
func (s *Source) MempoolTxs(ctx context.Context) ([]*wire.MsgTx, error) {
	hashes, err := s.rpc.GetRawMempool()
	if err != nil {
		return nil, fmt.Errorf("get raw mempool: %w", err)
	}

	txs := make([]*wire.MsgTx, 0, len(hashes))
	for _, hash := range hashes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tx, err := s.rpc.GetRawTransaction(hash)
		if err != nil {
			s.logger.Debug("skip mempool transaction", zap.Stringer("txid", hash), zap.Error(err))
			continue
		}
		txs = append(txs, tx.MsgTx())
	}
	return txs, nil
}
