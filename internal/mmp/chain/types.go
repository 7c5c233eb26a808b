package chain

import (
	"context"

	"github.com/btcsuite/btcd/wire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Source is a read-only view of the node's chain and mempool. Implementations
	// must be safe for concurrent use.
	Source interface {
		TipHeight(ctx context.Context) (uint32, error)
		BlockAt(ctx context.Context, height uint32) (*wire.MsgBlock, error)
		MempoolTxs(ctx context.Context) ([]*wire.MsgTx, error)
	}
)
