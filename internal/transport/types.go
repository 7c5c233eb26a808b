package transport

import (
	"context"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// JobService answers job queries and builds job transactions.
	JobService interface {
		ListOpenJobs(ctx context.Context, limit int, start, end uint32) ([]service.OpenJob, error)
		GetJob(jobID chainhash.Hash) (*model.JobContract, error)
		PostJob(ctx context.Context, req service.PostJobRequest) (*service.PostJobResult, error)
		Apply(ctx context.Context, req service.ApplyRequest) (*wire.MsgTx, error)
		AssignWorker(jobID chainhash.Hash, worker *btcec.PublicKey, txid chainhash.Hash) (model.StateTransition, error)
		AssignMiddleman(jobID chainhash.Hash, middleman model.Middleman) error
	}

	// ChainTip reports the height of the best block.
	ChainTip interface {
		TipHeight(ctx context.Context) (uint32, error)
	}
)
