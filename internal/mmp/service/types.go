package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Registry is the contract store the services read and drive.
	Registry interface {
		Store(contract *model.JobContract) error
		Get(jobID chainhash.Hash) (*model.JobContract, error)
		GetByState(state model.JobState) []*model.JobContract
		UpdateState(jobID chainhash.Hash, next model.JobState, txid chainhash.Hash, memo string) (model.StateTransition, error)
		AddApplication(jobID chainhash.Hash, application model.WorkerApplication) error
		SetProvenance(jobID chainhash.Hash, provenance model.Provenance) error
		Expire(height uint32) []model.StateTransition
		AssignWorker(jobID chainhash.Hash, worker *btcec.PublicKey, txid chainhash.Hash, memo string) (model.StateTransition, error)
		AssignMiddleman(jobID chainhash.Hash, middleman model.Middleman) error
	}

	// Scanner finds marketplace records in the mempool and in blocks.
	Scanner interface {
		SearchMempoolForJobs(ctx context.Context) (model.ScanResult, error)
		SearchBlockchainForJobs(ctx context.Context, start, end uint32) (model.ScanResult, error)
	}

	// ChainTip reports the height of the best block.
	ChainTip interface {
		TipHeight(ctx context.Context) (uint32, error)
	}

	// ClickhouseRepository persists sightings and audit records and reads them back.
	ClickhouseRepository interface {
		InsertJobPostings(ctx context.Context, jobs []model.JobSearchResult) error
		InsertJobApplications(ctx context.Context, apps []model.ApplicationSearchResult) error
		InsertTransitions(ctx context.Context, transitions []model.StateTransition) error
		InsertScannedBlocks(ctx context.Context, blocks []model.ScannedBlock) error
		MaxScannedHeight(ctx context.Context) (uint32, error)
		JobPostings(ctx context.Context) ([]model.JobSearchResult, error)
		JobApplications(ctx context.Context) ([]model.ApplicationSearchResult, error)
		Transitions(ctx context.Context) ([]model.StateTransition, error)
	}

	// TransitionQueue accepts transition records for asynchronous persistence.
	TransitionQueue interface {
		Add(ctx context.Context, transition model.StateTransition) error
	}

	// WatcherMetrics records watcher activity.
	WatcherMetrics interface {
		ObserveScanBlocks(err error, heights int, started time.Time)
		ObserveScanMempool(err error, started time.Time)
		ObserveImport(kind string, err error)
		SetHeight(height uint32)
	}
)
