// Package service drives the marketplace: it builds job transactions, answers
// job queries and follows the chain to keep the contract registry current.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/codec"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/escrow"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/registry"
	"github.com/goodnatureofminers/mmp-backend/pkg/safe"
)

var (
	// ErrAlreadyApplied is returned when a worker applies to the same job twice.
	ErrAlreadyApplied = registry.ErrAlreadyApplied
	// ErrInvalidMiddleman is returned for a middleman profile that fails validation.
	ErrInvalidMiddleman = errors.New("invalid middleman")
	// ErrScanRangeTooLarge is returned when a listing asks for too many blocks.
	ErrScanRangeTooLarge = errors.New("scan range too large")
)

// PostJobRequest describes a new job posting.
type PostJobRequest struct {
	EmployerKey   *btcec.PublicKey
	Title         string
	Description   string
	Amount        btcutil.Amount
	TimeoutBlocks uint32
	Requirements  string
	Deliverables  string
}

// PostJobResult is the unsigned posting transaction and the derived escrow.
type PostJobResult struct {
	JobID         chainhash.Hash
	EscrowAddress string
	// Tx carries the posting payload at output 0 and the escrow output at
	// output 1. Inputs, change and signatures are left to the wallet.
	Tx *wire.MsgTx
}

// ApplyRequest describes an application to an open job.
type ApplyRequest struct {
	JobID     chainhash.Hash
	Proposal  string
	WorkerKey *btcec.PublicKey
}

// OpenJob is one entry of the open job listing.
type OpenJob struct {
	model.JobSearchResult
	EscrowAddress string
	Applications  int
}

// JobService builds marketplace transactions and answers job queries.
type JobService struct {
	registry Registry
	scanner  Scanner
	tip      ChainTip
	params   *chaincfg.Params
	logger   *zap.Logger
	now      func() time.Time
}

// NewJobService creates a JobService.
func NewJobService(registry Registry, scanner Scanner, tip ChainTip, params *chaincfg.Params, logger *zap.Logger) *JobService {
	return &JobService{
		registry: registry,
		scanner:  scanner,
		tip:      tip,
		params:   params,
		logger:   logger.Named("job_service"),
		now:      time.Now,
	}
}

// PostJob validates the request, derives the job id and the escrow, stores
// the contract as CREATED and returns the unsigned posting transaction.
func (s *JobService) PostJob(ctx context.Context, req PostJobRequest) (*PostJobResult, error) {
	if err := codec.ValidateJobPost(req.Title, req.Description, req.Amount, req.TimeoutBlocks); err != nil {
		return nil, err
	}
	if err := codec.ValidateJobTerms(req.Requirements, req.Deliverables); err != nil {
		return nil, err
	}
	if !escrow.IsValidKey(req.EmployerKey) {
		return nil, escrow.ErrEmployerKeyRequired
	}

	height, err := s.tip.TipHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("tip height: %w", err)
	}
	now := s.now()
	timestamp, err := safe.Uint32(now.Unix())
	if err != nil {
		return nil, fmt.Errorf("job timestamp: %w", err)
	}

	posting := model.JobPosting{
		JobID:         model.GenerateJobID(req.EmployerKey, req.Title, timestamp),
		Title:         req.Title,
		Description:   req.Description,
		Amount:        req.Amount,
		TimeoutBlocks: req.TimeoutBlocks,
		Requirements:  req.Requirements,
		Deliverables:  req.Deliverables,
	}
	contract := model.NewJobContract(posting.JobID, posting.Metadata(height, now), req.EmployerKey)
	if err := contract.RefreshEscrow(contract.Escrow.Keys, s.params); err != nil {
		return nil, fmt.Errorf("derive escrow: %w", err)
	}

	payload, err := codec.EncodeJobPosting(posting)
	if err != nil {
		return nil, fmt.Errorf("encode job posting: %w", err)
	}
	dataScript, err := codec.NullDataScript(payload)
	if err != nil {
		return nil, err
	}
	escrowScript, err := contract.Escrow.PkScript(s.params)
	if err != nil {
		return nil, fmt.Errorf("escrow script: %w", err)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxOut(wire.NewTxOut(0, dataScript))
	tx.AddTxOut(wire.NewTxOut(int64(req.Amount), escrowScript))

	if err := s.registry.Store(contract); err != nil {
		return nil, fmt.Errorf("store contract: %w", err)
	}

	s.logger.Info("job posted",
		zap.Stringer("job_id", posting.JobID),
		zap.String("escrow_address", contract.Escrow.Address),
		zap.Int64("amount", int64(req.Amount)),
	)
	return &PostJobResult{
		JobID:         posting.JobID,
		EscrowAddress: contract.Escrow.Address,
		Tx:            tx,
	}, nil
}

// Apply validates the request, records the application on the open contract
// and returns the unsigned application transaction.
func (s *JobService) Apply(_ context.Context, req ApplyRequest) (*wire.MsgTx, error) {
	if err := codec.ValidateJobApplication(req.JobID, req.Proposal); err != nil {
		return nil, err
	}
	if !escrow.IsValidKey(req.WorkerKey) {
		return nil, fmt.Errorf("worker key: %w", escrow.ErrNoValidKeys)
	}

	payload, err := codec.EncodeJobApplication(model.JobApplication{
		JobID:     req.JobID,
		Proposal:  req.Proposal,
		WorkerKey: req.WorkerKey,
	})
	if err != nil {
		return nil, fmt.Errorf("encode job application: %w", err)
	}
	dataScript, err := codec.NullDataScript(payload)
	if err != nil {
		return nil, err
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxOut(wire.NewTxOut(0, dataScript))

	err = s.registry.AddApplication(req.JobID, model.WorkerApplication{
		WorkerKey: req.WorkerKey,
		Proposal:  req.Proposal,
		Timestamp: s.now(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("job application recorded", zap.Stringer("job_id", req.JobID))
	return tx, nil
}

// AssignWorker selects the worker of an open job.
func (s *JobService) AssignWorker(jobID chainhash.Hash, worker *btcec.PublicKey, txid chainhash.Hash) (model.StateTransition, error) {
	return s.registry.AssignWorker(jobID, worker, txid, "Worker assigned")
}

// AssignMiddleman validates the middleman profile and attaches it to the job.
func (s *JobService) AssignMiddleman(jobID chainhash.Hash, middleman model.Middleman) error {
	if !middleman.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidMiddleman, middleman.Name)
	}
	return s.registry.AssignMiddleman(jobID, middleman)
}

// GetJob returns the contract of jobID.
func (s *JobService) GetJob(jobID chainhash.Hash) (*model.JobContract, error) {
	return s.registry.Get(jobID)
}

// ListOpenJobs merges the open contracts of the registry with postings found
// in the mempool and in blocks start..end. Registry entries win over scanned
// ones, and postings of contracts that left OPEN are dropped. Results are
// newest first. A non-positive limit means the default; limits are capped.
// With no heights the most recent blocks are scanned; an end of zero means
// the tip. Ranges wider than maxListWindow are refused.
func (s *JobService) ListOpenJobs(ctx context.Context, limit int, start, end uint32) ([]OpenJob, error) {
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}
	start, end, err := s.listRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	seen := make(map[chainhash.Hash]struct{})
	var jobs []OpenJob
	for _, contract := range s.registry.GetByState(model.JobOpen) {
		seen[contract.JobID] = struct{}{}
		jobs = append(jobs, openJobFromContract(contract))
	}

	chainResult, err := s.scanner.SearchBlockchainForJobs(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("search blockchain: %w", err)
	}
	mempoolResult, err := s.scanner.SearchMempoolForJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("search mempool: %w", err)
	}

	for _, found := range append(chainResult.Jobs, mempoolResult.Jobs...) {
		id := found.Posting.JobID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if contract, err := s.registry.Get(id); err == nil && contract.State != model.JobOpen {
			continue
		} else if err != nil && !errors.Is(err, registry.ErrContractNotFound) {
			return nil, err
		}
		jobs = append(jobs, OpenJob{JobSearchResult: found})
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i], jobs[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return bytes.Compare(a.Posting.JobID[:], b.Posting.JobID[:]) < 0
	})
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (s *JobService) listRange(ctx context.Context, start, end uint32) (uint32, uint32, error) {
	if end == 0 {
		tip, err := s.tip.TipHeight(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("tip height: %w", err)
		}
		end = tip
		if start == 0 && tip >= defaultListWindow {
			start = tip - defaultListWindow + 1
		}
	}
	if end >= start && end-start >= maxListWindow {
		return 0, 0, fmt.Errorf("%w: %d-%d exceeds %d blocks", ErrScanRangeTooLarge, start, end, maxListWindow)
	}
	return start, end, nil
}

func openJobFromContract(contract *model.JobContract) OpenJob {
	md := contract.Metadata
	return OpenJob{
		JobSearchResult: model.JobSearchResult{
			Provenance: model.Provenance{
				TxID:        contract.TxID,
				BlockHeight: md.CreatedHeight,
				InMempool:   contract.InMempool,
				Timestamp:   md.CreatedAt,
			},
			Posting: model.JobPosting{
				JobID:         contract.JobID,
				Title:         md.Title,
				Description:   md.Description,
				Amount:        md.Amount,
				TimeoutBlocks: md.TimeoutBlocks,
				Requirements:  md.Requirements,
				Deliverables:  md.Deliverables,
			},
			EscrowAmount: md.Amount,
		},
		EscrowAddress: contract.Escrow.Address,
		Applications:  len(contract.Applications),
	}
}
