package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/mmp-backend/internal/clock"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/registry"
)

const (
	importKindPosting     = "job_posting"
	importKindApplication = "job_application"
)

// WatcherConfig tunes a Watcher.
type WatcherConfig struct {
	Network     model.Network
	StartHeight uint32
	ChunkSize   uint32
}

// Watcher follows the chain and the mempool and imports marketplace records
// into the registry.
type Watcher struct {
	logger            *zap.Logger
	registry          Registry
	scanner           Scanner
	tip               ChainTip
	repo              ClickhouseRepository
	metrics           WatcherMetrics
	sleep             func(context.Context, time.Duration, <-chan struct{}) error
	sleepDuration     time.Duration
	longSleepDuration time.Duration
	chunk             uint32
	next              uint32
	signal            <-chan struct{}
	now               func() time.Time
}

// NewWatcher builds a Watcher. signal may be nil; a value on it ends the
// current sleep early.
func NewWatcher(
	registry Registry,
	scanner Scanner,
	tip ChainTip,
	repo ClickhouseRepository,
	metrics WatcherMetrics,
	cfg WatcherConfig,
	logger *zap.Logger,
	signal <-chan struct{},
) (*Watcher, error) {
	if metrics == nil {
		return nil, errors.New("watcher metrics is required")
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = defaultScanChunk
	}
	return &Watcher{
		logger:            logger.Named("watcher").With(zap.String("network", string(cfg.Network))),
		registry:          registry,
		scanner:           scanner,
		tip:               tip,
		repo:              repo,
		metrics:           metrics,
		sleep:             clock.SleepOrWake,
		sleepDuration:     sleepDuration,
		longSleepDuration: longSleepDuration,
		chunk:             cfg.ChunkSize,
		next:              cfg.StartHeight,
		signal:            signal,
		now:               time.Now,
	}, nil
}

// Run restores the registry from the repository, resumes after the highest
// persisted height and follows the chain until the context is canceled.
func (s *Watcher) Run(ctx context.Context) error {
	scanned, err := s.repo.MaxScannedHeight(ctx)
	if err != nil {
		return fmt.Errorf("resume height: %w", err)
	}
	if scanned > 0 && scanned+1 > s.next {
		s.next = scanned + 1
	}
	restoreTip := scanned
	if restoreTip == 0 {
		restoreTip = s.next
	}
	if err := s.restore(ctx, restoreTip); err != nil {
		return fmt.Errorf("restore registry: %w", err)
	}
	s.logger.Info("watcher started", zap.Uint32("next_height", s.next))

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.sleep(ctx, s.sleepDuration, nil); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

// run scans one chunk of new blocks. Once caught up it scans the mempool,
// expires timed-out contracts and sleeps.
func (s *Watcher) run(ctx context.Context) error {
	tip, err := s.tip.TipHeight(ctx)
	if err != nil {
		return fmt.Errorf("tip height: %w", err)
	}

	if s.next <= tip {
		end := tip
		if tip-s.next >= s.chunk {
			end = s.next + s.chunk - 1
		}
		if err := s.scanBlocks(ctx, s.next, end, tip); err != nil {
			return err
		}
		s.next = end + 1
		s.metrics.SetHeight(end)
		if end < tip {
			return nil
		}
	}

	if err := s.scanMempool(ctx, tip); err != nil {
		return err
	}

	if expired := s.registry.Expire(tip); len(expired) > 0 {
		s.logger.Info("contracts expired", zap.Int("count", len(expired)), zap.Uint32("height", tip))
	}

	s.logger.Debug("caught up; sleeping", zap.Uint32("height", tip), zap.Duration("sleep", s.longSleepDuration))
	return s.sleep(ctx, s.longSleepDuration, s.signal)
}

func (s *Watcher) scanBlocks(ctx context.Context, start, end, tip uint32) error {
	started := time.Now()
	result, err := s.scanner.SearchBlockchainForJobs(ctx, start, end)
	s.metrics.ObserveScanBlocks(err, int(end-start)+1, started)
	if err != nil {
		return fmt.Errorf("scan blocks %d-%d: %w", start, end, err)
	}

	s.importResult(result, tip)
	if err := s.persist(ctx, result); err != nil {
		return err
	}
	if err := s.repo.InsertScannedBlocks(ctx, model.ScannedBlocks(result, start, end, s.now())); err != nil {
		return fmt.Errorf("persist scanned blocks: %w", err)
	}

	s.logger.Info("blocks scanned",
		zap.Uint32("start", start),
		zap.Uint32("end", end),
		zap.Int("jobs", len(result.Jobs)),
		zap.Int("applications", len(result.Applications)),
	)
	return nil
}

func (s *Watcher) scanMempool(ctx context.Context, tip uint32) error {
	started := time.Now()
	result, err := s.scanner.SearchMempoolForJobs(ctx)
	s.metrics.ObserveScanMempool(err, started)
	if err != nil {
		return fmt.Errorf("scan mempool: %w", err)
	}

	s.importResult(result, tip)
	return s.persist(ctx, result)
}

func (s *Watcher) persist(ctx context.Context, result model.ScanResult) error {
	if err := s.repo.InsertJobPostings(ctx, result.Jobs); err != nil {
		return fmt.Errorf("persist job postings: %w", err)
	}
	if err := s.repo.InsertJobApplications(ctx, result.Applications); err != nil {
		return fmt.Errorf("persist job applications: %w", err)
	}
	return nil
}

// importResult applies postings before applications so that an application
// mined in the same range as its posting finds an open contract.
func (s *Watcher) importResult(result model.ScanResult, tip uint32) {
	for _, job := range result.Jobs {
		err := s.importPosting(job, tip)
		s.metrics.ObserveImport(importKindPosting, err)
		if err != nil {
			s.logger.Warn("job posting not imported", zap.Stringer("job_id", job.Posting.JobID), zap.Error(err))
		}
	}
	for _, app := range result.Applications {
		err := s.importApplication(app)
		s.metrics.ObserveImport(importKindApplication, err)
		if err != nil {
			s.logger.Debug("job application not imported", zap.Stringer("job_id", app.Application.JobID), zap.Error(err))
		}
	}
}

func (s *Watcher) importPosting(job model.JobSearchResult, tip uint32) error {
	id := job.Posting.JobID
	contract, err := s.registry.Get(id)
	switch {
	case errors.Is(err, registry.ErrContractNotFound):
		height := job.BlockHeight
		if job.InMempool {
			height = tip
		}
		contract = model.NewJobContract(id, job.Posting.Metadata(height, job.Timestamp), nil)
		if err := s.registry.Store(contract); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	if !isConfirmed(contract) {
		if err := s.registry.SetProvenance(id, job.Provenance); err != nil {
			return err
		}
	}
	if contract.State != model.JobCreated {
		return nil
	}

	memo := "Job posting seen in mempool"
	if !job.InMempool {
		memo = fmt.Sprintf("Job posting confirmed at height %d", job.BlockHeight)
	}
	_, err = s.registry.UpdateState(id, model.JobOpen, job.TxID, memo)
	return err
}

func (s *Watcher) importApplication(app model.ApplicationSearchResult) error {
	err := s.registry.AddApplication(app.Application.JobID, model.WorkerApplication{
		WorkerKey: app.Application.WorkerKey,
		Proposal:  app.Application.Proposal,
		Timestamp: app.Timestamp,
		TxID:      app.TxID,
	})
	if errors.Is(err, registry.ErrAlreadyApplied) {
		return nil
	}
	return err
}

func isConfirmed(contract *model.JobContract) bool {
	return !contract.InMempool && contract.BlockHeight > 0
}
