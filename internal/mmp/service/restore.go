package service

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

// restore rebuilds the registry from persisted sightings and transitions.
// Jobs with recorded transitions get their history and state back as is.
// Jobs without any are imported again, which opens them and records the
// missing transition. tip stands in for the height of mempool sightings.
func (s *Watcher) restore(ctx context.Context, tip uint32) error {
	postings, err := s.repo.JobPostings(ctx)
	if err != nil {
		return fmt.Errorf("load job postings: %w", err)
	}
	apps, err := s.repo.JobApplications(ctx)
	if err != nil {
		return fmt.Errorf("load job applications: %w", err)
	}
	transitions, err := s.repo.Transitions(ctx)
	if err != nil {
		return fmt.Errorf("load transitions: %w", err)
	}

	appsByJob := make(map[chainhash.Hash][]model.ApplicationSearchResult)
	for _, app := range apps {
		appsByJob[app.Application.JobID] = append(appsByJob[app.Application.JobID], app)
	}
	history := make(map[chainhash.Hash][]model.StateTransition)
	for _, t := range transitions {
		history[t.JobID] = append(history[t.JobID], t)
	}

	var restored, reimported int
	for _, job := range preferredPostings(postings) {
		id := job.Posting.JobID
		if _, err := s.registry.Get(id); err == nil {
			continue
		}

		steps := history[id]
		if len(steps) == 0 {
			if err := s.importPosting(job, tip); err != nil {
				s.logger.Warn("job posting not restored", zap.Stringer("job_id", id), zap.Error(err))
				continue
			}
			for _, app := range appsByJob[id] {
				if err := s.importApplication(app); err != nil {
					s.logger.Debug("job application not restored", zap.Stringer("job_id", id), zap.Error(err))
				}
			}
			reimported++
			continue
		}

		if err := s.registry.Store(restoredContract(job, tip, steps, appsByJob[id])); err != nil {
			return fmt.Errorf("restore job %s: %w", id, err)
		}
		restored++
	}

	s.logger.Info("registry restored",
		zap.Int("postings", len(postings)),
		zap.Int("applications", len(apps)),
		zap.Int("transitions", len(transitions)),
		zap.Int("restored", restored),
		zap.Int("reimported", reimported),
	)
	return nil
}

// preferredPostings keeps one sighting per job. postings arrive confirmed
// first by ascending height, so the first sighting of a job wins.
func preferredPostings(postings []model.JobSearchResult) []model.JobSearchResult {
	seen := make(map[chainhash.Hash]struct{}, len(postings))
	preferred := make([]model.JobSearchResult, 0, len(postings))
	for _, job := range postings {
		if _, ok := seen[job.Posting.JobID]; ok {
			continue
		}
		seen[job.Posting.JobID] = struct{}{}
		preferred = append(preferred, job)
	}
	return preferred
}

// restoredContract rebuilds a contract from its posting and recorded history.
// Application decisions are not recorded, so applications come back pending.
func restoredContract(job model.JobSearchResult, tip uint32, steps []model.StateTransition, apps []model.ApplicationSearchResult) *model.JobContract {
	height := job.BlockHeight
	if job.InMempool {
		height = tip
	}
	contract := model.NewJobContract(job.Posting.JobID, job.Posting.Metadata(height, job.Timestamp), nil)
	contract.TxID = job.TxID
	contract.BlockHeight = job.BlockHeight
	contract.InMempool = job.InMempool
	contract.History = steps
	contract.State = steps[len(steps)-1].To

	for _, step := range steps {
		switch step.To {
		case model.JobCompleted:
			contract.CompletedAt = step.Timestamp
		case model.JobDisputed:
			contract.DisputedAt = step.Timestamp
		}
	}

	applied := make(map[string]struct{}, len(apps))
	for _, app := range apps {
		if app.Application.WorkerKey == nil {
			continue
		}
		key := string(app.Application.WorkerKey.SerializeCompressed())
		if _, ok := applied[key]; ok {
			continue
		}
		applied[key] = struct{}{}
		contract.Applications = append(contract.Applications, model.WorkerApplication{
			WorkerKey: app.Application.WorkerKey,
			Proposal:  app.Application.Proposal,
			Timestamp: app.Timestamp,
			Status:    model.ApplicationPending,
			TxID:      app.TxID,
		})
	}
	return contract
}
