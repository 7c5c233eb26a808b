package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
	"github.com/goodnatureofminers/mmp-backend/pkg/batcher"
)

// TransitionLog writes the audit line of every contract state transition and
// queues the record for persistence.
type TransitionLog struct {
	logger *zap.Logger
	queue  TransitionQueue
}

// NewTransitionLog creates a TransitionLog. queue may be nil.
func NewTransitionLog(logger *zap.Logger, queue TransitionQueue) *TransitionLog {
	return &TransitionLog{
		logger: logger.Named("transitions"),
		queue:  queue,
	}
}

// Publish implements registry.TransitionSink.
func (l *TransitionLog) Publish(t model.StateTransition) {
	l.logger.Info("job state transition",
		zap.Stringer("job_id", t.JobID),
		zap.Stringer("from", t.From),
		zap.Stringer("to", t.To),
		zap.String("memo", t.Memo),
		zap.Stringer("txid", t.TxID),
	)
	if l.queue == nil {
		return
	}
	if err := l.queue.Add(context.Background(), t); err != nil {
		l.logger.Warn("transition not queued for persistence", zap.Stringer("job_id", t.JobID), zap.Error(err))
	}
}

// NewTransitionBatcher buffers transition records and writes them to repo.
func NewTransitionBatcher(logger *zap.Logger, repo ClickhouseRepository) *batcher.Batcher[model.StateTransition] {
	return batcher.New(
		logger.Named("transition_batcher"),
		repo.InsertTransitions,
		transitionFlushSize,
		transitionFlushInterval,
		transitionFlushRPS,
	)
}
