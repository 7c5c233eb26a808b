// Package registry holds job contracts and is the only writer of their state.
package registry

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/mmp-backend/internal/clock"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/escrow"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

var (
	// ErrContractNotFound is returned for an unknown job id.
	ErrContractNotFound = errors.New("contract not found")
	// ErrInvalidContract is returned when storing a contract without a job id.
	ErrInvalidContract = errors.New("invalid contract")
	// ErrInvalidTransition is returned for a state change the lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrApplicationsClosed is returned when applying to a contract that is not open.
	ErrApplicationsClosed = errors.New("contract does not accept applications")
	// ErrAlreadyApplied is returned when a worker applies to the same contract twice.
	ErrAlreadyApplied = errors.New("worker already applied")
)

// Registry is a concurrency-safe map of job contracts. Contracts are copied
// on the way in and out, so callers never share memory with the registry.
// No method calls another while holding the lock.
//
// Transitions reach the sink in the order they were applied. The sink is
// called without the state lock and must not change the registry.
type Registry struct {
	mu        sync.RWMutex
	contracts map[chainhash.Hash]*model.JobContract
	// publishMu is taken before mu is released, so publication order follows commit order.
	publishMu sync.Mutex

	params  *chaincfg.Params
	sink    TransitionSink
	metrics Metrics
	now     func() time.Time
}

// New creates an empty registry. sink and metrics may be nil.
func New(params *chaincfg.Params, sink TransitionSink, metrics Metrics) *Registry {
	return &Registry{
		contracts: make(map[chainhash.Hash]*model.JobContract),
		params:    params,
		sink:      sink,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Store inserts or overwrites the contract with the same job id.
func (r *Registry) Store(contract *model.JobContract) error {
	if contract == nil || contract.JobID == (chainhash.Hash{}) {
		return ErrInvalidContract
	}
	stored := contract.Clone()

	r.mu.Lock()
	r.contracts[stored.JobID] = stored
	n := len(r.contracts)
	r.mu.Unlock()

	r.setContracts(n)
	return nil
}

// Get returns a copy of the contract.
func (r *Registry) Get(jobID chainhash.Hash) (*model.JobContract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contract, ok := r.contracts[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContractNotFound, jobID)
	}
	return contract.Clone(), nil
}

// GetAll returns a snapshot of every contract ordered by job id.
func (r *Registry) GetAll() []*model.JobContract {
	return r.snapshot(func(*model.JobContract) bool { return true })
}

// GetByState returns a snapshot of the contracts in state, ordered by job id.
func (r *Registry) GetByState(state model.JobState) []*model.JobContract {
	return r.snapshot(func(c *model.JobContract) bool { return c.State == state })
}

// Len returns the number of stored contracts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contracts)
}

// Remove deletes the contract.
func (r *Registry) Remove(jobID chainhash.Hash) error {
	r.mu.Lock()
	_, ok := r.contracts[jobID]
	delete(r.contracts, jobID)
	n := len(r.contracts)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrContractNotFound, jobID)
	}
	r.setContracts(n)
	return nil
}

// UpdateState moves the contract to next and records the transition. An empty
// memo is replaced with a generated one.
func (r *Registry) UpdateState(jobID chainhash.Hash, next model.JobState, txid chainhash.Hash, memo string) (model.StateTransition, error) {
	r.mu.Lock()
	contract, ok := r.contracts[jobID]
	if !ok {
		r.mu.Unlock()
		return model.StateTransition{}, fmt.Errorf("%w: %s", ErrContractNotFound, jobID)
	}
	transition, err := r.transition(contract, next, txid, memo)
	if err != nil {
		r.mu.Unlock()
		r.rejected("update_state")
		return model.StateTransition{}, err
	}
	r.commit(transition)
	return transition, nil
}

// AddApplication appends an application to an open contract. A worker may
// apply to a contract once.
func (r *Registry) AddApplication(jobID chainhash.Hash, application model.WorkerApplication) error {
	r.mu.Lock()
	contract, ok := r.contracts[jobID]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrContractNotFound, jobID)
	}
	if !contract.AcceptsApplications() {
		state := contract.State
		r.mu.Unlock()
		r.rejected("add_application")
		return fmt.Errorf("%w: job %s is %s", ErrApplicationsClosed, jobID, state)
	}
	if hasApplied(contract, application.WorkerKey) {
		r.mu.Unlock()
		r.rejected("add_application")
		return fmt.Errorf("%w: job %s", ErrAlreadyApplied, jobID)
	}
	if application.Timestamp.IsZero() {
		application.Timestamp = r.now()
	}
	application.Status = model.ApplicationPending
	contract.Applications = append(contract.Applications, application)
	r.mu.Unlock()
	return nil
}

// SetProvenance records where the originating transaction of the contract was seen.
func (r *Registry) SetProvenance(jobID chainhash.Hash, provenance model.Provenance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contract, ok := r.contracts[jobID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrContractNotFound, jobID)
	}
	contract.TxID = provenance.TxID
	contract.BlockHeight = provenance.BlockHeight
	contract.InMempool = provenance.InMempool
	if !provenance.InMempool && contract.Metadata.CreatedHeight == 0 {
		contract.Metadata.CreatedHeight = provenance.BlockHeight
	}
	return nil
}

// AssignWorker selects the worker of an open contract, rebuilds the escrow for
// the new key set and moves the contract to ASSIGNED. Applications from the
// selected worker are accepted and every other one is rejected.
func (r *Registry) AssignWorker(jobID chainhash.Hash, worker *btcec.PublicKey, txid chainhash.Hash, memo string) (model.StateTransition, error) {
	if !escrow.IsValidKey(worker) {
		return model.StateTransition{}, fmt.Errorf("assign worker: %w", escrow.ErrNoValidKeys)
	}

	r.mu.Lock()
	contract, ok := r.contracts[jobID]
	if !ok {
		r.mu.Unlock()
		return model.StateTransition{}, fmt.Errorf("%w: %s", ErrContractNotFound, jobID)
	}
	if !contract.State.CanTransitionTo(model.JobAssigned) {
		state := contract.State
		r.mu.Unlock()
		r.rejected("assign_worker")
		return model.StateTransition{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, state, model.JobAssigned)
	}

	keys := contract.Escrow.Keys
	keys.WorkerKey = worker
	if err := contract.RefreshEscrow(keys, r.params); err != nil {
		r.mu.Unlock()
		return model.StateTransition{}, fmt.Errorf("assign worker: %w", err)
	}
	for i := range contract.Applications {
		if contract.Applications[i].WorkerKey != nil && contract.Applications[i].WorkerKey.IsEqual(worker) {
			contract.Applications[i].Status = model.ApplicationAccepted
		} else {
			contract.Applications[i].Status = model.ApplicationRejected
		}
	}
	transition, err := r.transition(contract, model.JobAssigned, txid, memo)
	if err != nil {
		r.mu.Unlock()
		return model.StateTransition{}, err
	}
	r.commit(transition)
	return transition, nil
}

// AssignMiddleman records the middleman of an active contract and rebuilds its escrow.
func (r *Registry) AssignMiddleman(jobID chainhash.Hash, middleman model.Middleman) error {
	if !escrow.IsValidKey(middleman.Key) {
		return fmt.Errorf("assign middleman: %w", escrow.ErrNoValidKeys)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	contract, ok := r.contracts[jobID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrContractNotFound, jobID)
	}
	if !contract.IsActive() {
		return fmt.Errorf("%w: job %s is %s", ErrInvalidTransition, jobID, contract.State)
	}

	keys := contract.Escrow.Keys
	keys.MiddlemanKey = middleman.Key
	if err := contract.RefreshEscrow(keys, r.params); err != nil {
		return fmt.Errorf("assign middleman: %w", err)
	}
	info := middleman.Info(r.now())
	contract.Middleman = &info
	return nil
}

// Expire moves every active contract whose timeout elapsed at height to EXPIRED.
func (r *Registry) Expire(height uint32) []model.StateTransition {
	var transitions []model.StateTransition

	r.mu.Lock()
	for _, contract := range r.contracts {
		if !contract.IsActive() || !contract.IsExpired(height) {
			continue
		}
		memo := fmt.Sprintf("Job expired at height %d", height)
		transition, err := r.transition(contract, model.JobExpired, chainhash.Hash{}, memo)
		if err != nil {
			continue
		}
		transitions = append(transitions, transition)
	}
	sort.Slice(transitions, func(i, j int) bool {
		return bytes.Compare(transitions[i].JobID[:], transitions[j].JobID[:]) < 0
	})
	r.commit(transitions...)
	return transitions
}

// transition applies a lifecycle step to contract. Callers hold the write lock.
func (r *Registry) transition(contract *model.JobContract, next model.JobState, txid chainhash.Hash, memo string) (model.StateTransition, error) {
	from := contract.State
	if !from.CanTransitionTo(next) {
		return model.StateTransition{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, next)
	}
	if memo == "" {
		memo = fmt.Sprintf("State transition from %s to %s", from, next)
	}

	now := r.now()
	if n := len(contract.History); n > 0 {
		now = clock.NotBefore(now, contract.History[n-1].Timestamp)
	}

	transition := model.StateTransition{
		JobID:     contract.JobID,
		From:      from,
		To:        next,
		TxID:      txid,
		Memo:      memo,
		Timestamp: now,
	}
	contract.State = next
	contract.History = append(contract.History, transition)

	switch next {
	case model.JobCompleted:
		contract.CompletedAt = now
	case model.JobDisputed:
		contract.DisputedAt = now
	}
	return transition, nil
}

func (r *Registry) snapshot(keep func(*model.JobContract) bool) []*model.JobContract {
	r.mu.RLock()
	out := make([]*model.JobContract, 0, len(r.contracts))
	for _, contract := range r.contracts {
		if keep(contract) {
			out = append(out, contract.Clone())
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].JobID[:], out[j].JobID[:]) < 0
	})
	return out
}

// commit releases the write lock and publishes transitions. Callers hold the write lock.
func (r *Registry) commit(transitions ...model.StateTransition) {
	r.publishMu.Lock()
	r.mu.Unlock()
	defer r.publishMu.Unlock()

	for _, transition := range transitions {
		r.publish(transition)
	}
}

func (r *Registry) publish(transition model.StateTransition) {
	if r.metrics != nil {
		r.metrics.ObserveTransition(transition.From, transition.To)
	}
	if r.sink != nil {
		r.sink.Publish(transition)
	}
}

func (r *Registry) rejected(operation string) {
	if r.metrics != nil {
		r.metrics.ObserveRejected(operation)
	}
}

func (r *Registry) setContracts(n int) {
	if r.metrics != nil {
		r.metrics.SetContracts(n)
	}
}

func hasApplied(contract *model.JobContract, worker *btcec.PublicKey) bool {
	if worker == nil {
		return false
	}
	for _, app := range contract.Applications {
		if app.WorkerKey != nil && app.WorkerKey.IsEqual(worker) {
			return true
		}
	}
	return false
}
