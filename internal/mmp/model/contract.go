package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/escrow"
)

const (
	// ExpirationWarningBlocks is how close to the timeout a contract counts as near expiration.
	ExpirationWarningBlocks = 24
	// DisputeWindow is how long after completion the employer may still dispute.
	DisputeWindow = 24 * time.Hour
)

// MiddlemanInfo is the middleman selected for a contract.
type MiddlemanInfo struct {
	ID         chainhash.Hash
	Name       string
	Key        *btcec.PublicKey
	SelectedAt time.Time
}

// JobContract is the root aggregate of a job between employer, worker and middleman.
type JobContract struct {
	JobID    chainhash.Hash
	Metadata JobMetadata
	State    JobState

	// Escrow holds the participant keys, the derived scripts and the escrow address.
	Escrow escrow.Escrow

	Applications []WorkerApplication
	Middleman    *MiddlemanInfo

	TxID        chainhash.Hash
	BlockHeight uint32
	InMempool   bool

	CompletedAt time.Time
	DisputedAt  time.Time

	History []StateTransition
}

// NewJobContract builds a contract in state JobCreated owned by employer.
func NewJobContract(jobID chainhash.Hash, metadata JobMetadata, employer *btcec.PublicKey) *JobContract {
	return &JobContract{
		JobID:    jobID,
		Metadata: metadata,
		State:    JobCreated,
		Escrow: escrow.Escrow{
			Keys: escrow.KeyAggregationContext{EmployerKey: employer},
		},
	}
}

// EmployerKey returns the employer key, nil when absent.
func (c *JobContract) EmployerKey() *btcec.PublicKey { return c.Escrow.Keys.EmployerKey }

// WorkerKey returns the assigned worker key, nil until a worker is assigned.
func (c *JobContract) WorkerKey() *btcec.PublicKey { return c.Escrow.Keys.WorkerKey }

// MiddlemanKey returns the middleman key, nil when none was selected.
func (c *JobContract) MiddlemanKey() *btcec.PublicKey { return c.Escrow.Keys.MiddlemanKey }

// RefreshEscrow recomputes the escrow from keys. The contract is unchanged on error.
func (c *JobContract) RefreshEscrow(keys escrow.KeyAggregationContext, params *chaincfg.Params) error {
	return c.Escrow.Refresh(keys, params)
}

// AcceptsApplications reports whether workers may still apply.
func (c *JobContract) AcceptsApplications() bool {
	return c.State == JobOpen
}

// IsActive reports whether the contract can still change state.
func (c *JobContract) IsActive() bool {
	return !c.State.IsTerminal()
}

// IsExpired reports whether the timeout elapsed at height. A height below the
// creation height, as seen during a reorg, never expires a contract.
func (c *JobContract) IsExpired(height uint32) bool {
	if height < c.Metadata.CreatedHeight {
		return false
	}
	return height-c.Metadata.CreatedHeight >= c.Metadata.TimeoutBlocks
}

// IsNearExpiration reports whether fewer than ExpirationWarningBlocks remain.
func (c *JobContract) IsNearExpiration(height uint32) bool {
	if height < c.Metadata.CreatedHeight || c.IsExpired(height) {
		return false
	}
	remaining := c.Metadata.TimeoutBlocks - (height - c.Metadata.CreatedHeight)
	return remaining < ExpirationWarningBlocks
}

// IsInDisputePeriod reports whether a completed job can still be disputed at now.
func (c *JobContract) IsInDisputePeriod(now time.Time) bool {
	return c.State == JobCompleted && !c.CompletedAt.IsZero() && now.Sub(c.CompletedAt) < DisputeWindow
}

// CanWorkerClaimTimeout reports whether the dispute window closed without a dispute.
func (c *JobContract) CanWorkerClaimTimeout(now time.Time) bool {
	return c.State == JobCompleted && !c.CompletedAt.IsZero() && now.Sub(c.CompletedAt) >= DisputeWindow
}

// Validate reports the first structural problem of the contract.
func (c *JobContract) Validate() error {
	switch {
	case c.JobID == (chainhash.Hash{}):
		return errors.New("invalid job ID")
	case c.Metadata.Title == "":
		return errors.New("empty job title")
	case c.Metadata.Description == "":
		return errors.New("empty job description")
	case c.Metadata.Amount <= 0:
		return errors.New("invalid job amount")
	case c.Metadata.TimeoutBlocks == 0:
		return errors.New("invalid job timeout")
	case !escrow.IsValidKey(c.EmployerKey()):
		return errors.New("invalid employer key")
	case !c.State.IsKnown():
		return fmt.Errorf("invalid job state %d", c.State)
	}
	if c.State >= JobAssigned && c.State != JobCancelled && c.State != JobExpired && !escrow.IsValidKey(c.WorkerKey()) {
		return errors.New("invalid worker key for assigned job")
	}
	return nil
}

// Clone returns a deep copy. Public keys are shared since they are never mutated.
func (c *JobContract) Clone() *JobContract {
	if c == nil {
		return nil
	}
	out := *c
	out.Escrow.Scripts = escrow.ScriptPaths{
		EmployerApproval:    cloneBytes(c.Escrow.Scripts.EmployerApproval),
		WorkerTimeout:       cloneBytes(c.Escrow.Scripts.WorkerTimeout),
		MiddlemanResolution: cloneBytes(c.Escrow.Scripts.MiddlemanResolution),
		Refund:              cloneBytes(c.Escrow.Scripts.Refund),
	}
	if c.Applications != nil {
		out.Applications = append([]WorkerApplication(nil), c.Applications...)
	}
	if c.History != nil {
		out.History = append([]StateTransition(nil), c.History...)
	}
	if c.Middleman != nil {
		middleman := *c.Middleman
		out.Middleman = &middleman
	}
	return &out
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
