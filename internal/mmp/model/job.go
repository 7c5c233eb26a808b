package model

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// JobMetadata describes the work. It is immutable after the contract is created.
type JobMetadata struct {
	Title         string
	Description   string
	Amount        btcutil.Amount
	TimeoutBlocks uint32
	Requirements  string
	Deliverables  string
	CreatedHeight uint32
	CreatedAt     time.Time
}

// JobPosting is the job data carried by a posting transaction.
type JobPosting struct {
	JobID         chainhash.Hash
	Title         string
	Description   string
	Amount        btcutil.Amount
	TimeoutBlocks uint32
	Requirements  string
	Deliverables  string
}

// Metadata returns the posting as contract metadata created at height.
func (p JobPosting) Metadata(height uint32, createdAt time.Time) JobMetadata {
	return JobMetadata{
		Title:         p.Title,
		Description:   p.Description,
		Amount:        p.Amount,
		TimeoutBlocks: p.TimeoutBlocks,
		Requirements:  p.Requirements,
		Deliverables:  p.Deliverables,
		CreatedHeight: height,
		CreatedAt:     createdAt,
	}
}

// JobApplication is the application data carried by an application transaction.
type JobApplication struct {
	JobID     chainhash.Hash
	Proposal  string
	WorkerKey *btcec.PublicKey
}

// ApplicationStatus tracks the employer decision on an application.
type ApplicationStatus uint8

const (
	ApplicationPending ApplicationStatus = iota
	ApplicationAccepted
	ApplicationRejected
)

func (s ApplicationStatus) String() string {
	switch s {
	case ApplicationPending:
		return "pending"
	case ApplicationAccepted:
		return "accepted"
	case ApplicationRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// WorkerApplication is an application attached to a contract.
type WorkerApplication struct {
	WorkerKey *btcec.PublicKey
	Proposal  string
	Timestamp time.Time
	Status    ApplicationStatus
	TxID      chainhash.Hash
}

// StateTransition is the audit record of one state change.
type StateTransition struct {
	JobID     chainhash.Hash
	From      JobState
	To        JobState
	TxID      chainhash.Hash
	Memo      string
	Timestamp time.Time
}

// Provenance locates the transaction a sighting was decoded from.
type Provenance struct {
	TxID        chainhash.Hash
	BlockHeight uint32
	InMempool   bool
	// Timestamp is the block time, or the scan time for mempool sightings.
	Timestamp time.Time
}

// JobSearchResult is a job posting found in the mempool or in a block.
type JobSearchResult struct {
	Provenance
	Posting JobPosting
	// EscrowAmount is the value of the output following the data output, zero if absent.
	EscrowAmount btcutil.Amount
}

// ApplicationSearchResult is an application found in the mempool or in a block.
type ApplicationSearchResult struct {
	Provenance
	Application JobApplication
}

// ScanResult groups everything decoded from one snapshot.
type ScanResult struct {
	Jobs         []JobSearchResult
	Applications []ApplicationSearchResult
}

// Append adds other to r.
func (r *ScanResult) Append(other ScanResult) {
	r.Jobs = append(r.Jobs, other.Jobs...)
	r.Applications = append(r.Applications, other.Applications...)
}

// GenerateJobID derives the job id from the employer key, title and a unix timestamp.
func GenerateJobID(employer *btcec.PublicKey, title string, timestamp uint32) chainhash.Hash {
	var buf bytes.Buffer
	var key []byte
	if employer != nil {
		key = employer.SerializeCompressed()
	}
	// Writes to a bytes.Buffer cannot fail.
	_ = wire.WriteVarBytes(&buf, 0, key)
	_ = wire.WriteVarString(&buf, 0, title)
	_ = binary.Write(&buf, binary.LittleEndian, timestamp)
	return chainhash.DoubleHashH(buf.Bytes())
}

// ScannedBlock records that a height was searched for marketplace records.
type ScannedBlock struct {
	Height       uint32
	Jobs         int
	Applications int
	ScannedAt    time.Time
}

// ScannedBlocks summarizes result per height of the inclusive range start..end.
func ScannedBlocks(result ScanResult, start, end uint32, scannedAt time.Time) []ScannedBlock {
	if start > end {
		return nil
	}
	blocks := make([]ScannedBlock, 0, end-start+1)
	for h := start; ; h++ {
		blocks = append(blocks, ScannedBlock{Height: h, ScannedAt: scannedAt})
		if h == end {
			break
		}
	}
	for _, job := range result.Jobs {
		if !job.InMempool && job.BlockHeight >= start && job.BlockHeight <= end {
			blocks[job.BlockHeight-start].Jobs++
		}
	}
	for _, app := range result.Applications {
		if !app.InMempool && app.BlockHeight >= start && app.BlockHeight <= end {
			blocks[app.BlockHeight-start].Applications++
		}
	}
	return blocks
}
