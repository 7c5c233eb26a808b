package model

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	MinMiddlemanBond btcutil.Amount = 1_000_000     // 0.01 BTC
	MaxMiddlemanBond btcutil.Amount = 1_000_000_000 // 10 BTC
)

const (
	MaxTrustScore              = 100
	MaxMiddlemanNameLength     = 50
	MaxMiddlemanDescLength     = 500
	MaxSpecialtiesPerMiddleman = 10
)

const (
	defaultDecayRate      = 0.0038 // per day
	defaultMinRetention   = 0.5
	defaultTrustScore     = 50
	defaultResponseBlocks = 144
	defaultMaxConcurrent  = 5
)

// Specialty is an area of expertise of a middleman.
type Specialty struct {
	Category      string
	Subcategory   string
	Experience    uint32 // 1-5
	JobsCompleted uint32
}

// MiddlemanPerformance tracks how a middleman handled past disputes.
type MiddlemanPerformance struct {
	AvgResponseBlocks    uint32
	AvgResolutionBlocks  uint32
	EmployerSatisfaction float64
	WorkerSatisfaction   float64
	DisputesResolved     uint32
	DisputesAppealed     uint32
	UpdatedAt            time.Time
}

// IsFresh reports whether the metrics were updated within maxAge of now.
func (p MiddlemanPerformance) IsFresh(now time.Time, maxAge time.Duration) bool {
	return now.Sub(p.UpdatedAt) <= maxAge
}

// SlashRecord is one bond slash.
type SlashRecord struct {
	DisputeID chainhash.Hash
	Timestamp time.Time
	Amount    btcutil.Amount
	Reason    string
}

// BondInsurance optionally covers a middleman bond.
type BondInsurance struct {
	Active    bool
	Coverage  btcutil.Amount
	Provider  string
	ExpiresAt time.Time
}

// IsValid reports whether the insurance is absent or fully populated and unexpired at now.
func (b BondInsurance) IsValid(now time.Time) bool {
	if !b.Active {
		return true
	}
	return b.Coverage > 0 && b.Provider != "" && !b.ExpiresAt.IsZero() && now.Before(b.ExpiresAt)
}

// Middleman is an arbiter able to resolve disputes.
type Middleman struct {
	ID                 chainhash.Hash
	Name               string
	Key                *btcec.PublicKey
	TrustScore         uint32
	IsActive           bool
	AcceptsNewJobs     bool
	Fee                btcutil.Amount
	Bond               btcutil.Amount
	Description        string
	ContactInfo        string
	ResponseTimeBlocks uint32
	MaxConcurrentJobs  uint32

	TotalDisputes         uint32
	SuccessfulResolutions uint32
	BondSlashes           uint32

	Specialties []Specialty
	Performance MiddlemanPerformance
	Slashes     []SlashRecord
	Insurance   BondInsurance

	// DecayRate is the daily reputation decay; zero selects the default.
	DecayRate    float64
	MinRetention float64
	LastActiveAt time.Time
}

// NewMiddleman returns an active middleman accepting jobs with a neutral trust score.
func NewMiddleman(name string, key *btcec.PublicKey, fee, bond btcutil.Amount) Middleman {
	return Middleman{
		ID:                 MiddlemanID(name, key),
		Name:               name,
		Key:                key,
		TrustScore:         defaultTrustScore,
		IsActive:           true,
		AcceptsNewJobs:     true,
		Fee:                fee,
		Bond:               bond,
		ResponseTimeBlocks: defaultResponseBlocks,
		MaxConcurrentJobs:  defaultMaxConcurrent,
		MinRetention:       defaultMinRetention,
	}
}

// DefaultMiddleman is the fallback arbiter used when the parties did not choose one.
func DefaultMiddleman(key *btcec.PublicKey) Middleman {
	m := NewMiddleman("DefaultMiddleman", key, 10_000, 10_000_000)
	m.Description = "Default middleman for testing purposes"
	m.ContactInfo = "default@example.com"
	return m
}

// MiddlemanID hashes the name and compressed key of a middleman.
func MiddlemanID(name string, key *btcec.PublicKey) chainhash.Hash {
	var buf bytes.Buffer
	var serialized []byte
	if key != nil {
		serialized = key.SerializeCompressed()
	}
	_ = wire.WriteVarString(&buf, 0, name)
	_ = wire.WriteVarBytes(&buf, 0, serialized)
	return chainhash.DoubleHashH(buf.Bytes())
}

// IsValid checks bond bounds, trust score, text lengths and fee against the bond.
func (m Middleman) IsValid() bool {
	switch {
	case m.Bond < MinMiddlemanBond || m.Bond > MaxMiddlemanBond:
		return false
	case m.TrustScore > MaxTrustScore:
		return false
	case m.Name == "" || len(m.Name) > MaxMiddlemanNameLength:
		return false
	case len(m.Description) > MaxMiddlemanDescLength:
		return false
	case len(m.Specialties) > MaxSpecialtiesPerMiddleman:
		return false
	case m.Fee <= 0 || m.Fee > m.Bond:
		return false
	}
	return true
}

// EffectiveReputation is the trust score reduced by the share of disputes that
// ended in a bond slash.
func (m Middleman) EffectiveReputation() uint32 {
	if m.TotalDisputes == 0 {
		return m.TrustScore
	}
	penalty := m.BondSlashes * 100 / m.TotalDisputes
	if penalty > m.TrustScore {
		penalty = m.TrustScore
	}
	return m.TrustScore - penalty
}

// TimeDecayFactor is the share of reputation retained after inactivity.
func (m Middleman) TimeDecayFactor(inactive time.Duration) float64 {
	rate := m.DecayRate
	if rate == 0 {
		rate = defaultDecayRate
	}
	days := inactive.Hours() / 24
	return math.Max(m.MinRetention, math.Exp(-rate*days))
}

// Info returns the contract-level view of m selected at the given time.
func (m Middleman) Info(selectedAt time.Time) MiddlemanInfo {
	return MiddlemanInfo{
		ID:         m.ID,
		Name:       m.Name,
		Key:        m.Key,
		SelectedAt: selectedAt,
	}
}

// Address is the taproot address paying directly to the middleman key.
func (m Middleman) Address(params *chaincfg.Params) (string, error) {
	if m.Key == nil {
		return "", fmt.Errorf("middleman %q has no key", m.Name)
	}
	addr, err := btcutil.NewAddressTaproot(schnorr.SerializePubKey(m.Key), params)
	if err != nil {
		return "", fmt.Errorf("encode middleman address: %w", err)
	}
	return addr.EncodeAddress(), nil
}
