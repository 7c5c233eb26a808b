// Package escrow derives the taproot escrow of a job contract: the aggregated
// internal key, the alternative spending scripts and the resulting address.
package escrow

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr/musig2"
)

var (
	// ErrNoValidKeys is returned when none of the participant keys is usable.
	ErrNoValidKeys = errors.New("no valid participant keys")
	// ErrEmployerKeyRequired is returned when scripts are requested without an employer key.
	ErrEmployerKeyRequired = errors.New("employer key is required")
)

// KeyAggregationContext holds the optional participant keys of a contract and
// the group key derived from them. A nil key means the participant is absent.
type KeyAggregationContext struct {
	EmployerKey   *btcec.PublicKey
	WorkerKey     *btcec.PublicKey
	MiddlemanKey  *btcec.PublicKey
	AggregatedKey *btcec.PublicKey
}

// IsValidKey reports whether key is present and a point on the curve.
func IsValidKey(key *btcec.PublicKey) bool {
	return key != nil && key.IsOnCurve()
}

// Participants returns the valid keys in employer, worker, middleman order.
func (k KeyAggregationContext) Participants() []*btcec.PublicKey {
	keys := make([]*btcec.PublicKey, 0, 3)
	for _, key := range []*btcec.PublicKey{k.EmployerKey, k.WorkerKey, k.MiddlemanKey} {
		if IsValidKey(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// RecomputeAggregation derives AggregatedKey from the current participants.
// On failure AggregatedKey is cleared so a stale group key is never kept.
func (k *KeyAggregationContext) RecomputeAggregation() error {
	k.AggregatedKey = nil

	aggregated, err := AggregateKeys(k.Participants())
	if err != nil {
		return err
	}
	k.AggregatedKey = aggregated
	return nil
}

// AggregateKeys combines keys into a MuSig2 group key. Key order is significant
// and must be stable for a given contract. A single key is returned unchanged.
func AggregateKeys(keys []*btcec.PublicKey) (*btcec.PublicKey, error) {
	switch len(keys) {
	case 0:
		return nil, ErrNoValidKeys
	case 1:
		return keys[0], nil
	}

	for i, key := range keys {
		if !IsValidKey(key) {
			return nil, fmt.Errorf("participant key %d is invalid", i)
		}
	}

	aggregated, _, _, err := musig2.AggregateKeys(keys, false)
	if err != nil {
		return nil, fmt.Errorf("musig2 aggregate keys: %w", err)
	}
	return aggregated.FinalKey, nil
}
