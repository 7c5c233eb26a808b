package escrow

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// Escrow is a consistent snapshot of keys, scripts and address.
type Escrow struct {
	Keys    KeyAggregationContext
	Scripts ScriptPaths
	Address string
}

// Derive computes the escrow for the given keys. It either returns a fully
// consistent Escrow or an error; partial results are never returned.
func Derive(keys KeyAggregationContext, params *chaincfg.Params) (*Escrow, error) {
	if err := keys.RecomputeAggregation(); err != nil {
		return nil, fmt.Errorf("aggregate keys: %w", err)
	}

	var scripts ScriptPaths
	if err := scripts.UpdateWithNewKeys(keys); err != nil {
		return nil, fmt.Errorf("build script paths: %w", err)
	}

	addr, err := AddressFromScripts(scripts, keys.AggregatedKey, params)
	if err != nil {
		return nil, fmt.Errorf("derive escrow address: %w", err)
	}

	return &Escrow{
		Keys:    keys,
		Scripts: scripts,
		Address: addr,
	}, nil
}

// Refresh replaces e with an escrow derived from keys. On error e is left unchanged.
func (e *Escrow) Refresh(keys KeyAggregationContext, params *chaincfg.Params) error {
	next, err := Derive(keys, params)
	if err != nil {
		return err
	}
	*e = *next
	return nil
}

// PkScript returns the output script paying to the escrow address.
func (e *Escrow) PkScript(params *chaincfg.Params) ([]byte, error) {
	if e == nil || e.Address == "" {
		return nil, ErrInvalidInternalKey
	}
	addr, err := btcutil.DecodeAddress(e.Address, params)
	if err != nil {
		return nil, fmt.Errorf("decode escrow address: %w", err)
	}
	return txscript.PayToAddrScript(addr)
}

// ChainParams resolves a network name to its chain parameters.
func ChainParams(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
