package model

import (
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/escrow"
)

// Network names the chain the node follows.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)

// Params returns the chain parameters for n.
func (n Network) Params() (*chaincfg.Params, error) {
	return escrow.ChainParams(string(n))
}
