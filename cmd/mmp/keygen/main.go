package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/escrow"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

type config struct {
	Network model.Network `long:"network" env:"MMP_NETWORK" description:"network name (mainnet, testnet, regtest, signet)" default:"regtest"`
	Count   int           `long:"count" short:"n" description:"number of keys to generate" default:"1"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(cfg); err != nil {
		logger.Fatal("key generation failed", zap.Error(err))
	}
}

// run prints a WIF private key, its compressed public key and the taproot
// address tweaked with the zero commitment for each generated participant key.
func run(cfg config) error {
	params, err := cfg.Network.Params()
	if err != nil {
		return err
	}
	for i := 0; i < cfg.Count; i++ {
		key, addr, err := escrow.RandomAddress(params)
		if err != nil {
			return err
		}
		wif, err := btcutil.NewWIF(key, params, true)
		if err != nil {
			return fmt.Errorf("encode wif: %w", err)
		}
		fmt.Printf("wif=%s pubkey=%s address=%s\n",
			wif.String(),
			hex.EncodeToString(key.PubKey().SerializeCompressed()),
			addr,
		)
	}
	return nil
}
