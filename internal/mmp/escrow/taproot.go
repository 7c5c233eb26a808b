package escrow

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
)

var (
	// ErrInvalidInternalKey is returned when the internal key is absent or off-curve.
	ErrInvalidInternalKey = errors.New("invalid taproot internal key")
	// ErrEmptyScript is returned when an empty script is offered as a spending path.
	ErrEmptyScript = errors.New("empty script is not a spending path")
)

// OutputKey tweaks internalKey with a 32-byte commitment. An empty commitment
// is the all-zero root.
func OutputKey(internalKey *btcec.PublicKey, commitment []byte) (*btcec.PublicKey, error) {
	if !IsValidKey(internalKey) {
		return nil, ErrInvalidInternalKey
	}
	switch len(commitment) {
	case 0:
		var zero chainhash.Hash
		return txscript.ComputeTaprootOutputKey(internalKey, zero[:]), nil
	case chainhash.HashSize:
		return txscript.ComputeTaprootOutputKey(internalKey, commitment), nil
	default:
		return nil, fmt.Errorf("commitment must be %d bytes, got %d", chainhash.HashSize, len(commitment))
	}
}

// AddressFromKey returns the bech32m address of internalKey tweaked by commitment.
// It returns an empty string when the key is invalid or the tweak fails.
func AddressFromKey(internalKey *btcec.PublicKey, commitment []byte, params *chaincfg.Params) (string, error) {
	outputKey, err := OutputKey(internalKey, commitment)
	if err != nil {
		return "", err
	}
	addr, err := btcutil.NewAddressTaproot(schnorr.SerializePubKey(outputKey), params)
	if err != nil {
		return "", fmt.Errorf("encode taproot address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// TapLeafHash is the tagged hash of a tapscript leaf (leaf version 0xc0).
func TapLeafHash(script []byte) chainhash.Hash {
	return txscript.NewBaseTapLeaf(script).TapHash()
}

// AddressFromScript commits a single script leaf and derives the address.
func AddressFromScript(script []byte, internalKey *btcec.PublicKey, params *chaincfg.Params) (string, error) {
	if len(script) == 0 {
		return "", ErrEmptyScript
	}
	if !IsValidKey(internalKey) {
		return "", ErrInvalidInternalKey
	}
	leaf := TapLeafHash(script)
	return AddressFromKey(internalKey, leaf[:], params)
}

// ScriptTreeRoot assembles every present path into one tap tree and returns its root.
// Leaves are paired in approval, timeout, resolution, refund order.
func ScriptTreeRoot(paths ScriptPaths) (chainhash.Hash, error) {
	scripts := paths.Leaves()
	if len(scripts) == 0 {
		return chainhash.Hash{}, ErrEmptyScript
	}
	leaves := make([]txscript.TapLeaf, 0, len(scripts))
	for _, script := range scripts {
		leaves = append(leaves, txscript.NewBaseTapLeaf(script))
	}
	tree := txscript.AssembleTaprootScriptTree(leaves...)
	return tree.RootNode.TapHash(), nil
}

// AddressFromScripts commits all present script paths under internalKey.
func AddressFromScripts(paths ScriptPaths, internalKey *btcec.PublicKey, params *chaincfg.Params) (string, error) {
	if !IsValidKey(internalKey) {
		return "", ErrInvalidInternalKey
	}
	root, err := ScriptTreeRoot(paths)
	if err != nil {
		return "", err
	}
	return AddressFromKey(internalKey, root[:], params)
}

// RandomAddress generates a fresh key pair and its address under the zero commitment.
func RandomAddress(params *chaincfg.Params) (*btcec.PrivateKey, string, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, "", fmt.Errorf("generate key: %w", err)
	}
	var zero chainhash.Hash
	addr, err := AddressFromKey(key.PubKey(), zero[:], params)
	if err != nil {
		return nil, "", err
	}
	return key, addr, nil
}

// ComputeMerkleRoot folds an inclusion proof onto leaf. Each level hashes the
// lexicographically sorted pair, so sibling order does not matter.
func ComputeMerkleRoot(leaf chainhash.Hash, proof []chainhash.Hash) chainhash.Hash {
	current := leaf
	for _, sibling := range proof {
		current = tapBranch(current, sibling)
	}
	return current
}

func tapBranch(a, b chainhash.Hash) chainhash.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return *chainhash.TaggedHash(chainhash.TagTapBranch, a[:], b[:])
}
