package codec

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// NullDataScript wraps payload in a single push after OP_RETURN. Payloads are
// not capped at the relay standardness limit.
func NullDataScript(payload []byte) ([]byte, error) {
	script, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_RETURN).
		AddFullData(payload).
		Script()
	if err != nil {
		return nil, fmt.Errorf("build null data script: %w", err)
	}
	return script, nil
}

// ExtractPayload returns the data pushed after OP_RETURN when it carries the marker.
func ExtractPayload(pkScript []byte) ([]byte, bool) {
	if len(pkScript) < 2 || pkScript[0] != txscript.OP_RETURN {
		return nil, false
	}
	tokenizer := txscript.MakeScriptTokenizer(0, pkScript[1:])
	if !tokenizer.Next() {
		return nil, false
	}
	data := tokenizer.Data()
	if !HasMarker(data) || tokenizer.Next() || tokenizer.Err() != nil {
		return nil, false
	}
	return data, true
}

// IsJobTransaction reports whether any output of tx carries a marketplace payload.
func IsJobTransaction(tx *wire.MsgTx) bool {
	for _, out := range tx.TxOut {
		if _, ok := ExtractPayload(out.PkScript); ok {
			return true
		}
	}
	return false
}

// DecodeTx decodes the first well-formed marketplace payload of tx and returns
// it with its output index. Malformed payloads are skipped.
func DecodeTx(tx *wire.MsgTx) (*Payload, int, error) {
	var firstErr error
	for i, out := range tx.TxOut {
		data, ok := ExtractPayload(out.PkScript)
		if !ok {
			continue
		}
		payload, err := Decode(data)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return payload, i, nil
	}
	if firstErr != nil {
		return nil, -1, firstErr
	}
	return nil, -1, ErrNotJobPayload
}
