package escrow

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/txscript"
)

// ScriptPaths are the alternative tapscript spending conditions of an escrow.
// An empty script means the path is not available.
type ScriptPaths struct {
	// EmployerApproval releases funds with both employer and worker signatures.
	EmployerApproval []byte
	// WorkerTimeout lets the worker claim alone. The relative timelock is
	// enforced by the spending transaction, not by this script.
	WorkerTimeout []byte
	// MiddlemanResolution requires the middleman plus the side it rules for.
	MiddlemanResolution []byte
	// Refund returns funds to the employer.
	Refund []byte
}

// UpdateWithNewKeys rebuilds every script path from the participant keys.
// Scripts are derived from the individual keys, never from the aggregated one.
func (p *ScriptPaths) UpdateWithNewKeys(keys KeyAggregationContext) error {
	if !IsValidKey(keys.EmployerKey) {
		return ErrEmployerKeyRequired
	}

	var (
		next ScriptPaths
		err  error
	)
	hasWorker := IsValidKey(keys.WorkerKey)

	if hasWorker {
		next.EmployerApproval, err = newScript().
			checkSigVerify(keys.EmployerKey).
			checkSig(keys.WorkerKey).
			build()
		if err != nil {
			return fmt.Errorf("employer approval script: %w", err)
		}

		next.WorkerTimeout, err = newScript().
			checkSig(keys.WorkerKey).
			build()
		if err != nil {
			return fmt.Errorf("worker timeout script: %w", err)
		}
	}

	if IsValidKey(keys.MiddlemanKey) {
		// Until a worker is assigned the else branch pushes an empty key and
		// cannot be satisfied.
		var worker *btcec.PublicKey
		if hasWorker {
			worker = keys.WorkerKey
		}
		next.MiddlemanResolution, err = newScript().
			checkSigVerify(keys.MiddlemanKey).
			either(keys.EmployerKey, worker).
			op(txscript.OP_CHECKSIG).
			build()
		if err != nil {
			return fmt.Errorf("middleman resolution script: %w", err)
		}
	}

	next.Refund, err = newScript().
		checkSig(keys.EmployerKey).
		build()
	if err != nil {
		return fmt.Errorf("refund script: %w", err)
	}

	*p = next
	return nil
}

// Leaves returns the present scripts in approval, timeout, resolution, refund order.
func (p ScriptPaths) Leaves() [][]byte {
	leaves := make([][]byte, 0, 4)
	for _, script := range [][]byte{p.EmployerApproval, p.WorkerTimeout, p.MiddlemanResolution, p.Refund} {
		if len(script) > 0 {
			leaves = append(leaves, script)
		}
	}
	return leaves
}

// IsUsable reports whether the paths can back an escrow output.
func (p ScriptPaths) IsUsable() bool {
	return len(p.Refund) > 0
}

// scriptSteps appends tapscript steps in order. Keys are pushed x-only.
type scriptSteps struct {
	b *txscript.ScriptBuilder
}

func newScript() *scriptSteps {
	return &scriptSteps{b: txscript.NewScriptBuilder()}
}

func xOnly(key *btcec.PublicKey) []byte {
	if key == nil {
		return nil
	}
	return schnorr.SerializePubKey(key)
}

// checkSigVerify verifies a signature and continues; failure aborts the script.
func (s *scriptSteps) checkSigVerify(key *btcec.PublicKey) *scriptSteps {
	s.b.AddData(xOnly(key)).AddOp(txscript.OP_CHECKSIGVERIFY)
	return s
}

// checkSig verifies a signature and leaves the result on the stack.
func (s *scriptSteps) checkSig(key *btcec.PublicKey) *scriptSteps {
	s.b.AddData(xOnly(key)).AddOp(txscript.OP_CHECKSIG)
	return s
}

// either pushes ifKey when the witness selects the true branch, elseKey otherwise.
func (s *scriptSteps) either(ifKey, elseKey *btcec.PublicKey) *scriptSteps {
	s.b.AddOp(txscript.OP_IF).
		AddData(xOnly(ifKey)).
		AddOp(txscript.OP_ELSE).
		AddData(xOnly(elseKey)).
		AddOp(txscript.OP_ENDIF)
	return s
}

func (s *scriptSteps) op(opcode byte) *scriptSteps {
	s.b.AddOp(opcode)
	return s
}

func (s *scriptSteps) build() ([]byte, error) {
	return s.b.Script()
}
