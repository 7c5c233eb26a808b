package transport

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/service"
)

const maxRequestBody = 1 << 20

type postJobRequest struct {
	EmployerKey   string `json:"employer_key"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Amount        int64  `json:"amount"`
	TimeoutBlocks uint32 `json:"timeout_blocks"`
	Requirements  string `json:"requirements"`
	Deliverables  string `json:"deliverables"`
}

type postJobResponse struct {
	JobID         string `json:"job_id"`
	EscrowAddress string `json:"escrow_address"`
	TxHex         string `json:"tx_hex"`
}

type applyRequest struct {
	WorkerKey string `json:"worker_key"`
	Proposal  string `json:"proposal"`
}

type applyResponse struct {
	JobID string `json:"job_id"`
	TxHex string `json:"tx_hex"`
}

type assignWorkerRequest struct {
	WorkerKey string `json:"worker_key"`
	TxID      string `json:"txid"`
}

type assignMiddlemanRequest struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	Fee  int64  `json:"fee"`
	Bond int64  `json:"bond"`
}

// PostJob handles POST /v1/jobs and returns the unsigned posting transaction.
func (h *JobsHandler) PostJob(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req postJobRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	employer, err := parseKey(req.EmployerKey)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "employer_key must be a compressed public key")
		return
	}

	result, err := h.jobs.PostJob(r.Context(), service.PostJobRequest{
		EmployerKey:   employer,
		Title:         req.Title,
		Description:   req.Description,
		Amount:        btcutil.Amount(req.Amount),
		TimeoutBlocks: req.TimeoutBlocks,
		Requirements:  req.Requirements,
		Deliverables:  req.Deliverables,
	})
	if err != nil {
		h.writeServiceError(w, "post job", err)
		return
	}
	txHex, err := serializeTx(result.Tx)
	if err != nil {
		h.writeServiceError(w, "post job", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, postJobResponse{
		JobID:         result.JobID.String(),
		EscrowAddress: result.EscrowAddress,
		TxHex:         txHex,
	})
}

// Apply handles POST /v1/jobs/{job_id}/applications and returns the unsigned
// application transaction.
func (h *JobsHandler) Apply(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	jobID, ok := h.jobID(w, pathParams)
	if !ok {
		return
	}
	var req applyRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	worker, err := parseKey(req.WorkerKey)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "worker_key must be a compressed public key")
		return
	}

	tx, err := h.jobs.Apply(r.Context(), service.ApplyRequest{
		JobID:     jobID,
		Proposal:  req.Proposal,
		WorkerKey: worker,
	})
	if err != nil {
		h.writeServiceError(w, "apply", err)
		return
	}
	txHex, err := serializeTx(tx)
	if err != nil {
		h.writeServiceError(w, "apply", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, applyResponse{JobID: jobID.String(), TxHex: txHex})
}

// AssignWorker handles POST /v1/jobs/{job_id}/worker.
func (h *JobsHandler) AssignWorker(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	jobID, ok := h.jobID(w, pathParams)
	if !ok {
		return
	}
	var req assignWorkerRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	worker, err := parseKey(req.WorkerKey)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "worker_key must be a compressed public key")
		return
	}
	var txid chainhash.Hash
	if req.TxID != "" {
		parsed, err := chainhash.NewHashFromStr(req.TxID)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "txid must be a transaction hash")
			return
		}
		txid = *parsed
	}

	transition, err := h.jobs.AssignWorker(jobID, worker, txid)
	if err != nil {
		h.writeServiceError(w, "assign worker", err)
		return
	}
	h.logger.Info("worker assigned", zap.Stringer("job_id", jobID))
	h.writeJSON(w, http.StatusOK, newTransitionResponse(transition))
}

// AssignMiddleman handles POST /v1/jobs/{job_id}/middleman.
func (h *JobsHandler) AssignMiddleman(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	jobID, ok := h.jobID(w, pathParams)
	if !ok {
		return
	}
	var req assignMiddlemanRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	key, err := parseKey(req.Key)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "key must be a compressed public key")
		return
	}

	middleman := model.NewMiddleman(req.Name, key, btcutil.Amount(req.Fee), btcutil.Amount(req.Bond))
	if err := h.jobs.AssignMiddleman(jobID, middleman); err != nil {
		h.writeServiceError(w, "assign middleman", err)
		return
	}
	h.writeJSON(w, http.StatusOK, middlemanResponse{
		ID:   middleman.ID.String(),
		Name: middleman.Name,
		Key:  keyHex(middleman.Key),
	})
}

func (h *JobsHandler) jobID(w http.ResponseWriter, pathParams map[string]string) (chainhash.Hash, bool) {
	jobID, err := chainhash.NewHashFromStr(pathParams["job_id"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid job ID")
		return chainhash.Hash{}, false
	}
	return *jobID, true
}

func (h *JobsHandler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func parseKey(s string) (*btcec.PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return btcec.ParsePubKey(raw)
}

func serializeTx(tx *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return "", fmt.Errorf("serialize transaction: %w", err)
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

func newTransitionResponse(t model.StateTransition) transitionResponse {
	return transitionResponse{
		From:      t.From,
		To:        t.To,
		TxID:      t.TxID.String(),
		Memo:      t.Memo,
		Timestamp: unixTime(t.Timestamp),
	}
}
