package transport

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/codec"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/escrow"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/registry"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/service"
)

// JobsHandler serves the job REST endpoints.
type JobsHandler struct {
	jobs   JobService
	logger *zap.Logger
}

// NewJobsHandler returns a JobsHandler instance.
func NewJobsHandler(jobs JobService, logger *zap.Logger) *JobsHandler {
	return &JobsHandler{
		jobs:   jobs,
		logger: logger.Named("jobs_handler"),
	}
}

// Register mounts the handler routes on mux.
func (h *JobsHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		// Routes registered later are matched first.
		{http.MethodGet, "/v1/jobs/{job_id}", h.GetJob},
		{http.MethodGet, "/v1/jobs/open", h.ListOpenJobs},
		{http.MethodPost, "/v1/jobs", h.PostJob},
		{http.MethodPost, "/v1/jobs/{job_id}/applications", h.Apply},
		{http.MethodPost, "/v1/jobs/{job_id}/worker", h.AssignWorker},
		{http.MethodPost, "/v1/jobs/{job_id}/middleman", h.AssignMiddleman},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, route.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", route.method, route.pattern, err)
		}
	}
	return nil
}

// ListOpenJobs handles GET /v1/jobs/open?limit=&start_height=&end_height=.
func (h *JobsHandler) ListOpenJobs(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	query := r.URL.Query()
	limit, err := intParam(query.Get("limit"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	start, err := uint32Param(query.Get("start_height"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "start_height must be a block height")
		return
	}
	end, err := uint32Param(query.Get("end_height"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "end_height must be a block height")
		return
	}

	jobs, err := h.jobs.ListOpenJobs(r.Context(), limit, start, end)
	if err != nil {
		h.writeServiceError(w, "list open jobs", err)
		return
	}

	resp := make([]openJobResponse, 0, len(jobs))
	for _, job := range jobs {
		resp = append(resp, newOpenJobResponse(job))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// GetJob handles GET /v1/jobs/{job_id}.
func (h *JobsHandler) GetJob(w http.ResponseWriter, _ *http.Request, pathParams map[string]string) {
	jobID, err := chainhash.NewHashFromStr(pathParams["job_id"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	contract, err := h.jobs.GetJob(*jobID)
	if err != nil {
		h.writeServiceError(w, "get job", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newJobResponse(contract))
}

func (h *JobsHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func (h *JobsHandler) writeError(w http.ResponseWriter, code int, message string) {
	h.writeJSON(w, code, errorResponse{Error: message})
}

// writeServiceError maps marketplace errors to HTTP status codes.
func (h *JobsHandler) writeServiceError(w http.ResponseWriter, operation string, err error) {
	var verr *codec.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, registry.ErrContractNotFound):
		h.writeError(w, http.StatusNotFound, "Job not found")
	case errors.Is(err, escrow.ErrEmployerKeyRequired),
		errors.Is(err, escrow.ErrNoValidKeys),
		errors.Is(err, service.ErrInvalidMiddleman),
		errors.Is(err, service.ErrScanRangeTooLarge):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, registry.ErrApplicationsClosed),
		errors.Is(err, registry.ErrInvalidTransition):
		h.writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error(operation, zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func uint32Param(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

type errorResponse struct {
	Error string `json:"error"`
}

type openJobResponse struct {
	JobID         string `json:"job_id"`
	TxID          string `json:"txid"`
	BlockHeight   uint32 `json:"block_height"`
	InMempool     bool   `json:"in_mempool"`
	Timestamp     int64  `json:"timestamp"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Amount        int64  `json:"amount"`
	TimeoutBlocks uint32 `json:"timeout_blocks"`
	Requirements  string `json:"requirements,omitempty"`
	Deliverables  string `json:"deliverables,omitempty"`
	EscrowAmount  int64  `json:"escrow_amount"`
	EscrowAddress string `json:"escrow_address,omitempty"`
	Applications  int    `json:"applications"`
}

func newOpenJobResponse(job service.OpenJob) openJobResponse {
	return openJobResponse{
		JobID:         job.Posting.JobID.String(),
		TxID:          job.TxID.String(),
		BlockHeight:   job.BlockHeight,
		InMempool:     job.InMempool,
		Timestamp:     unixTime(job.Timestamp),
		Title:         job.Posting.Title,
		Description:   job.Posting.Description,
		Amount:        int64(job.Posting.Amount),
		TimeoutBlocks: job.Posting.TimeoutBlocks,
		Requirements:  job.Posting.Requirements,
		Deliverables:  job.Posting.Deliverables,
		EscrowAmount:  int64(job.EscrowAmount),
		EscrowAddress: job.EscrowAddress,
		Applications:  job.Applications,
	}
}

type applicationResponse struct {
	WorkerKey string `json:"worker_key"`
	Proposal  string `json:"proposal"`
	Timestamp int64  `json:"timestamp"`
	Status    string `json:"status"`
	TxID      string `json:"txid"`
}

type transitionResponse struct {
	From      model.JobState `json:"from"`
	To        model.JobState `json:"to"`
	TxID      string         `json:"txid"`
	Memo      string         `json:"memo"`
	Timestamp int64          `json:"timestamp"`
}

type middlemanResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Key        string `json:"key"`
	SelectedAt int64  `json:"selected_at"`
}

type jobResponse struct {
	JobID         string                `json:"job_id"`
	State         model.JobState        `json:"state"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Amount        int64                 `json:"amount"`
	TimeoutBlocks uint32                `json:"timeout_blocks"`
	Requirements  string                `json:"requirements,omitempty"`
	Deliverables  string                `json:"deliverables,omitempty"`
	CreatedHeight uint32                `json:"created_height"`
	CreatedAt     int64                 `json:"created_at"`
	EscrowAddress string                `json:"escrow_address,omitempty"`
	EmployerKey   string                `json:"employer_key,omitempty"`
	WorkerKey     string                `json:"worker_key,omitempty"`
	MiddlemanKey  string                `json:"middleman_key,omitempty"`
	Middleman     *middlemanResponse    `json:"middleman,omitempty"`
	TxID          string                `json:"txid"`
	BlockHeight   uint32                `json:"block_height"`
	InMempool     bool                  `json:"in_mempool"`
	Applications  []applicationResponse `json:"applications"`
	History       []transitionResponse  `json:"history"`
}

func newJobResponse(c *model.JobContract) jobResponse {
	resp := jobResponse{
		JobID:         c.JobID.String(),
		State:         c.State,
		Title:         c.Metadata.Title,
		Description:   c.Metadata.Description,
		Amount:        int64(c.Metadata.Amount),
		TimeoutBlocks: c.Metadata.TimeoutBlocks,
		Requirements:  c.Metadata.Requirements,
		Deliverables:  c.Metadata.Deliverables,
		CreatedHeight: c.Metadata.CreatedHeight,
		CreatedAt:     unixTime(c.Metadata.CreatedAt),
		EscrowAddress: c.Escrow.Address,
		EmployerKey:   keyHex(c.EmployerKey()),
		WorkerKey:     keyHex(c.WorkerKey()),
		MiddlemanKey:  keyHex(c.MiddlemanKey()),
		TxID:          c.TxID.String(),
		BlockHeight:   c.BlockHeight,
		InMempool:     c.InMempool,
		Applications:  make([]applicationResponse, 0, len(c.Applications)),
		History:       make([]transitionResponse, 0, len(c.History)),
	}
	if m := c.Middleman; m != nil {
		resp.Middleman = &middlemanResponse{
			ID:         m.ID.String(),
			Name:       m.Name,
			Key:        keyHex(m.Key),
			SelectedAt: unixTime(m.SelectedAt),
		}
	}
	for _, app := range c.Applications {
		resp.Applications = append(resp.Applications, applicationResponse{
			WorkerKey: keyHex(app.WorkerKey),
			Proposal:  app.Proposal,
			Timestamp: unixTime(app.Timestamp),
			Status:    app.Status.String(),
			TxID:      app.TxID.String(),
		})
	}
	for _, t := range c.History {
		resp.History = append(resp.History, newTransitionResponse(t))
	}
	return resp
}

func unixTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func keyHex(key *btcec.PublicKey) string {
	if key == nil {
		return ""
	}
	return hex.EncodeToString(key.SerializeCompressed())
}
