package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/trustnet/flowengine/edgedb"
	"github.com/trustnet/flowengine/engine"
	"github.com/trustnet/flowengine/types"
)

// flowRequest is the POST /v1/flow body. RequestedFlow, MaxDistance and
// MaxTransfers are optional: a nil RequestedFlow means "no target", which
// ComputeFlow expresses as types.AmountMax() so the pruner never engages.
type flowRequest struct {
	Source        types.Address `json:"source"`
	Sink          types.Address `json:"sink"`
	Edges         []types.Edge  `json:"edges"`
	RequestedFlow *string       `json:"requested_flow,omitempty"`
	MaxDistance   *uint64       `json:"max_distance,omitempty"`
	MaxTransfers  *uint64       `json:"max_transfers,omitempty"`
}

// flowResponse is the POST /v1/flow body on success.
type flowResponse struct {
	Flow      types.Amount     `json:"flow"`
	Transfers []types.Transfer `json:"transfers"`
}

// handleFlow runs engine.ComputeFlow against a request-scoped edge
// snapshot built from the request body itself: this handler owns no
// shared network state (cmd/flowctl builds its snapshot from a flat edge
// file or a persistent edgedb.BoltStore instead, see Server).
func (s *Server) handleFlow(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(r)

	var req flowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed JSON body: "+err.Error())
		return
	}

	requestedFlow := types.AmountMax()
	if req.RequestedFlow != nil {
		parsed, err := types.AmountFromDecimal(*req.RequestedFlow)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "requested_flow: "+err.Error())
			return
		}
		requestedFlow = parsed
	}

	store := edgedb.NewMemory(req.Edges)

	start := time.Now()
	flow, transfers, err := engine.ComputeFlow(req.Source, req.Sink, store, requestedFlow, req.MaxDistance, req.MaxTransfers)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("compute_flow failed", "error", err, "elapsed", elapsed)
		writeEngineError(w, err)
		return
	}

	logger.Info("compute_flow completed",
		slog.String("flow", flow.String()),
		slog.Int("transfers", len(transfers)),
		slog.Duration("elapsed", elapsed),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(flowResponse{Flow: flow, Transfers: transfers})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
