package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trustnet/flowengine/engine"
)

// errorBody is the JSON shape for a non-2xx response, field names chosen
// to match the retrieved logistics service's apperror convention (code,
// message) without pulling in its gRPC machinery, which this API has no
// use for.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// codeForInvariant maps an engine.InvariantError's name to a stable,
// SCREAMING_SNAKE_CASE code. Every invariant this engine can violate is a
// downstream consequence of a bad used-edge subgraph, so they all map to
// the same family of codes the reference error package reserves for flow
// violations.
func codeForInvariant(name string) string {
	switch name {
	case "extractor: no eligible edge", "scheduler: no progress":
		return "FLOW_VIOLATION"
	default:
		return "CONSERVATION_VIOLATION"
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Code: code, Message: message})
}

func writeEngineError(w http.ResponseWriter, err error) {
	var invErr *engine.InvariantError
	if errors.As(err, &invErr) {
		writeError(w, http.StatusInternalServerError, codeForInvariant(invErr.Invariant), invErr.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
