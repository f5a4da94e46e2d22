package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/eventure/eventure_api/internal/store"
	"github.com/eventure/eventure_api/util"
	"github.com/eventure/eventure_api/util/tracing"
	"github.com/eventure/eventure_api/util/values"
	"github.com/pkg/errors"
)

// ServerResponse is the envelope every handler returns. Failures are
// distinguished by status code; Message carries the human-readable part.
type ServerResponse struct {
	Message    string      `json:"message,omitempty"`
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Data       interface{} `json:"data,omitempty"`
}

func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	if tc != nil {
		log.Printf("[%s] %s: %v", tc.RequestID, message, err)
	} else {
		log.Printf("%s: %v", message, err)
	}
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

// respondWithStoreError maps the store taxonomy onto response statuses:
// missing resources are 404, rejected values 400, a full crew 409.
func respondWithStoreError(err error, message string, tc *tracing.Context) *ServerResponse {
	return respondWithError(err, message, statusForError(err), tc)
}

func statusForError(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrNoDefaultCollection):
		return values.NotFound
	case errors.Is(err, store.ErrCrewFull):
		return values.Conflict
	case store.IsValidation(err):
		return values.BadRequestBody
	default:
		return values.Error
	}
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	log.Printf("%s: %v", message, err)
	resp := ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
	body, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, message, http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, body, resp.StatusCode)
}
