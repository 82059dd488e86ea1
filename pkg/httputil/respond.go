package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/bugadani/embedded-layout/pkg/errors"
)

// ErrorBody is the JSON body of an error response.
type ErrorBody struct {
	Error     errors.Code `json:"error"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes err as an ErrorBody. Errors without a code are reported
// as internal errors and their text is not exposed.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	body := ErrorBody{
		Error:     errors.GetCode(err),
		Message:   errors.UserMessage(err),
		RequestID: RequestIDFromContext(r.Context()),
	}
	if body.Error == "" {
		body.Error = errors.ErrCodeInternal
		body.Message = "internal error"
	}
	WriteJSON(w, errors.HTTPStatus(err), body)
}
