// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ServerErrorBody is the JSON body of every 500 response.
type ServerErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// ErrorLogger logs request failures at the handler boundary and writes the
// uniform error response.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// ServerError logs err with the request path and writes
//
//	500 { "error": "server error", "details": "<err>" }
func (e *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if e != nil && e.Log != nil {
		e.Log.Error(msg,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	WriteServerError(w, err)
}

// WriteServerError writes the uniform 500 JSON body for err.
func WriteServerError(w http.ResponseWriter, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	WriteJSON(w, http.StatusInternalServerError, ServerErrorBody{
		Error:   "server error",
		Details: details,
	})
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
