package errors

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// HTTPErrorAdapter converts CatalogErrors into JSON HTTP responses.
type HTTPErrorAdapter struct {
	logger *slog.Logger
}

// NewHTTPErrorAdapter creates an adapter logging through logger.
func NewHTTPErrorAdapter(logger *slog.Logger) *HTTPErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPErrorAdapter{logger: logger}
}

// errorResponse is the wire shape of an error.
type errorResponse struct {
	Error    string        `json:"error"`
	Category ErrorCategory `json:"category"`
}

// WriteError maps err to an HTTP status and writes a JSON body.
func (a *HTTPErrorAdapter) WriteError(w http.ResponseWriter, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		a.logger.Error("Request failed", "error", err, "status", status)
	} else {
		a.logger.Debug("Request rejected", "error", err, "status", status)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	msg := err.Error()
	if ce, ok := err.(*CatalogError); ok {
		msg = ce.Message
	}
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:    msg,
		Category: GetCategory(err),
	})
}

// StatusCode maps an error category to an HTTP status code.
func StatusCode(err error) int {
	switch GetCategory(err) {
	case CategoryValidation:
		return http.StatusBadRequest
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryConfig, CategoryLexicon:
		return http.StatusUnprocessableEntity
	case CategoryStorage, CategoryServer, CategoryInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
