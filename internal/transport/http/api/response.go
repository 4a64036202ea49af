// Package api writes the JSON envelope shared by every /api/v1 endpoint.
package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	CodeNotFound = "not_found"
	CodeInternal = "internal_error"
)

type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// WriteJSON encodes payload before sending any header, so a value that
// cannot be encoded turns into a 500 envelope instead of a truncated body.
func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		slog.Error("encode json response failed", "err", err, "status", status, "requestId", payload.RequestID)
		buf.Reset()
		status = http.StatusInternalServerError
		fallback := Envelope{Error: &Error{Code: CodeInternal, Message: "failed to encode response"}, RequestID: payload.RequestID}
		_ = json.NewEncoder(&buf).Encode(fallback)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	FailWithDetails(w, status, code, message, nil, requestID)
}

// FailWithDetails attaches structured details, such as the field issues of
// a validation_error.
func FailWithDetails(w http.ResponseWriter, status int, code, message string, details map[string]any, requestID string) {
	WriteJSON(w, status, Envelope{Error: &Error{Code: code, Message: message, Details: details}, RequestID: requestID})
}

func NotFound(w http.ResponseWriter, message, requestID string) {
	Fail(w, http.StatusNotFound, CodeNotFound, message, requestID)
}
