package api

import (
	"encoding/json"
	"net/http"

	"github.com/avolkov/recondesk/internal/common"
)

// ErrorKind classifies a normalized remote error.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindCredentials  ErrorKind = "credentials"
	KindUnauthorized ErrorKind = "unauthorized"
	KindNotFound     ErrorKind = "not_found"
	KindQuota        ErrorKind = "quota"
	KindRemote       ErrorKind = "remote"
)

// Error is the single normalized error value produced at the service-call
// boundary. The backend's error payload shape varies (plain detail string,
// structured validation detail, bare message); it is resolved here once and
// never inspected ad hoc downstream.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap maps kinds onto the shared sentinels so callers can use errors.Is.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindCredentials:
		return common.ErrInvalidCredentials
	case KindUnauthorized:
		return common.ErrUnauthorized
	case KindNotFound:
		return common.ErrNotFound
	case KindQuota:
		return common.ErrQuotaExceeded
	default:
		return nil
	}
}

func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusUnauthorized:
		return KindCredentials
	case http.StatusForbidden:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusTooManyRequests:
		return KindQuota
	default:
		return KindRemote
	}
}

// errorPayload covers the error body shapes the backend is known to emit.
type errorPayload struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

// decodeError turns a non-2xx response body into an *Error. Message
// precedence: server-provided detail/message, then the HTTP status text,
// then a generic fallback.
func decodeError(status int, body []byte) *Error {
	e := &Error{Kind: kindForStatus(status), Status: status}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := detailMessage(payload.Detail); msg != "" {
			e.Message = msg
			return e
		}
		if payload.Message != "" {
			e.Message = payload.Message
			return e
		}
	}

	if text := http.StatusText(status); text != "" {
		e.Message = text
		return e
	}
	e.Message = "request failed"
	return e
}

// detailMessage extracts a human-readable message from the "detail" field,
// which may be a plain string or a structured validation list.
func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}

	return ""
}
