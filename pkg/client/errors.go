package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/httpx"
)

// Sentinels for errors.Is matching at call sites.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
)

// APIError carries the backend's status code and error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return nil
}

// apiError decodes the backend's {"error": "..."} body, falling back to
// the raw body when it is not JSON.
func apiError(resp *httpx.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(resp.Body, &body); err == nil {
		msg = body.Error
	}
	if msg == "" {
		msg = string(resp.Body)
	}
	return &APIError{Status: resp.Status, Message: msg}
}
