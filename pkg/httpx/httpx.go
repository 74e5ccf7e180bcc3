// Package httpx abstracts the HTTP engine behind the API client so the
// transport can be swapped between net/http and fasthttp via config.
package httpx

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Request is the unified outbound request representation.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is the unified response: status, headers and a fully-read body.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Doer executes one HTTP round trip. Implementations must honor ctx
// cancellation and deadlines.
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// New returns a Doer for the named engine: "nethttp" (default when empty)
// or "fasthttp". timeout bounds the whole round trip.
func New(engine string, timeout time.Duration) (Doer, error) {
	switch engine {
	case "", "nethttp":
		return NewNetHTTP(timeout), nil
	case "fasthttp":
		return NewFastHTTP(timeout), nil
	default:
		return nil, fmt.Errorf("unknown http transport: %q", engine)
	}
}
