package httpx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// NetHTTPDoer executes requests with the standard library client.
type NetHTTPDoer struct {
	c *http.Client
}

func NewNetHTTP(timeout time.Duration) *NetHTTPDoer {
	return &NetHTTPDoer{c: &http.Client{Timeout: timeout}}
}

func (d *NetHTTPDoer) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	hr, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Header {
		hr.Header[k] = append([]string(nil), v...)
	}
	resp, err := d.c.Do(hr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{Status: resp.StatusCode, Header: resp.Header.Clone(), Body: b}, nil
}
