package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
)

// FastHTTPDoer executes requests with the fasthttp client.
type FastHTTPDoer struct {
	c       *fasthttp.Client
	timeout time.Duration
}

func NewFastHTTP(timeout time.Duration) *FastHTTPDoer {
	return &FastHTTPDoer{c: &fasthttp.Client{}, timeout: timeout}
}

func (d *FastHTTPDoer) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	freq := fasthttp.AcquireRequest()
	fresp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(freq)
	defer fasthttp.ReleaseResponse(fresp)

	freq.SetRequestURI(req.URL)
	freq.Header.SetMethod(req.Method)
	for k, vs := range req.Header {
		for _, v := range vs {
			freq.Header.Add(k, v)
		}
	}
	if len(req.Body) > 0 {
		freq.SetBody(req.Body)
	}

	// fasthttp has no context plumbing; derive a deadline from ctx when
	// present, otherwise fall back to the configured timeout.
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(d.timeout)
	}
	if err := d.c.DoDeadline(freq, fresp, deadline); err != nil {
		return nil, err
	}

	hdr := make(http.Header)
	fresp.Header.VisitAll(func(k, v []byte) {
		hdr.Add(string(k), string(v))
	})
	body := append([]byte(nil), fresp.Body()...)
	return &Response{Status: fresp.StatusCode(), Header: hdr, Body: body}, nil
}
