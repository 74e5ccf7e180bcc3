package httpx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Echo-Method", r.Method)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"body": string(b),
			"key":  r.Header.Get("X-API-Key"),
		})
	}))
}

func testDoer(t *testing.T, d Doer) {
	t.Helper()
	srv := echoServer(t)
	defer srv.Close()

	hdr := make(http.Header)
	hdr.Set("X-API-Key", "secret")
	resp, err := d.Do(context.Background(), &Request{
		Method: http.MethodPost,
		URL:    srv.URL + "/v1/echo",
		Header: hdr,
		Body:   []byte(`{"hello":"world"}`),
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.Status != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Status)
	}
	if resp.Header.Get("X-Echo-Method") != http.MethodPost {
		t.Fatalf("method not propagated: %v", resp.Header)
	}
	var out map[string]string
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["body"] != `{"hello":"world"}` || out["key"] != "secret" {
		t.Fatalf("unexpected echo %v", out)
	}
}

func TestNetHTTPDoer(t *testing.T) {
	testDoer(t, NewNetHTTP(5*time.Second))
}

func TestFastHTTPDoer(t *testing.T) {
	testDoer(t, NewFastHTTP(5*time.Second))
}

func TestNewUnknownEngine(t *testing.T) {
	if _, err := New("carrier-pigeon", time.Second); err == nil {
		t.Fatalf("expected error for unknown engine")
	}
	d, err := New("", time.Second)
	if err != nil || d == nil {
		t.Fatalf("expected default engine, got %v %v", d, err)
	}
}

func TestNetHTTPDoerContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewNetHTTP(5*time.Second).Do(ctx, &Request{Method: http.MethodGet, URL: srv.URL})
	if err == nil {
		t.Fatalf("expected context deadline error")
	}
}
