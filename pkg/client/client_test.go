package client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/client"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
)

func TestClientSendsAuthAndRequestID(t *testing.T) {
	var gotKey, gotReqID string
	r := mux.NewRouter()
	r.HandleFunc("/v1/projects", func(w http.ResponseWriter, req *http.Request) {
		gotKey = req.Header.Get("X-API-Key")
		gotReqID = req.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"projects":[{"id":"prj-1","name":"A","kind":"startup"}]}`))
	}).Methods(http.MethodGet)
	srv := httptest.NewServer(r)
	defer srv.Close()

	c, err := client.New(client.Options{BaseURL: srv.URL, APIKey: "sk_front"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	projects, err := c.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != "prj-1" {
		t.Fatalf("unexpected projects %+v", projects)
	}
	if gotKey != "sk_front" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}
	if gotReqID == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestClientErrorMapping(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/v1/projects/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch mux.Vars(req)["id"] {
		case "missing":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"project not found"}`))
		case "forbidden":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"nope"}`))
		default:
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"slow down"}`))
		}
	}).Methods(http.MethodGet)
	srv := httptest.NewServer(r)
	defer srv.Close()

	c, err := client.New(client.Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	_, err = c.GetProject(ctx, "missing")
	if !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "project not found" {
		t.Fatalf("expected APIError with backend message, got %v", err)
	}

	_, err = c.GetProject(ctx, "forbidden")
	if !errors.Is(err, client.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	_, err = c.GetProject(ctx, "throttled")
	if !errors.Is(err, client.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestClientPatchBodies(t *testing.T) {
	var gotBody string
	r := mux.NewRouter()
	r.HandleFunc("/v1/conversations/{id}", func(w http.ResponseWriter, req *http.Request) {
		b, _ := io.ReadAll(req.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"conv-1","project_id":"prj-1","title":"Renamed"}`))
	}).Methods(http.MethodPut)
	srv := httptest.NewServer(r)
	defer srv.Close()

	c, err := client.New(client.Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	title := "Renamed"
	conv, err := c.UpdateConversation(context.Background(), "conv-1", models.ConversationPatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdateConversation: %v", err)
	}
	if conv.Title != "Renamed" {
		t.Fatalf("unexpected conversation %+v", conv)
	}
	// nil patch fields must not travel on the wire
	if gotBody != `{"title":"Renamed"}` {
		t.Fatalf("unexpected patch body %q", gotBody)
	}
}

func TestClientRequiresBaseURL(t *testing.T) {
	if _, err := client.New(client.Options{}); err == nil {
		t.Fatalf("expected error for missing base url")
	}
}
