// Package mockd implements an in-process development backend with the
// same REST surface the production Ignacio API exposes, so the client,
// sessions and CLI can be exercised offline and in tests.
package mockd

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/logger"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/utils"
)

// Config holds the handler-level settings of the mock backend.
type Config struct {
	// APIKey, when non-empty, is required in the X-API-Key header of
	// every /v1 request.
	APIKey string
}

// Router builds the full HTTP handler: health and metrics at the root,
// the versioned API underneath.
func Router(cfg Config) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/v1").Subrouter()
	api.Use(requestLog, requireAPIKey(cfg.APIKey))
	registerProjects(api)
	registerConversations(api)
	registerMessages(api)
	registerTemplates(api)
	registerAttachments(api)
	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	_ = utils.JSONWrite(w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.LogRequest(r)
		next.ServeHTTP(w, r)
	})
}

// requireAPIKey rejects /v1 requests without the configured key. An empty
// configured key disables the check (local development default).
func requireAPIKey(key string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key != "" && r.Header.Get("X-API-Key") != key {
				utils.JSONError(w, http.StatusUnauthorized, "invalid api key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
