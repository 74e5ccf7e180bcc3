package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/salomonMuriel/ignacio-bot-sub001/internal/mockd"
	"github.com/salomonMuriel/ignacio-bot-sub001/internal/mockd/store"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/config"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/logger"
)

// build metadata, set via ldflags during release
var (
	version = "dev"
	commit  = "none"
)

func main() {
	_ = godotenv.Load(".env")

	addrFlag := flag.String("addr", "", "listen address (overrides config)")
	dbFlag := flag.String("db", "", "database path (overrides config)")
	cfgFlag := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfgPath := config.ResolveConfigPath(*cfgFlag, set["config"])
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Logging.Level)

	// explicit flags win over config/env
	addr := cfg.Mockd.Address
	if set["addr"] {
		addr = *addrFlag
	}
	dbPath := cfg.Mockd.DBPath
	if set["db"] {
		dbPath = *dbFlag
	}

	if err := store.Open(dbPath); err != nil {
		log.Fatalf("failed to open store at %s: %v", dbPath, err)
	}

	verStr := version
	if commit != "none" {
		verStr = verStr + " (" + commit + ")"
	}
	printBanner(addr, dbPath, verStr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mockd.Router(mockd.Config{APIKey: cfg.Mockd.APIKey}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mockd_listening", "addr", addr, "db", dbPath, "version", verStr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		logger.Info("mockd_shutdown", "signal", sig.String())
	case err := <-errCh:
		logger.Error("mockd_serve_failed", "error", err)
		_ = store.Close()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("mockd_shutdown_timeout", "error", err)
	}
	if err := store.Close(); err != nil {
		logger.Warn("mockd_db_close_failed", "error", err)
	}
}

func printBanner(addr, dbPath, version string) {
	fmt.Println("ignacio-mockd - local development backend")
	fmt.Println("== Config =====================================================")
	fmt.Printf("Listen:   %s\n", addr)
	fmt.Printf("DB Path:  %s\n", dbPath)
	fmt.Printf("Version:  %s\n", version)
	fmt.Println("\n== Endpoints ==================================================")
	fmt.Println("POST /v1/projects                                - create a project")
	fmt.Println("GET  /v1/projects                                - list projects")
	fmt.Println("POST /v1/projects/{id}/conversations             - open a conversation")
	fmt.Println("POST /v1/conversations/{id}/messages             - send a message (gets a mock reply)")
	fmt.Println("GET  /v1/templates                               - list prompt templates")
	fmt.Println("GET  /metrics                                    - prometheus metrics")
	fmt.Println("\n== Example ====================================================")
	fmt.Printf("curl -X POST 'http://localhost%s/v1/projects' -d '{\"name\":\"demo\",\"kind\":\"startup\"}'\n\n", addr)
}
