package swr

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/logger"
)

// StartJanitor runs sweep on the given cron schedule until the returned
// cancel func is called or ctx is done. An empty cron expression disables
// the janitor and returns a no-op cancel.
func StartJanitor(ctx context.Context, cronExpr string, sweep func() int) (context.CancelFunc, error) {
	if cronExpr == "" {
		logger.Info("cache_janitor_disabled")
		return func() {}, nil
	}
	if !gronx.IsValid(cronExpr) {
		return nil, fmt.Errorf("invalid cache sweep cron expression: %s", cronExpr)
	}

	ctx2, cancel := context.WithCancel(ctx)
	go runJanitor(ctx2, cronExpr, sweep)
	logger.Info("cache_janitor_started", "cron", cronExpr)
	return cancel, nil
}

// runJanitor computes the next cron tick with gronx and sleeps until then,
// the same loop shape the retention scheduler uses.
func runJanitor(ctx context.Context, cronExpr string, sweep func() int) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("cache_janitor_stopping")
			return
		default:
		}

		now := time.Now().UTC()
		next, err := gronx.NextTickAfter(cronExpr, now, false)
		if err != nil {
			logger.Error("cache_janitor_nexttick_failed", "cron", cronExpr, "error", err)
			select {
			case <-time.After(30 * time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		select {
		case <-time.After(time.Until(next)):
			if dropped := sweep(); dropped > 0 {
				logger.Debug("cache_janitor_swept", "dropped", dropped)
			}
		case <-ctx.Done():
			logger.Info("cache_janitor_stopping")
			return
		}
	}
}
