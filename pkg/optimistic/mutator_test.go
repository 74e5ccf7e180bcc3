package optimistic

import (
	"context"
	"errors"
	"testing"
)

func TestPerformSuccessCleansUp(t *testing.T) {
	l := NewLedger[item]()
	m := NewMutator(l)

	confirmed, err := m.Perform(context.Background(), AddOp("k1", item{ID: "tmp-1", Title: "Draft"}), func(ctx context.Context) (item, error) {
		// the optimistic entry must be visible while the call is in flight
		got := Project([]item{}, l)
		if len(got) != 1 || got[0].ID != "tmp-1" {
			t.Fatalf("expected optimistic entry during flight, got %v", got)
		}
		return item{ID: "srv-9", Title: "Draft"}, nil
	})
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if confirmed.ID != "srv-9" {
		t.Fatalf("expected server-confirmed entity, got %v", confirmed)
	}
	if l.HasPending() {
		t.Fatalf("expected ledger cleaned up after success")
	}
}

func TestPerformFailureCleansUp(t *testing.T) {
	l := NewLedger[item]()
	m := NewMutator(l)
	boom := errors.New("network error")

	_, err := m.Perform(context.Background(), AddOp("k1", item{ID: "tmp-1", Title: "Draft"}), func(ctx context.Context) (item, error) {
		return item{}, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected original failure propagated, got %v", err)
	}
	if l.HasPending() {
		t.Fatalf("expected ledger cleaned up after failure")
	}
	if got := Project([]item{}, l); len(got) != 0 {
		t.Fatalf("expected optimistic entity retracted, got %v", got)
	}
}

func TestPerformEndToEnd(t *testing.T) {
	l := NewLedger[item]()
	m := NewMutator(l)

	confirmed, err := m.Perform(context.Background(), AddOp("k1", item{ID: "tmp-1", Title: "Draft"}), func(ctx context.Context) (item, error) {
		return item{ID: "srv-9", Title: "Draft"}, nil
	})
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if l.HasPending() {
		t.Fatalf("expected settled ledger")
	}
	// caller replaces its base with the confirmed entity; the now-empty
	// ledger projects it unchanged
	base := []item{confirmed}
	got := Project(base, l)
	if len(got) != 1 || got[0].ID != "srv-9" || got[0].Title != "Draft" {
		t.Fatalf("unexpected projection after settlement: %v", got)
	}
}

func TestPerformConcurrentKeysSettleIndependently(t *testing.T) {
	l := NewLedger[item]()
	m := NewMutator(l)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = m.Perform(context.Background(), AddOp("slow", item{ID: "tmp-slow"}), func(ctx context.Context) (item, error) {
			close(started)
			<-release
			return item{ID: "srv-slow"}, nil
		})
	}()

	// the slow op is in flight (and in the ledger) once its real
	// operation has started
	<-started

	// a second mutation settles while the first is still pending
	_, err := m.Perform(context.Background(), AddOp("fast", item{ID: "tmp-fast"}), func(ctx context.Context) (item, error) {
		return item{ID: "srv-fast"}, nil
	})
	if err != nil {
		t.Fatalf("fast Perform: %v", err)
	}
	if !l.HasPending() {
		t.Fatalf("expected slow op still pending")
	}
	if got := Project([]item{}, l); len(got) != 1 || got[0].ID != "tmp-slow" {
		t.Fatalf("expected only slow op pending, got %v", got)
	}

	close(release)
	<-done
	if l.HasPending() {
		t.Fatalf("expected all ops settled")
	}
}
