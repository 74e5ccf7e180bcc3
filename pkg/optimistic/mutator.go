package optimistic

import (
	"context"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/logger"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/metrics"
)

// Mutator sequences an optimistic apply with a real network call against
// one ledger. Its only guarantee: a ledger entry's lifetime is bounded by
// exactly one settlement of the real operation, success or failure.
type Mutator[T Entity] struct {
	ledger *Ledger[T]
}

func NewMutator[T Entity](ledger *Ledger[T]) *Mutator[T] {
	return &Mutator[T]{ledger: ledger}
}

// Ledger returns the ledger this mutator settles into.
func (m *Mutator[T]) Ledger() *Ledger[T] { return m.ledger }

// Perform adds op to the ledger synchronously, so the very next projection
// reflects it, then invokes real. The ledger entry is removed when real
// settles, on both outcomes; a failure is returned unchanged to the caller
// and the optimistic entry disappears from the next projection. Perform
// never retries; a new attempt needs a new correlation key.
func (m *Mutator[T]) Perform(ctx context.Context, op Op[T], real func(context.Context) (T, error)) (T, error) {
	m.ledger.Add(op)
	metrics.PendingMutations.Inc()
	defer func() {
		m.ledger.Remove(op.Key)
		metrics.PendingMutations.Dec()
	}()

	confirmed, err := real(ctx)
	if err != nil {
		metrics.SettlementFailures.WithLabelValues(string(op.Kind)).Inc()
		logger.Debug("mutation_settled_failure", "key", op.Key, "kind", string(op.Kind), "error", err)
		return confirmed, err
	}
	logger.Debug("mutation_settled", "key", op.Key, "kind", string(op.Kind), "id", confirmed.EntityID())
	return confirmed, nil
}
