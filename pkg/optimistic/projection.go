package optimistic

// Project computes the collection a caller should render: a copy of base
// with the ledger's pending ops replayed over it in insertion order. base
// is never mutated and the result shares no backing array with it.
//
// Adds append to the end of the working list. Updates patch every element
// whose id matches the op's target; Deletes remove every match. An Update
// or Delete whose target is absent from the working list is a no-op, which
// covers the expected race where the base has not caught up with a
// confirmed mutation yet. Project is pure: calling it repeatedly with the
// same inputs yields equal results.
func Project[T Entity](base []T, ledger *Ledger[T]) []T {
	out := make([]T, len(base))
	copy(out, base)
	for _, op := range ledger.Pending() {
		switch op.Kind {
		case KindAdd:
			out = append(out, op.Entity)
		case KindUpdate:
			if op.Patch == nil {
				continue
			}
			for i := range out {
				if out[i].EntityID() == op.TargetID {
					out[i] = op.Patch.Apply(out[i])
				}
			}
		case KindDelete:
			kept := out[:0]
			for _, e := range out {
				if e.EntityID() != op.TargetID {
					kept = append(kept, e)
				}
			}
			out = kept
		}
	}
	return out
}
