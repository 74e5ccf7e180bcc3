// Package optimistic tracks pending client-side mutations and projects
// them over server-confirmed collections, so callers can render the effect
// of an operation before its network call settles.
//
// Each owning surface (a conversation view, a project list) holds its own
// Ledger and Mutator; there is no shared package-level instance.
package optimistic

import "time"

// Entity is any domain record with a stable string identifier.
type Entity interface {
	EntityID() string
}

// Patch applies a partial update to an entity by value. Concrete patch
// types enumerate exactly the fields that may change; set fields win over
// the base entity.
type Patch[T any] interface {
	Apply(T) T
}

// Kind identifies the effect of a pending operation on a collection.
type Kind string

const (
	KindAdd    Kind = "add"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// Op is one pending optimistic mutation. Key is the correlation key that
// tracks the op until its network call settles; it must be unique among
// currently-pending ops in a ledger and may be reused after settlement.
type Op[T Entity] struct {
	Key  string
	Kind Kind
	// Entity is the provisional record for KindAdd.
	Entity T
	// TargetID is the affected entity id for KindUpdate and KindDelete.
	TargetID string
	// Patch holds the partial update for KindUpdate; nil otherwise.
	Patch Patch[T]
	// CreatedAt is stamped when the op is accepted into a ledger.
	CreatedAt time.Time

	// seq orders ops inside a ledger for deterministic replay.
	seq uint64
}

// AddOp builds a pending insertion of a provisional entity.
func AddOp[T Entity](key string, entity T) Op[T] {
	return Op[T]{Key: key, Kind: KindAdd, Entity: entity}
}

// UpdateOp builds a pending partial update of the entity with targetID.
func UpdateOp[T Entity](key, targetID string, patch Patch[T]) Op[T] {
	return Op[T]{Key: key, Kind: KindUpdate, TargetID: targetID, Patch: patch}
}

// DeleteOp builds a pending removal of the entity with targetID.
func DeleteOp[T Entity](key, targetID string) Op[T] {
	return Op[T]{Key: key, Kind: KindDelete, TargetID: targetID}
}
