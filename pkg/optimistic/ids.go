package optimistic

import (
	"strings"

	"github.com/google/uuid"
)

// provisionalPrefix distinguishes client-minted ids from server ids. The
// backend never issues ids with this prefix, so a provisional id is never
// mistaken for (or reused as) a confirmed one.
const provisionalPrefix = "tmp-"

// NewCorrelationKey mints a key for tracking one pending mutation.
func NewCorrelationKey() string {
	return uuid.NewString()
}

// NewProvisionalID mints a temporary entity id for an optimistic insert.
func NewProvisionalID() string {
	return provisionalPrefix + uuid.NewString()
}

// IsProvisionalID reports whether id was minted client-side.
func IsProvisionalID(id string) bool {
	return strings.HasPrefix(id, provisionalPrefix)
}
