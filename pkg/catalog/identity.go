package catalog

import (
	"crypto/sha256"
	"encoding/hex"
)

// SentinelIdentity is the identity assigned to items with no display name.
// It is a literal value, not a hash, and marks the item as unhashable.
const SentinelIdentity = "NO TITLE, NO HASH ID"

// Identity computes the content fingerprint for a display name: lowercase
// hex SHA-256 of the raw UTF-8 bytes. The name is hashed exactly as mapped
// by the adapters, with no trimming and no case folding, so both sources
// must apply the same (absent) normalization for identities to match.
//
// Identity is a pure function of the name alone. Two items with identical
// names collide by design; the fingerprint is the cross-system join key.
func Identity(name string) string {
	if name == "" {
		return SentinelIdentity
	}
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}
