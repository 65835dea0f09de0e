package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Session owns the two canonical item partitions for the duration of one
// reconciliation run. It performs no network or file I/O; callers hand it
// already-adapted items from the HTTP client, CSV reader, or a saved
// snapshot.
type Session struct {
	id          uuid.UUID
	createdAt   time.Time
	storefront  []Item
	marketplace []Item
}

// NewSession creates a session from the two already-adapted partitions.
// Items whose origin does not match their partition are dropped rather than
// allowed to cross sides.
func NewSession(storefront, marketplace []Item) *Session {
	s := &Session{
		id:        uuid.New(),
		createdAt: time.Now(),
	}
	for _, item := range storefront {
		if item.Origin == OriginStorefront {
			s.storefront = append(s.storefront, item)
		}
	}
	for _, item := range marketplace {
		if item.Origin == OriginMarketplace {
			s.marketplace = append(s.marketplace, item)
		}
	}
	return s
}

// SessionFromItems builds a session from a flat sequence of origin-tagged
// items, the shape a local snapshot deserializes into.
func SessionFromItems(items []Item) *Session {
	var storefront, marketplace []Item
	for _, item := range items {
		switch item.Origin {
		case OriginStorefront:
			storefront = append(storefront, item)
		case OriginMarketplace:
			marketplace = append(marketplace, item)
		}
	}
	return NewSession(storefront, marketplace)
}

// ID returns the session's run identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// CreatedAt returns when the session was constructed.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Storefront returns a copy of the storefront partition.
func (s *Session) Storefront() []Item {
	out := make([]Item, len(s.storefront))
	copy(out, s.storefront)
	return out
}

// Marketplace returns a copy of the marketplace partition.
func (s *Session) Marketplace() []Item {
	out := make([]Item, len(s.marketplace))
	copy(out, s.marketplace)
	return out
}

// Items returns both partitions as one flat origin-tagged sequence, the
// shape the local snapshot serializes from.
func (s *Session) Items() []Item {
	out := make([]Item, 0, len(s.storefront)+len(s.marketplace))
	out = append(out, s.storefront...)
	out = append(out, s.marketplace...)
	return out
}

// Reconcile runs the matching algorithm over the session's partitions.
func (s *Session) Reconcile() Result {
	return Reconcile(s.storefront, s.marketplace)
}
