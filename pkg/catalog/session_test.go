package catalog_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerstack/crosslist/pkg/catalog"
)

func TestNewSessionPartitions(t *testing.T) {
	session := catalog.NewSession(
		[]catalog.Item{storefrontItem("Blue Mug")},
		[]catalog.Item{marketplaceItem("Red Plate", "Active")},
	)

	assert.Len(t, session.Storefront(), 1)
	assert.Len(t, session.Marketplace(), 1)
	assert.NotEqual(t, uuid.Nil, session.ID())
	assert.False(t, session.CreatedAt().IsZero())
}

func TestNewSessionDropsCrossOriginItems(t *testing.T) {
	// A marketplace-tagged item handed to the storefront partition must not
	// cross sides.
	session := catalog.NewSession(
		[]catalog.Item{marketplaceItem("Stray", "Active")},
		[]catalog.Item{storefrontItem("Other Stray")},
	)

	assert.Empty(t, session.Storefront())
	assert.Empty(t, session.Marketplace())
}

func TestSessionFromItems(t *testing.T) {
	items := []catalog.Item{
		storefrontItem("Blue Mug"),
		marketplaceItem("Red Plate", "Active"),
		storefrontItem("Green Bowl"),
	}

	session := catalog.SessionFromItems(items)

	assert.Len(t, session.Storefront(), 2)
	assert.Len(t, session.Marketplace(), 1)
	assert.Len(t, session.Items(), 3)
}

func TestSessionAccessorsReturnCopies(t *testing.T) {
	session := catalog.NewSession(
		[]catalog.Item{storefrontItem("Blue Mug")},
		nil,
	)

	got := session.Storefront()
	got[0].Name = "Mutated"

	fresh := session.Storefront()
	require.Len(t, fresh, 1)
	assert.Equal(t, "Blue Mug", fresh[0].Name)
}

func TestSessionReconcile(t *testing.T) {
	session := catalog.NewSession(
		[]catalog.Item{storefrontItem("Blue Mug")},
		[]catalog.Item{
			marketplaceItem("Blue Mug", "Active"),
			marketplaceItem("Red Plate", "Active"),
		},
	)

	result := session.Reconcile()
	assert.Equal(t, 1, result.MatchedCount)
	require.Len(t, result.NeedsPublishing, 1)
	assert.Equal(t, "Red Plate", result.NeedsPublishing[0].Name)
}
