package portal_test

import (
	"testing"
	"time"

	"github.com/nobh/portal-gateway/portal"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore(t *testing.T) {
	t.Run("seeded data is present", func(t *testing.T) {
		store := portal.NewSeededStore()
		require.NotEmpty(t, store.ListResidents())
		require.NotEmpty(t, store.ListVisitors())
		require.NotEmpty(t, store.ListAccessLogs())
		require.NotEmpty(t, store.ListAnnouncements())
	})

	t.Run("AddVisitor fills defaults", func(t *testing.T) {
		store := portal.NewSeededStore()
		before := len(store.ListVisitors())

		v, err := store.AddVisitor(portal.Visitor{Name: "Plumber", Code: "GATE-0042"})
		require.NoError(t, err)
		require.NotEmpty(t, v.ID)
		require.Equal(t, portal.VisitorActive, v.Status)
		require.False(t, v.ValidTill.IsZero())
		require.Len(t, store.ListVisitors(), before+1)
	})

	t.Run("AddVisitor requires a name", func(t *testing.T) {
		store := portal.NewSeededStore()
		_, err := store.AddVisitor(portal.Visitor{Code: "GATE-0001"})
		require.Error(t, err)
	})

	t.Run("AddVisitor keeps caller-set fields", func(t *testing.T) {
		store := portal.NewSeededStore()
		till := time.Now().Add(48 * time.Hour)
		v, err := store.AddVisitor(portal.Visitor{ID: "v-custom", Name: "Guest", Status: portal.VisitorRevoked, ValidTill: till})
		require.NoError(t, err)
		require.Equal(t, "v-custom", v.ID)
		require.Equal(t, portal.VisitorRevoked, v.Status)
		require.Equal(t, till, v.ValidTill)
	})

	t.Run("listings are copies", func(t *testing.T) {
		store := portal.NewSeededStore()
		list := store.ListResidents()
		list[0].Name = "mutated"
		require.NotEqual(t, "mutated", store.ListResidents()[0].Name)
	})
}
