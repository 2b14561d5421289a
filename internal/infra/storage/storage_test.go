//go:build unit

package storage_test

import (
	"path/filepath"
	"testing"

	"payref-console/internal/domain/payment"
	"payref-console/internal/infra/storage"
	"payref-console/tests/common/builder"

	bolt "github.com/boltdb/bolt"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) (*storage.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payref.db")
	store, err := storage.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestPayments(t *testing.T) {
	t.Run("round trips the list", func(t *testing.T) {
		store, _ := openStore(t)
		records := []payment.Record{
			builder.NewPaymentBuilder().WithStatus(payment.StatusPaid).BuildRecord(),
			builder.NewPaymentBuilder().BuildRecord(),
		}

		require.NoError(t, store.SavePayments(records))

		got := store.LoadPayments()
		if diff := cmp.Diff(records, got); diff != "" {
			t.Errorf("loaded list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("absent value loads as empty list", func(t *testing.T) {
		store, _ := openStore(t)
		got := store.LoadPayments()
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("corrupt value loads as empty list", func(t *testing.T) {
		store, path := openStore(t)
		require.NoError(t, store.SavePayments([]payment.Record{builder.NewPaymentBuilder().BuildRecord()}))
		require.NoError(t, store.Close())

		db, err := bolt.Open(path, 0600, nil)
		require.NoError(t, err)
		require.NoError(t, db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket([]byte("payments")).Put([]byte("list"), []byte("{not json"))
		}))
		require.NoError(t, db.Close())

		reopened, err := storage.Open(path)
		require.NoError(t, err)
		defer reopened.Close()

		got := reopened.LoadPayments()
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("saving an empty list overwrites the previous value", func(t *testing.T) {
		store, _ := openStore(t)
		require.NoError(t, store.SavePayments([]payment.Record{builder.NewPaymentBuilder().BuildRecord()}))
		require.NoError(t, store.SavePayments([]payment.Record{}))

		assert.Empty(t, store.LoadPayments())
	})

	t.Run("list survives reopening the file", func(t *testing.T) {
		store, path := openStore(t)
		records := []payment.Record{builder.NewPaymentBuilder().BuildRecord()}
		require.NoError(t, store.SavePayments(records))
		require.NoError(t, store.Close())

		reopened, err := storage.Open(path)
		require.NoError(t, err)
		defer reopened.Close()

		if diff := cmp.Diff(records, reopened.LoadPayments()); diff != "" {
			t.Errorf("reloaded list mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestToken(t *testing.T) {
	t.Run("round trips the token", func(t *testing.T) {
		store, _ := openStore(t)
		require.NoError(t, store.SaveToken("bearer-abc"))

		got, ok := store.LoadToken()
		require.True(t, ok)
		assert.Equal(t, "bearer-abc", got)
	})

	t.Run("absent token reports not found", func(t *testing.T) {
		store, _ := openStore(t)
		_, ok := store.LoadToken()
		assert.False(t, ok)
	})

	t.Run("delete removes the token", func(t *testing.T) {
		store, _ := openStore(t)
		require.NoError(t, store.SaveToken("bearer-abc"))
		require.NoError(t, store.DeleteToken())

		_, ok := store.LoadToken()
		assert.False(t, ok)
	})

	t.Run("deleting an absent token is a no-op", func(t *testing.T) {
		store, _ := openStore(t)
		require.NoError(t, store.DeleteToken())
	})
}
