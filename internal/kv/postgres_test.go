package kv

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStoreGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStore(mock)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"value"}).AddRow([]byte(`{"email":"a@b.c"}`))
		mock.ExpectQuery("SELECT value FROM kv_entries WHERE key = \\$1").
			WithArgs(KeyProfile).
			WillReturnRows(rows)

		got, err := store.Get(ctx, KeyProfile)
		require.NoError(t, err)
		assert.JSONEq(t, `{"email":"a@b.c"}`, string(got))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_entries WHERE key = \\$1").
			WithArgs("nope").
			WillReturnRows(pgxmock.NewRows([]string{"value"}))

		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStoreSet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStore(mock)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs(KeyOrders, []byte(`[]`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.Set(ctx, KeyOrders, []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStore(mock)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM kv_entries WHERE key = \\$1").
		WithArgs(KeyAuthSession).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, store.Delete(ctx, KeyAuthSession))
	assert.NoError(t, mock.ExpectationsWereMet())
}
