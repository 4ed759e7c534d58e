package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	cerrors "git.home.luguber.info/inful/bookcat/internal/errors"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_AddAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, Book{
		Title:          "The Dispossessed",
		Author:         "Ursula K. le Guin",
		SortableTitle:  "dispossessed",
		SortableAuthor: "le guin, ursula k.",
	})
	require.NoError(t, err)
	require.Positive(t, id)

	book, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "The Dispossessed", book.Title)
	require.Equal(t, "le guin, ursula k.", book.SortableAuthor)
	require.False(t, book.AddedAt.IsZero())
}

func TestSQLiteStore_GetMissingIsNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), 42)
	require.Error(t, err)
	require.True(t, cerrors.IsCategory(err, cerrors.CategoryNotFound))
}

func TestSQLiteStore_ListOrdersBySortKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	books := []Book{
		{Title: "The Zebra Question", Author: "A", SortableTitle: "zebra question", SortableAuthor: "a."},
		{Title: "An Instance of the Fingerpost", Author: "B", SortableTitle: "instance of the fingerpost", SortableAuthor: "b."},
		{Title: "Dune", Author: "C", SortableTitle: "dune", SortableAuthor: "c."},
	}
	for _, b := range books {
		_, err := store.Add(ctx, b)
		require.NoError(t, err)
	}

	byTitle, err := store.List(ctx, ByTitle)
	require.NoError(t, err)
	require.Len(t, byTitle, 3)
	require.Equal(t, "Dune", byTitle[0].Title)
	require.Equal(t, "An Instance of the Fingerpost", byTitle[1].Title)
	require.Equal(t, "The Zebra Question", byTitle[2].Title)

	byAuthor, err := store.List(ctx, ByAuthor)
	require.NoError(t, err)
	require.Equal(t, "A", byAuthor[0].Author)
	require.Equal(t, "C", byAuthor[2].Author)
}

func TestSQLiteStore_DeleteRemovesRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, Book{Title: "X", Author: "Y", SortableTitle: "x", SortableAuthor: "y."})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))

	err = store.Delete(ctx, id)
	require.Error(t, err)
	require.True(t, cerrors.IsCategory(err, cerrors.CategoryNotFound))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}
