// Package catalog persists books with their derived catalogue sort
// keys so listings come back in shelf order.
package catalog

import (
	"context"
	"time"
)

// Book is a catalogued entry. Title and Author hold the capitalized
// forms; the sort keys are derived at insert time.
type Book struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	SortableTitle  string    `json:"sortable_title"`
	SortableAuthor string    `json:"sortable_author"`
	AddedAt        time.Time `json:"added_at"`
}

// SortOrder selects the ordering of List results.
type SortOrder string

const (
	// ByTitle orders by the title sort key.
	ByTitle SortOrder = "title"
	// ByAuthor orders by the author sort key, then the title key.
	ByAuthor SortOrder = "author"
	// ByAdded orders by insertion time.
	ByAdded SortOrder = "added"
)

// Store is the catalogue persistence interface.
type Store interface {
	Add(ctx context.Context, book Book) (int64, error)
	Get(ctx context.Context, id int64) (Book, error)
	List(ctx context.Context, order SortOrder) ([]Book, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	Close() error
}
