package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	cerrors "git.home.luguber.info/inful/bookcat/internal/errors"
	"git.home.luguber.info/inful/bookcat/internal/metrics"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db       *sql.DB
	recorder metrics.Recorder
	mu       sync.RWMutex
}

// NewSQLiteStore creates a new SQLite-based catalogue store.
// Use ":memory:" for an in-memory catalogue, or a file path for
// persistent storage.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &SQLiteStore{db: db, recorder: metrics.NoopRecorder{}}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

// WithRecorder sets the metrics recorder and returns the store.
func (s *SQLiteStore) WithRecorder(r metrics.Recorder) *SQLiteStore {
	if r != nil {
		s.recorder = r
	}
	return s
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		sortable_title TEXT NOT NULL,
		sortable_author TEXT NOT NULL,
		added_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sortable_title ON books(sortable_title);
	CREATE INDEX IF NOT EXISTS idx_sortable_author ON books(sortable_author);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Add inserts a book and returns its ID.
func (s *SQLiteStore) Add(ctx context.Context, book Book) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	addedAt := book.AddedAt
	if addedAt.IsZero() {
		addedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO books (title, author, sortable_title, sortable_author, added_at) VALUES (?, ?, ?, ?, ?)",
		book.Title, book.Author, book.SortableTitle, book.SortableAuthor, addedAt.Unix(),
	)
	if err != nil {
		s.recorder.IncStoreOp("add", false)
		return 0, cerrors.StorageError(err, "insert book")
	}
	id, err := res.LastInsertId()
	if err != nil {
		s.recorder.IncStoreOp("add", false)
		return 0, cerrors.StorageError(err, "read inserted id")
	}

	s.recorder.IncStoreOp("add", true)
	return id, nil
}

// Get retrieves a single book by ID.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, title, author, sortable_title, sortable_author, added_at FROM books WHERE id = ?",
		id,
	)
	book, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		s.recorder.IncStoreOp("get", false)
		return Book{}, cerrors.NotFoundError(fmt.Sprintf("no book with id %d", id))
	}
	if err != nil {
		s.recorder.IncStoreOp("get", false)
		return Book{}, cerrors.StorageError(err, "query book")
	}

	s.recorder.IncStoreOp("get", true)
	return book, nil
}

// List returns all books in the requested order.
func (s *SQLiteStore) List(ctx context.Context, order SortOrder) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orderBy string
	switch order {
	case ByAuthor:
		orderBy = "sortable_author, sortable_title"
	case ByAdded:
		orderBy = "added_at, id"
	default:
		orderBy = "sortable_title"
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, author, sortable_title, sortable_author, added_at FROM books ORDER BY "+orderBy,
	)
	if err != nil {
		s.recorder.IncStoreOp("list", false)
		return nil, cerrors.StorageError(err, "query books")
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			s.recorder.IncStoreOp("list", false)
			return nil, cerrors.StorageError(err, "scan book")
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		s.recorder.IncStoreOp("list", false)
		return nil, cerrors.StorageError(err, "iterate books")
	}

	s.recorder.IncStoreOp("list", true)
	return books, nil
}

// Delete removes a book by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id)
	if err != nil {
		s.recorder.IncStoreOp("delete", false)
		return cerrors.StorageError(err, "delete book")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		s.recorder.IncStoreOp("delete", false)
		return cerrors.StorageError(err, "read affected rows")
	}
	if affected == 0 {
		s.recorder.IncStoreOp("delete", false)
		return cerrors.NotFoundError(fmt.Sprintf("no book with id %d", id))
	}

	s.recorder.IncStoreOp("delete", true)
	return nil
}

// Count returns the number of catalogued books.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		return 0, cerrors.StorageError(err, "count books")
	}
	return count, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (Book, error) {
	var (
		book  Book
		added int64
	)
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.SortableTitle, &book.SortableAuthor, &added); err != nil {
		return Book{}, err
	}
	book.AddedAt = time.Unix(added, 0)
	return book, nil
}
