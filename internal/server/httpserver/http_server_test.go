package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/bookcat/internal/catalog"
	"git.home.luguber.info/inful/bookcat/internal/cataloguing"
	"git.home.luguber.info/inful/bookcat/internal/lexicon"
)

func newTestServer(t *testing.T, store catalog.Store) *Server {
	t.Helper()
	c := cataloguing.New(lexicon.Default())
	return New(Options{
		Cataloguer: func() *cataloguing.Cataloguer { return c },
		Store:      store,
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ok")
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestCapitalizeTitleEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/capitalize/title",
		`{"text":"the hobbit: or, there and back again"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp textResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "The Hobbit: Or, There and Back Again", resp.Result)
}

func TestCapitalizeAuthorEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/capitalize/author",
		`{"text":"CORMAC MCCARTHY"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp textResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Cormac McCarthy", resp.Result)
}

func TestSortableAuthorEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/sortable/author",
		`{"text":"ludwig van beethoven"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp textResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "van Beethoven, Ludwig", resp.Result)
}

func TestCapitalize_InvalidBodyRejected(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/capitalize/title", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "validation")
}

func TestBooks_AddListDelete(t *testing.T) {
	store, err := catalog.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	s := newTestServer(t, store)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/books",
		`{"title":"the left hand of darkness","author":"ursula k. le guin"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var added addBookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	require.Equal(t, "The Left Hand of Darkness", added.Book.Title)
	require.Equal(t, "le guin, ursula k.", added.Book.SortableAuthor)

	rec = doJSON(t, s.Handler(), http.MethodPost, "/api/v1/books",
		`{"title":"dune","author":"frank herbert"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, s.Handler(), http.MethodGet, "/api/v1/books?sort=title", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed listBooksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Equal(t, 2, listed.Count)
	require.Equal(t, "Dune", listed.Books[0].Title)
	require.Equal(t, "The Left Hand of Darkness", listed.Books[1].Title)

	rec = doJSON(t, s.Handler(), http.MethodDelete, "/api/v1/books/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s.Handler(), http.MethodDelete, "/api/v1/books/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBooks_EmptyTitleRejected(t *testing.T) {
	store, err := catalog.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	s := newTestServer(t, store)
	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/books", `{"author":"someone"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBooks_InvalidSortRejected(t *testing.T) {
	store, err := catalog.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	s := newTestServer(t, store)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/books?sort=isbn", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBooks_WithoutStoreRespond404(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/books", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
