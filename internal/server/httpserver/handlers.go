package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"git.home.luguber.info/inful/bookcat/internal/catalog"
	cerrors "git.home.luguber.info/inful/bookcat/internal/errors"
	"git.home.luguber.info/inful/bookcat/internal/observability"
)

// textRequest is the body of the capitalize and sortable endpoints.
type textRequest struct {
	Text string `json:"text"`
}

// textResponse is their reply.
type textResponse struct {
	Result string `json:"result"`
}

// addBookRequest is the body of POST /api/v1/books. Raw title and
// author are capitalized and keyed before storage.
type addBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type addBookResponse struct {
	ID   int64        `json:"id"`
	Book catalog.Book `json:"book"`
}

type listBooksResponse struct {
	Books []catalog.Book `json:"books"`
	Count int            `json:"count"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	s.opts.Recorder.IncHTTPRequest("/healthz", http.StatusOK)
}

func (s *Server) handleCapitalize(kind string) http.HandlerFunc {
	route := "/api/v1/capitalize/" + kind
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeText(r)
		if err != nil {
			s.errorAdapter.WriteError(w, err)
			s.opts.Recorder.IncHTTPRequest(route, cerrors.StatusCode(err))
			return
		}

		start := time.Now()
		c := s.opts.Cataloguer()
		var result string
		if kind == "title" {
			result = c.CapitalizeTitle(req.Text)
		} else {
			result = c.CapitalizeAuthor(req.Text)
		}
		s.opts.Recorder.ObserveCapitalize(kind, time.Since(start))

		observability.DebugContext(r.Context(), "Capitalized text")
		writeJSON(w, http.StatusOK, textResponse{Result: result})
		s.opts.Recorder.IncHTTPRequest(route, http.StatusOK)
	}
}

func (s *Server) handleSortable(kind string) http.HandlerFunc {
	route := "/api/v1/sortable/" + kind
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeText(r)
		if err != nil {
			s.errorAdapter.WriteError(w, err)
			s.opts.Recorder.IncHTTPRequest(route, cerrors.StatusCode(err))
			return
		}

		start := time.Now()
		c := s.opts.Cataloguer()
		var result string
		if kind == "title" {
			result = c.SortableTitle(req.Text)
		} else {
			result = c.SortableAuthor(req.Text)
		}
		s.opts.Recorder.ObserveSortable(kind, time.Since(start))

		writeJSON(w, http.StatusOK, textResponse{Result: result})
		s.opts.Recorder.IncHTTPRequest(route, http.StatusOK)
	}
}

func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	const route = "/api/v1/books"
	if s.opts.Store == nil {
		s.writeError(w, route, cerrors.NotFoundError("catalogue storage not configured"))
		return
	}

	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, route, cerrors.ValidationError("invalid JSON body"))
		return
	}
	if req.Title == "" {
		s.writeError(w, route, cerrors.ValidationError("title must not be empty"))
		return
	}

	c := s.opts.Cataloguer()
	book := catalog.Book{
		Title:          c.CapitalizeTitle(req.Title),
		Author:         c.CapitalizeAuthor(req.Author),
		SortableTitle:  c.TitleSortKey(req.Title),
		SortableAuthor: c.AuthorSortKey(req.Author),
	}

	id, err := s.opts.Store.Add(r.Context(), book)
	if err != nil {
		s.writeError(w, route, err)
		return
	}
	book.ID = id

	writeJSON(w, http.StatusCreated, addBookResponse{ID: id, Book: book})
	s.opts.Recorder.IncHTTPRequest(route, http.StatusCreated)
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	const route = "/api/v1/books"
	if s.opts.Store == nil {
		s.writeError(w, route, cerrors.NotFoundError("catalogue storage not configured"))
		return
	}

	order := catalog.ByTitle
	switch r.URL.Query().Get("sort") {
	case "", "title":
	case "author":
		order = catalog.ByAuthor
	case "added":
		order = catalog.ByAdded
	default:
		s.writeError(w, route, cerrors.ValidationError("sort must be title, author, or added"))
		return
	}

	books, err := s.opts.Store.List(r.Context(), order)
	if err != nil {
		s.writeError(w, route, err)
		return
	}

	writeJSON(w, http.StatusOK, listBooksResponse{Books: books, Count: len(books)})
	s.opts.Recorder.IncHTTPRequest(route, http.StatusOK)
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	const route = "/api/v1/books/{id}"
	if s.opts.Store == nil {
		s.writeError(w, route, cerrors.NotFoundError("catalogue storage not configured"))
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, route, cerrors.ValidationError("id must be an integer"))
		return
	}

	if err := s.opts.Store.Delete(r.Context(), id); err != nil {
		s.writeError(w, route, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	s.opts.Recorder.IncHTTPRequest(route, http.StatusNoContent)
}

func (s *Server) writeError(w http.ResponseWriter, route string, err error) {
	s.errorAdapter.WriteError(w, err)
	s.opts.Recorder.IncHTTPRequest(route, cerrors.StatusCode(err))
}

func decodeText(r *http.Request) (textRequest, error) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, cerrors.ValidationError("invalid JSON body")
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
