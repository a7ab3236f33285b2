package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Klea008/bookctl/internal/api"
	"github.com/Klea008/bookctl/internal/catalog"
)

func newClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, "", 0)
}

func TestListBooks(t *testing.T) {
	var gotPath string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"books":[{"_id":"1","title":"Dune","author":"Herbert","genre":"Sci-Fi","publicationYear":1965,"availability":"In Stock"}]}`))
	}))

	books, err := c.ListBooks(context.Background())
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if gotPath != "/all-books" {
		t.Errorf("path = %q, want %q", gotPath, "/all-books")
	}
	if len(books) != 1 {
		t.Fatalf("got %d books, want 1", len(books))
	}
	b := books[0]
	if b.ID != "1" || b.Title != "Dune" || b.PublicationYear != 1965 || b.Availability != catalog.InStock {
		t.Errorf("decoded book = %+v", b)
	}
}

func TestListByGenre_Query(t *testing.T) {
	var gotGenre string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotGenre = r.URL.Query().Get("genre")
		_, _ = w.Write([]byte(`{"books":[]}`))
	}))

	if _, err := c.ListByGenre(context.Background(), "Drama"); err != nil {
		t.Fatalf("ListByGenre: %v", err)
	}
	if gotGenre != "Drama" {
		t.Errorf("genre query = %q, want %q", gotGenre, "Drama")
	}
}

func TestPaged(t *testing.T) {
	var gotQuery map[string]string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"page":  r.URL.Query().Get("page"),
			"limit": r.URL.Query().Get("limit"),
		}
		_, _ = w.Write([]byte(`{"books":[{"_id":"1"}],"pagination":{"totalPages":4}}`))
	}))

	books, total, err := c.Paged(context.Background(), 2, 21)
	if err != nil {
		t.Fatalf("Paged: %v", err)
	}
	if gotQuery["page"] != "2" || gotQuery["limit"] != "21" {
		t.Errorf("query = %v, want page=2 limit=21", gotQuery)
	}
	if total != 4 {
		t.Errorf("totalPages = %d, want 4", total)
	}
	if len(books) != 1 {
		t.Errorf("got %d books, want 1", len(books))
	}
}

func TestCreateBook(t *testing.T) {
	var got struct {
		Title        string `json:"title"`
		Availability string `json:"availability"`
	}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/add-book" {
			t.Errorf("request = %s %s, want POST /add-book", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"message":"Book added","book":{"_id":"9","title":"Dune"}}`))
	}))

	draft := catalog.Draft{
		Title:           "Dune",
		Author:          "Herbert",
		Genre:           "Sci-Fi",
		PublicationYear: 1965,
		CoverImage:      "https://example.com/dune.jpg",
		Description:     "Spice.",
		Availability:    catalog.InStock,
		ISBN:            "9780441013593",
	}
	book, msg, err := c.CreateBook(context.Background(), draft)
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	if got.Title != "Dune" || got.Availability != "In Stock" {
		t.Errorf("posted body = %+v", got)
	}
	if book.ID != "9" {
		t.Errorf("book.ID = %q, want %q", book.ID, "9")
	}
	if msg != "Book added" {
		t.Errorf("message = %q, want %q", msg, "Book added")
	}
}

func TestDeleteBooks_Batch(t *testing.T) {
	var got struct {
		IDs []string `json:"ids"`
	}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/delete-books" {
			t.Errorf("request = %s %s, want DELETE /delete-books", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"message":"2 books deleted"}`))
	}))

	msg, err := c.DeleteBooks(context.Background(), []string{"1", "2"})
	if err != nil {
		t.Fatalf("DeleteBooks: %v", err)
	}
	if len(got.IDs) != 2 || got.IDs[0] != "1" || got.IDs[1] != "2" {
		t.Errorf("posted ids = %v, want [1 2]", got.IDs)
	}
	if msg != "2 books deleted" {
		t.Errorf("message = %q", msg)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		is     error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Unauthorized"}`, api.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, `{"message":"Forbidden"}`, api.ErrUnauthorized},
		{"not found", http.StatusNotFound, `{"message":"Book not found"}`, api.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := c.ListBooks(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, tt.is) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.is)
			}
			var reqErr *api.RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("error %T is not a RequestError", err)
			}
			if reqErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", reqErr.Status, tt.status)
			}
		})
	}
}

func TestServerError_MessageEnvelope(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Database unavailable"}`))
	}))

	_, err := c.ListBooks(context.Background())
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error %T is not a RequestError", err)
	}
	if reqErr.Message != "Database unavailable" {
		t.Errorf("Message = %q, want the envelope message", reqErr.Message)
	}
}

func TestMalformedResponse(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))

	_, err := c.ListBooks(context.Background())
	var decErr *api.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error %T, want a DecodeError", err)
	}
}

func TestSessionCookiePersistence(t *testing.T) {
	var profileCookie string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "s3cret", Path: "/"})
			_, _ = w.Write([]byte(`{"user":{"_id":"u1","role":"admin"},"message":"Login successful"}`))
		case "/profile":
			if ck, err := r.Cookie("token"); err == nil {
				profileCookie = ck.Value
			}
			_, _ = w.Write([]byte(`{"user":{"_id":"u1","role":"admin"}}`))
		default:
			http.NotFound(w, r)
		}
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	cookiePath := filepath.Join(t.TempDir(), "session.json")

	c1 := api.New(srv.URL, cookiePath, 0)
	user, _, err := c1.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user == nil || user.ID != "u1" {
		t.Fatalf("user = %+v, want id u1", user)
	}

	// A fresh client with the same cookie file carries the session.
	c2 := api.New(srv.URL, cookiePath, 0)
	if _, _, err := c2.Profile(context.Background()); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profileCookie != "s3cret" {
		t.Errorf("profile cookie = %q, want %q", profileCookie, "s3cret")
	}

	c2.ClearSession()
	c3 := api.New(srv.URL, cookiePath, 0)
	profileCookie = ""
	if _, _, err := c3.Profile(context.Background()); err != nil {
		t.Fatalf("Profile after clear: %v", err)
	}
	if profileCookie != "" {
		t.Errorf("cookie still sent after ClearSession: %q", profileCookie)
	}
}
