package sheet_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blackwell-systems/songshelf/internal/catalog"
	"github.com/blackwell-systems/songshelf/internal/sheet"
)

func serve(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &path
}

func TestLoadRows_OK(t *testing.T) {
	srv, path := serve(t, http.StatusOK, `[{"歌名":"X","歌手":"Y","分類":"流行, 搖滾"},{"歌名":"Z","語言":"國語"}]`)
	c := sheet.New(srv.URL+"/", "abc", "sheet1")

	rows, err := c.LoadRows(context.Background())
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if *path != "/abc/sheet1" {
		t.Errorf("request path = %q, want %q", *path, "/abc/sheet1")
	}
	if got := rows[0].Lookup(catalog.CategoryKeys...); got != "流行, 搖滾" {
		t.Errorf("category = %q", got)
	}
}

func TestLoadRows_EmptyArray(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `[]`)
	rows, err := sheet.New(srv.URL, "abc", "sheet1").LoadRows(context.Background())
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected empty non-nil rows, got %v", rows)
	}
}

func TestLoadRows_StatusErrors(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, sheet.ErrNotFound},
		{http.StatusForbidden, sheet.ErrForbidden},
		{http.StatusUnauthorized, sheet.ErrForbidden},
		{http.StatusTooManyRequests, sheet.ErrRateLimited},
	}
	for _, c := range cases {
		srv, _ := serve(t, c.status, "nope")
		_, err := sheet.New(srv.URL, "abc", "sheet1").LoadRows(context.Background())
		if !errors.Is(err, c.want) {
			t.Errorf("status %d: err = %v, want %v", c.status, err, c.want)
		}
	}
}

func TestLoadRows_ServerError(t *testing.T) {
	srv, _ := serve(t, http.StatusBadGateway, "upstream down\n")
	_, err := sheet.New(srv.URL, "abc", "sheet1").LoadRows(context.Background())
	var se *sheet.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %T (%v)", err, err)
	}
	if se.Code != http.StatusBadGateway || se.Body != "upstream down" {
		t.Errorf("StatusError = %+v", se)
	}
}

func TestLoadRows_NotAnArray(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `{"error":"Requested sheet does not exist"}`)
	if _, err := sheet.New(srv.URL, "abc", "sheet1").LoadRows(context.Background()); err == nil {
		t.Error("expected decode error for object body, got nil")
	}
}

func TestLoadRows_Unreachable(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `[]`)
	srv.Close()
	if _, err := sheet.New(srv.URL, "abc", "sheet1").LoadRows(context.Background()); err == nil {
		t.Error("expected transport error, got nil")
	}
}

func TestURL_Escaping(t *testing.T) {
	c := sheet.New("", "id 1", "My Tab")
	want := "https://opensheet.elk.sh/id%201/My%20Tab"
	if got := c.URL(); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}
