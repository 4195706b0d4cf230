// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package source_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/js-arias/phyview/source"
)

func TestFetchFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "tree.nh")
	want := "(A,B);\n"
	if err := os.WriteFile(name, []byte(want), 0o644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	data, err := source.Fetch(context.Background(), name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != want {
		t.Errorf("data: got %q, want %q", data, want)
	}

	_, err = source.Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.nh"))
	testFetchError(t, "missing file", err)
}

func TestFetchURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tree.nh" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "(A,B);")
	}))
	defer ts.Close()

	data, err := source.Fetch(context.Background(), ts.URL+"/tree.nh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "(A,B);" {
		t.Errorf("data: got %q, want %q", data, "(A,B);")
	}

	_, err = source.Fetch(context.Background(), ts.URL+"/missing.nh")
	testFetchError(t, "not found", err)
}

func TestFetchUndefined(t *testing.T) {
	_, err := source.Fetch(context.Background(), "")
	testFetchError(t, "undefined", err)
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"https://example.org/tree.nh": true,
		"http://example.org/tree.nh":  true,
		"tree.nh":                     false,
		"/data/http/tree.nh":          false,
	}
	for src, want := range tests {
		if got := source.IsURL(src); got != want {
			t.Errorf("source %q: got %v, want %v", src, got, want)
		}
	}
}

func testFetchError(t testing.TB, name string, err error) {
	t.Helper()

	if err == nil {
		t.Errorf("%s: expecting error", name)
		return
	}
	var fe *source.FetchError
	if !errors.As(err, &fe) {
		t.Errorf("%s: got %T, want *source.FetchError", name, err)
	}
}
