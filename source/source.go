// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package source implements reading of data sources,
// either local files or HTTP URLs.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// A FetchError is an error produced
// when a source is not available.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("source %q: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsURL returns true if a source is an HTTP URL.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Client is the HTTP client used to fetch URLs.
var Client = http.DefaultClient

// Fetch reads the full content of a source.
// A source is either an HTTP URL,
// or a path to a local file.
func Fetch(ctx context.Context, src string) ([]byte, error) {
	if src == "" {
		return nil, &FetchError{Source: src, Err: fmt.Errorf("undefined source")}
	}
	if !IsURL(src) {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, &FetchError{Source: src, Err: err}
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, &FetchError{Source: src, Err: err}
	}
	resp, err := Client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: src, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Source: src, Err: fmt.Errorf("status %s", resp.Status)}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: src, Err: err}
	}
	return data, nil
}
