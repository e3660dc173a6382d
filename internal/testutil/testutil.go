package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// NewRequest creates a new HTTP request for testing. A non-empty body is
// sent as application/json verbatim, so malformed payloads can be exercised.
func NewRequest(method, path, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, path, nil)
	}
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// DecodeJSON decodes a JSON body into T, failing the test on error.
func DecodeJSON[T any](t testing.TB, r io.Reader) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return v
}

// ErrorMessage returns the "error" field of a JSON error body.
func ErrorMessage(t testing.TB, r io.Reader) string {
	t.Helper()
	return DecodeJSON[map[string]string](t, r)["error"]
}
