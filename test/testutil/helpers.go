// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
)

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// CatalogPath returns the path of the catalog shipped in data/.
func CatalogPath(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "data", "cities.json")
}

// WriteTempFile writes content to a file in a per-test directory and returns its path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// RouteService is a fake connection lookup service over HTTP.
type RouteService struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	body     []byte
	requests []url.Values
}

// NewRouteService starts a fake that answers every request with status and body.
// It is closed when the test ends.
func NewRouteService(t *testing.T, status int, body []byte) *RouteService {
	t.Helper()
	rs := &RouteService{status: status, body: body}
	rs.Server = httptest.NewServer(http.HandlerFunc(rs.serve))
	t.Cleanup(rs.Close)
	return rs
}

// Respond changes the answer for later requests.
func (rs *RouteService) Respond(status int, body []byte) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.status = status
	rs.body = body
}

// Requests returns the query parameters of every request received so far.
func (rs *RouteService) Requests() []url.Values {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]url.Values, len(rs.requests))
	copy(out, rs.requests)
	return out
}

func (rs *RouteService) serve(w http.ResponseWriter, r *http.Request) {
	rs.mu.Lock()
	rs.requests = append(rs.requests, r.URL.Query())
	status, body := rs.status, rs.body
	rs.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
