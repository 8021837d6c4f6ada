// Package integration provides helpers and integration tests for the route finder.
// Integration tests verify that components work together correctly, including
// HTTP middleware, handlers, session registry, controllers and the lookup client.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/airfare-routefinder/route-finder/internal/adapter/http"
	"github.com/airfare-routefinder/route-finder/internal/adapter/http/middleware"
	"github.com/airfare-routefinder/route-finder/internal/adapter/lookup"
	"github.com/airfare-routefinder/route-finder/internal/domain"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/logger"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/metrics"
	"github.com/airfare-routefinder/route-finder/internal/usecase"
)

// TestCatalog is the catalog every integration test server serves.
func TestCatalog() *domain.CityCatalog {
	return &domain.CityCatalog{
		Cities: []domain.City{
			{ID: "1", Name: "Delhi"},
			{ID: "2", Name: "Mumbai"},
			{ID: "3", Name: "Goa"},
			{ID: "8", Name: "Jaipur"},
		},
		DefaultFromCity: "Delhi",
		DefaultToCity:   "Goa",
	}
}

// TestServer wraps an Echo instance wired the way the service binary wires it.
type TestServer struct {
	Echo     *echo.Echo
	Sessions *usecase.SessionRegistry
	Metrics  *metrics.Metrics
}

// NewTestServer creates a test server whose controllers use svc for lookups.
func NewTestServer(svc domain.ConnectionLookupService) *TestServer {
	catalog := TestCatalog()
	m := metrics.NewMetrics("test")
	log := logger.Nop()

	factory := func() *usecase.SearchController {
		return usecase.NewSearchController(svc, catalog.Cities, usecase.ControllerConfig{
			DefaultFromCity: catalog.DefaultFromCity,
			DefaultToCity:   catalog.DefaultToCity,
		}, usecase.WithObserver(m), usecase.WithLogger(log))
	}
	sessions := usecase.NewSessionRegistry(factory, nil, m, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, log, m)
	httpAdapter.RegisterRoutes(e, httpAdapter.NewSearchHandler(sessions, catalog, log))
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	return &TestServer{
		Echo:     e,
		Sessions: sessions,
		Metrics:  m,
	}
}

// NewTestServerWithRouteService creates a test server that talks HTTP to baseURL.
func NewTestServerWithRouteService(t *testing.T, baseURL string) *TestServer {
	t.Helper()
	client, err := lookup.NewClient(lookup.Config{BaseURL: baseURL}, nil)
	if err != nil {
		t.Fatalf("Failed to create lookup client: %v", err)
	}
	return NewTestServer(client)
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// CreateSession starts a session and returns its state.
func (ts *TestServer) CreateSession(t *testing.T) httpAdapter.SessionStateDTO {
	t.Helper()
	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/sessions"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create session: status %d: %s", resp.Code, resp.Body)
	}
	return resp.MustState(t)
}

// UpdateQuery edits the form of session id.
func (ts *TestServer) UpdateQuery(id string, body httpAdapter.UpdateQueryRequest) Response {
	return ts.Do(Request{Method: http.MethodPatch, Path: "/api/v1/sessions/" + id + "/query", Body: body})
}

// Search runs the search of session id, optionally asynchronously.
func (ts *TestServer) Search(id string, async bool) Response {
	path := "/api/v1/sessions/" + id + "/search"
	if async {
		path += "?async=true"
	}
	return ts.Do(Request{Method: http.MethodPost, Path: path})
}

// GetSession reads the state of session id.
func (ts *TestServer) GetSession(id string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/sessions/" + id})
}

// Reset clears the result of session id.
func (ts *TestServer) Reset(id string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/sessions/" + id + "/reset"})
}

// MustState parses the response body as a session state.
func (r Response) MustState(t *testing.T) httpAdapter.SessionStateDTO {
	t.Helper()
	var state httpAdapter.SessionStateDTO
	if err := json.Unmarshal(r.Body, &state); err != nil {
		t.Fatalf("parse session state: %v: %s", err, r.Body)
	}
	return state
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}
