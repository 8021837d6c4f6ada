package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/airfare-routefinder/route-finder/internal/adapter/http/response"
	"github.com/airfare-routefinder/route-finder/internal/domain"
	"github.com/airfare-routefinder/route-finder/internal/usecase"
)

// testCatalog is the catalog served by the test handler.
func testCatalog() *domain.CityCatalog {
	return &domain.CityCatalog{
		Cities: []domain.City{
			{ID: "1", Name: "Delhi", ImageURL: "img1"},
			{ID: "2", Name: "Goa", ImageURL: "img2"},
			{ID: "3", Name: "Mumbai", ImageURL: "img3"},
		},
		DefaultFromCity: "Delhi",
		DefaultToCity:   "Goa",
	}
}

// setupTestHandler creates a test Echo instance backed by a real session registry.
func setupTestHandler(t *testing.T) (*echo.Echo, *domain.MockConnectionLookupService, *usecase.SessionRegistry) {
	t.Helper()
	ctrl := gomock.NewController(t)
	lookup := domain.NewMockConnectionLookupService(ctrl)
	catalog := testCatalog()

	factory := func() *usecase.SearchController {
		return usecase.NewSearchController(lookup, catalog.Cities, usecase.ControllerConfig{
			DefaultFromCity: catalog.DefaultFromCity,
			DefaultToCity:   catalog.DefaultToCity,
		})
	}
	registry := usecase.NewSessionRegistry(factory, nil, nil, nil)

	e := echo.New()
	RegisterRoutes(e, NewSearchHandler(registry, catalog, nil))
	return e, lookup, registry
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeState decodes a session state body.
func decodeState(t *testing.T, rec *httptest.ResponseRecorder) SessionStateDTO {
	t.Helper()
	var state SessionStateDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state), rec.Body.String())
	return state
}

// createSession starts a session and returns its ID.
func createSession(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := makeRequest(e, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeState(t, rec).SessionID
}

func strPtr(s string) *string {
	return &s
}

func delhiGoaLookup() *domain.LookupResult {
	return &domain.LookupResult{
		Connections: []domain.Connection{
			{ID: "1", FromCity: "Delhi", ToCity: "Goa", DurationHours: 2, Airfare: 4500},
		},
		FromCityImage: "img1",
		ToCityImage:   "img2",
	}
}

// =====================================================
// Handler Tests
// =====================================================

func TestHealth_Success(t *testing.T) {
	e, _, _ := setupTestHandler(t)
	createSession(t, e)

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body response.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 1, body.ActiveSessions)
}

func TestListCities(t *testing.T) {
	e, _, _ := setupTestHandler(t)

	rec := makeRequest(e, http.MethodGet, "/api/v1/cities", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body CitiesResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Cities, 3)
	assert.Equal(t, CityDTO{ID: "1", Name: "Delhi", ImageURL: "img1"}, body.Cities[0])
	assert.Equal(t, "Delhi", body.DefaultFromCity)
	assert.Equal(t, "Goa", body.DefaultToCity)
}

func TestCreateSession(t *testing.T) {
	e, _, registry := setupTestHandler(t)

	rec := makeRequest(e, http.MethodPost, "/api/v1/sessions", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	state := decodeState(t, rec)
	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, QueryDTO{FromCity: "Delhi", ToCity: "Goa", RankBy: "Fastest"}, state.Query)
	assert.Equal(t, ResultDTO{State: "empty"}, state.Result)
	assert.Equal(t, 1, registry.Len())
}

func TestSessionEndpoints_UnknownSession(t *testing.T) {
	e, _, _ := setupTestHandler(t)

	tests := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/api/v1/sessions/nope", nil},
		{http.MethodPatch, "/api/v1/sessions/nope/query", UpdateQueryRequest{FromCity: strPtr("Delhi")}},
		{http.MethodPost, "/api/v1/sessions/nope/search", nil},
		{http.MethodPost, "/api/v1/sessions/nope/reset", nil},
		{http.MethodDelete, "/api/v1/sessions/nope", nil},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := makeRequest(e, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			var body response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, response.CodeSessionNotFound, body.Code)
		})
	}
}

func TestUpdateQuery(t *testing.T) {
	e, _, _ := setupTestHandler(t)
	id := createSession(t, e)

	rec := makeRequest(e, http.MethodPatch, "/api/v1/sessions/"+id+"/query", UpdateQueryRequest{
		FromCity: strPtr("Mumbai"),
		RankBy:   strPtr("cheapest"),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, QueryDTO{FromCity: "Mumbai", ToCity: "Goa", RankBy: "Cheapest"}, state.Query)

	rec = makeRequest(e, http.MethodPatch, "/api/v1/sessions/"+id+"/query", UpdateQueryRequest{ToCity: strPtr("")})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", decodeState(t, rec).Query.ToCity, "an empty string clears the city")
}

func TestUpdateQuery_InvalidRankBy(t *testing.T) {
	e, _, _ := setupTestHandler(t)
	id := createSession(t, e)

	rec := makeRequest(e, http.MethodPatch, "/api/v1/sessions/"+id+"/query", UpdateQueryRequest{RankBy: strPtr("Scenic")})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, response.CodeValidationError, body.Code)
	assert.Contains(t, body.Details, "rankBy")

	state := decodeState(t, makeRequest(e, http.MethodGet, "/api/v1/sessions/"+id, nil))
	assert.Equal(t, "Fastest", state.Query.RankBy, "a rejected update changes nothing")
}

func TestUpdateQuery_EmptyBody(t *testing.T) {
	e, _, _ := setupTestHandler(t)
	id := createSession(t, e)

	rec := makeRequest(e, http.MethodPatch, "/api/v1/sessions/"+id+"/query", UpdateQueryRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, response.CodeValidationError, body.Code)
}

func TestUpdateQuery_InvalidJSON(t *testing.T) {
	e, _, _ := setupTestHandler(t)
	id := createSession(t, e)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/sessions/"+id+"/query", bytes.NewBufferString("{invalid json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, response.CodeInvalidRequest, body.Code)
}

func TestUpdateQuery_KeepsStaleResult(t *testing.T) {
	e, lookup, _ := setupTestHandler(t)
	id := createSession(t, e)
	lookup.EXPECT().Find(gomock.Any(), gomock.Any()).Return(delhiGoaLookup(), nil)

	require.Equal(t, http.StatusOK, makeRequest(e, http.MethodPost, "/api/v1/sessions/"+id+"/search", nil).Code)

	rec := makeRequest(e, http.MethodPatch, "/api/v1/sessions/"+id+"/query", UpdateQueryRequest{ToCity: strPtr("Mumbai")})

	state := decodeState(t, rec)
	assert.Equal(t, "Mumbai", state.Query.ToCity)
	assert.Equal(t, "found", state.Result.State)
}

func TestRunSearch_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		setup    func(*domain.MockConnectionLookupService)
		validate func(*testing.T, ResultDTO)
	}{
		{
			name: "found",
			from: "Delhi", to: "Goa",
			setup: func(m *domain.MockConnectionLookupService) {
				m.EXPECT().Find(gomock.Any(), gomock.Any()).Return(delhiGoaLookup(), nil)
			},
			validate: func(t *testing.T, r ResultDTO) {
				assert.Equal(t, "found", r.State)
				require.Len(t, r.Connections, 1)
				assert.Equal(t, ConnectionDTO{ID: "1", FromCity: "Delhi", ToCity: "Goa", Duration: 2, Airfare: 4500}, r.Connections[0])
				assert.Equal(t, "img1", r.FromCityImage)
				assert.Equal(t, "img2", r.ToCityImage)
			},
		},
		{
			name: "identical cities",
			from: "Mumbai", to: "Mumbai",
			setup: func(*domain.MockConnectionLookupService) {},
			validate: func(t *testing.T, r ResultDTO) {
				assert.Equal(t, ResultDTO{
					State:   "failed",
					Failure: "validation",
					Message: "identical cities",
					Hint:    domain.MsgIdenticalCitiesHint,
				}, r)
			},
		},
		{
			name: "missing cities",
			from: "", to: "Goa",
			setup: func(*domain.MockConnectionLookupService) {},
			validate: func(t *testing.T, r ResultDTO) {
				assert.Equal(t, "failed", r.State)
				assert.Equal(t, "missing cities", r.Message)
			},
		},
		{
			name: "service unavailable",
			from: "Delhi", to: "Goa",
			setup: func(m *domain.MockConnectionLookupService) {
				m.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, domain.NewStatusError(http.StatusServiceUnavailable))
			},
			validate: func(t *testing.T, r ResultDTO) {
				assert.Equal(t, ResultDTO{State: "failed", Failure: "transport", Message: domain.MsgServiceUnavailable}, r)
			},
		},
		{
			name: "no matches uses service message",
			from: "Delhi", to: "Goa",
			setup: func(m *domain.MockConnectionLookupService) {
				m.EXPECT().Find(gomock.Any(), gomock.Any()).Return(&domain.LookupResult{NoConnection: true, Message: "No route"}, nil)
			},
			validate: func(t *testing.T, r ResultDTO) {
				assert.Equal(t, ResultDTO{State: "no_matches", Message: "No route"}, r)
			},
		},
		{
			name: "no matches falls back to default message",
			from: "Delhi", to: "Goa",
			setup: func(m *domain.MockConnectionLookupService) {
				m.EXPECT().Find(gomock.Any(), gomock.Any()).Return(&domain.LookupResult{Connections: []domain.Connection{}}, nil)
			},
			validate: func(t *testing.T, r ResultDTO) {
				assert.Equal(t, ResultDTO{State: "no_matches", Message: domain.MsgNoConnection}, r)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, lookup, _ := setupTestHandler(t)
			tt.setup(lookup)
			id := createSession(t, e)

			rec := makeRequest(e, http.MethodPatch, "/api/v1/sessions/"+id+"/query", UpdateQueryRequest{
				FromCity: strPtr(tt.from),
				ToCity:   strPtr(tt.to),
			})
			require.Equal(t, http.StatusOK, rec.Code)

			rec = makeRequest(e, http.MethodPost, "/api/v1/sessions/"+id+"/search", nil)

			assert.Equal(t, http.StatusOK, rec.Code, "every settled variant is a 200")
			tt.validate(t, decodeState(t, rec).Result)
		})
	}
}

func TestRunSearch_Async(t *testing.T) {
	e, lookup, _ := setupTestHandler(t)
	id := createSession(t, e)

	release := make(chan struct{})
	lookup.EXPECT().
		Find(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.SearchQuery) (*domain.LookupResult, error) {
			select {
			case <-release:
				return delhiGoaLookup(), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})

	rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/"+id+"/search?async=true", nil)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "pending", decodeState(t, rec).Result.State)

	close(release)
	assert.Eventually(t, func() bool {
		rec := makeRequest(e, http.MethodGet, "/api/v1/sessions/"+id, nil)
		return decodeState(t, rec).Result.State == "found"
	}, time.Second, 5*time.Millisecond)
}

func TestRunSearch_AsyncValidationFailure(t *testing.T) {
	e, _, _ := setupTestHandler(t)
	id := createSession(t, e)
	makeRequest(e, http.MethodPatch, "/api/v1/sessions/"+id+"/query", UpdateQueryRequest{ToCity: strPtr("Delhi")})

	rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/"+id+"/search?async=true", nil)

	assert.Equal(t, http.StatusOK, rec.Code, "a search settled by validation is not pending")
	assert.Equal(t, "identical cities", decodeState(t, rec).Result.Message)
}

func TestRunSearch_InvalidAsyncFlag(t *testing.T) {
	e, _, _ := setupTestHandler(t)
	id := createSession(t, e)

	rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/"+id+"/search?async=maybe", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunSearch_SessionDeletedWhileInFlight(t *testing.T) {
	e, lookup, _ := setupTestHandler(t)
	id := createSession(t, e)

	started := make(chan struct{})
	lookup.EXPECT().
		Find(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.SearchQuery) (*domain.LookupResult, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		done <- makeRequest(e, http.MethodPost, "/api/v1/sessions/"+id+"/search", nil)
	}()
	<-started

	require.Equal(t, http.StatusNoContent, makeRequest(e, http.MethodDelete, "/api/v1/sessions/"+id, nil).Code)

	select {
	case rec := <-done:
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ResultDTO{State: "failed", Failure: "transport", Message: domain.MsgServiceUnavailable},
			decodeState(t, rec).Result, "the response carries a settled outcome, never pending")
	case <-time.After(time.Second):
		t.Fatal("search did not return after the session was deleted")
	}
}

func TestResetSession(t *testing.T) {
	e, lookup, _ := setupTestHandler(t)
	id := createSession(t, e)
	lookup.EXPECT().Find(gomock.Any(), gomock.Any()).Return(delhiGoaLookup(), nil)
	makeRequest(e, http.MethodPost, "/api/v1/sessions/"+id+"/search", nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/"+id+"/reset", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, ResultDTO{State: "empty"}, state.Result)
	assert.Equal(t, "Delhi", state.Query.FromCity)
}

func TestDeleteSession(t *testing.T) {
	e, _, registry := setupTestHandler(t)
	id := createSession(t, e)

	rec := makeRequest(e, http.MethodDelete, "/api/v1/sessions/"+id, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, registry.Len())
	assert.Equal(t, http.StatusNotFound, makeRequest(e, http.MethodGet, "/api/v1/sessions/"+id, nil).Code)
}

func TestSessions_AreIsolated(t *testing.T) {
	e, _, _ := setupTestHandler(t)
	first := createSession(t, e)
	second := createSession(t, e)

	makeRequest(e, http.MethodPatch, "/api/v1/sessions/"+first+"/query", UpdateQueryRequest{FromCity: strPtr("Mumbai")})

	state := decodeState(t, makeRequest(e, http.MethodGet, "/api/v1/sessions/"+second, nil))
	assert.Equal(t, "Delhi", state.Query.FromCity)
}

// =====================================================
// Converter Tests
// =====================================================

func TestToResultDTO(t *testing.T) {
	tests := []struct {
		name   string
		result domain.SearchResult
		want   ResultDTO
	}{
		{"nil", nil, ResultDTO{State: "empty"}},
		{"empty", domain.Empty{}, ResultDTO{State: "empty"}},
		{"pending", domain.Pending{}, ResultDTO{State: "pending"}},
		{
			"failed",
			domain.Failed{Kind: domain.FailureValidation, Message: "missing cities", Hint: domain.MsgMissingCitiesHint},
			ResultDTO{State: "failed", Failure: "validation", Message: "missing cities", Hint: domain.MsgMissingCitiesHint},
		},
		{"no matches", domain.NoMatches{}, ResultDTO{State: "no_matches", Message: domain.MsgNoConnection}},
		{
			"found",
			domain.Found{Connections: delhiGoaLookup().Connections, FromCityImage: "a", ToCityImage: "b"},
			ResultDTO{
				State:         "found",
				Connections:   []ConnectionDTO{{ID: "1", FromCity: "Delhi", ToCity: "Goa", Duration: 2, Airfare: 4500}},
				FromCityImage: "a",
				ToCityImage:   "b",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToResultDTO(tt.result))
		})
	}
}

func TestToSessionStateDTO_JSONShape(t *testing.T) {
	dto := ToSessionStateDTO("abc", usecase.State{
		Query:  domain.SearchQuery{FromCity: "Delhi", ToCity: "Goa", RankBy: domain.RankByCheapest},
		Result: domain.Pending{},
	})

	data, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"sessionId": "abc",
		"query": {"fromCity": "Delhi", "toCity": "Goa", "rankBy": "Cheapest"},
		"result": {"state": "pending"}
	}`, string(data))
}

func TestRegisterRoutes(t *testing.T) {
	e, _, _ := setupTestHandler(t)

	routes := make(map[string]bool)
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /api/v1/cities",
		"POST /api/v1/sessions",
		"GET /api/v1/sessions/:id",
		"DELETE /api/v1/sessions/:id",
		"PATCH /api/v1/sessions/:id/query",
		"POST /api/v1/sessions/:id/search",
		"POST /api/v1/sessions/:id/reset",
	} {
		assert.True(t, routes[want], "route %s should be registered", want)
	}
}
