package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/airfare-routefinder/route-finder/internal/config"
	"github.com/airfare-routefinder/route-finder/internal/domain"
)

const testCatalogJSON = `{
  "cities": [
    {"id": 1, "name": "Delhi"},
    {"id": 2, "name": "Goa"},
    {"id": 3, "name": "Mumbai"}
  ],
  "defaultFromCity": "Delhi",
  "defaultToCity": "Goa"
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cities.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testConfig(catalogPath, baseURL string) *config.Config {
	return &config.Config{
		Lookup: config.LookupConfig{
			BaseURL:    baseURL,
			SearchPath: "/user-search/search",
			Timeout:    time.Second,
		},
		Catalog: config.CatalogConfig{File: catalogPath},
		Logging: config.LoggingConfig{Level: "debug", Format: "console"},
		App:     config.AppConfig{Env: "development"},
	}
}

func TestLoggerConfig(t *testing.T) {
	cfg := testConfig("", "")

	lc := LoggerConfig(cfg)

	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "console", lc.Format)
	assert.True(t, lc.EnableCaller)
	assert.Equal(t, "route-finder", lc.ServiceName)
}

func TestBuild_Success(t *testing.T) {
	cfg := testConfig(writeCatalog(t, testCatalogJSON), "http://localhost:4000")
	cfg.Catalog.DefaultTo = "Mumbai"

	c, err := Build(context.Background(), cfg, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"Delhi", "Goa", "Mumbai"}, c.Catalog.Names())
	assert.Equal(t, "Delhi", c.Catalog.DefaultFromCity)
	assert.Equal(t, "Mumbai", c.Catalog.DefaultToCity, "override wins over the file")
	assert.NotNil(t, c.Lookup)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		catalog func(t *testing.T) string
		baseURL string
		wantErr string
	}{
		{
			name:    "missing catalog file",
			catalog: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			baseURL: "http://localhost:4000",
			wantErr: "load city catalog",
		},
		{
			name:    "invalid catalog",
			catalog: func(t *testing.T) string { return writeCatalog(t, `{"cities": [{"name": "Goa"}, {"name": "Goa"}]}`) },
			baseURL: "http://localhost:4000",
			wantErr: "load city catalog",
		},
		{
			name:    "invalid lookup url",
			catalog: func(t *testing.T) string { return writeCatalog(t, testCatalogJSON) },
			baseURL: "not a url",
			wantErr: "create lookup client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(context.Background(), testConfig(tt.catalog(t), tt.baseURL), nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildWithCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig("unused", "http://localhost:4000")

	t.Run("uses the provider's catalog", func(t *testing.T) {
		provider := domain.NewMockCityCatalogProvider(ctrl)
		provider.EXPECT().Catalog(gomock.Any()).Return(&domain.CityCatalog{
			Cities:          []domain.City{{ID: "1", Name: "Pune"}},
			DefaultFromCity: "Pune",
		}, nil)

		c, err := BuildWithCatalog(context.Background(), cfg, provider, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"Pune"}, c.Catalog.Names())
		assert.Equal(t, "Pune", c.NewController(nil).Query().FromCity)
	})

	t.Run("provider error", func(t *testing.T) {
		provider := domain.NewMockCityCatalogProvider(ctrl)
		provider.EXPECT().Catalog(gomock.Any()).Return(nil, domain.ErrInvalidCatalog)

		_, err := BuildWithCatalog(context.Background(), cfg, provider, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})
}

func TestComponents_ControllerFactory_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user-search/search", r.URL.Path)
		assert.Equal(t, "Delhi", r.URL.Query().Get("fromCity"))
		assert.Equal(t, "Goa", r.URL.Query().Get("toCity"))
		assert.Equal(t, "Fastest", r.URL.Query().Get("fliterBy"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"connections":[{"id":1,"fromCity":"Delhi","toCity":"Goa","duration":2,"airfare":4500}]}`))
	}))
	defer server.Close()

	c, err := Build(context.Background(), testConfig(writeCatalog(t, testCatalogJSON), server.URL), nil)
	require.NoError(t, err)

	factory := c.ControllerFactory(nil)
	first, second := factory(), factory()
	assert.NotSame(t, first, second)
	assert.Equal(t, domain.SearchQuery{FromCity: "Delhi", ToCity: "Goa", RankBy: domain.RankByFastest}, first.Query())

	result := first.RunSearch(context.Background())

	found, ok := result.(domain.Found)
	require.True(t, ok, "got %#v", result)
	require.Len(t, found.Connections, 1)
	assert.Equal(t, 4500.0, found.Connections[0].Airfare)
	assert.Equal(t, domain.StateEmpty, second.Result().State(), "controllers do not share results")
}
