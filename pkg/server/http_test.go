package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/bastiangx/assetserve/pkg/present"
	"github.com/bastiangx/assetserve/pkg/rank"
	"github.com/bastiangx/assetserve/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newEngine() *search.Engine {
	return search.New(asset.NewStore(asset.Seed()), rank.NewScorer(rank.DefaultOptions()), search.DefaultOptions())
}

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := NewHTTPServer(newEngine(), HTTPOptions{})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestSearchEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, body := get(t, ts.URL+"/api/search?q=Bit")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var views []present.AssetView
	require.NoError(t, json.Unmarshal([]byte(body), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "BTC", views[0].Symbol)
	assert.Equal(t, 100, views[0].Score)
	assert.Equal(t, 2150.0, views[0].Cap)
	assert.Equal(t, "BCH", views[1].Symbol)
}

func TestSearchEndpointTypeFilter(t *testing.T) {
	ts := setupTestServer(t)

	_, body := get(t, ts.URL+"/api/search?type=stock")
	var views []present.AssetView
	require.NoError(t, json.Unmarshal([]byte(body), &views))
	assert.Len(t, views, 36)
	for _, v := range views {
		assert.Equal(t, "stock", v.Type)
	}
}

func TestSearchEndpointNoMatches(t *testing.T) {
	ts := setupTestServer(t)

	_, body := get(t, ts.URL+"/api/search?q=zzzz")
	assert.Equal(t, "[]", body)

	_, body = get(t, ts.URL+"/api/search?q=%22%3E%3C")
	assert.Equal(t, "[]", body)
}

func TestRecommendEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	_, body := get(t, ts.URL+"/api/recommend?type=crypto")
	var views []present.AssetView
	require.NoError(t, json.Unmarshal([]byte(body), &views))
	require.Len(t, views, 5)
	assert.Equal(t, "BTC", views[0].Symbol)
}

func TestStatsEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, body := get(t, ts.URL+"/api/stats")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, `{"total":89,"cryptos":46,"stocks":43,"avgScore":87,"totalCap":25.333849}`, body)
}

func TestHealthEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	_, body := get(t, ts.URL+"/api/health")
	assert.Equal(t, `{"status":"ok","assets":89}`, body)
}

func TestNotFound(t *testing.T) {
	ts := setupTestServer(t)

	for _, path := range []string{"/", "/api", "/api/searchx", "/favicon.ico"} {
		resp, body := get(t, ts.URL+path)
		assert.Equal(t, 200, resp.StatusCode, path)
		assert.Equal(t, `{"error":"Not found"}`, body, path)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"), path)
	}

	resp, err := http.Post(ts.URL+"/api/search", "text/plain", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, `{"error":"Not found"}`, string(body))
}

func TestRequestID(t *testing.T) {
	ts := setupTestServer(t)

	resp, _ := get(t, ts.URL+"/api/health")
	_, err := uuid.Parse(resp.Header.Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestAllowOriginOption(t *testing.T) {
	srv := NewHTTPServer(newEngine(), HTTPOptions{AllowOrigin: "https://example.com"})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestListenAndShutdown(t *testing.T) {
	srv := NewHTTPServer(newEngine(), HTTPOptions{Addr: "127.0.0.1", Port: 0})
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	_, body := get(t, srv.URL()+"/api/health")
	assert.Equal(t, `{"status":"ok","assets":89}`, body)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeBeforeListen(t *testing.T) {
	srv := NewHTTPServer(newEngine(), HTTPOptions{})
	assert.Error(t, srv.Serve(context.Background()))
}
