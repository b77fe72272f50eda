package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerohexer/cspnet/internal/analytics"
	"github.com/zerohexer/cspnet/internal/config"
	"github.com/zerohexer/cspnet/internal/content"
	"github.com/zerohexer/cspnet/internal/handlers"
	"github.com/zerohexer/cspnet/internal/pubsub"
	"github.com/zerohexer/cspnet/internal/rendering"
	"github.com/zerohexer/cspnet/internal/server"
	"github.com/zerohexer/cspnet/internal/site"
	"github.com/zerohexer/cspnet/internal/style"
)

// setupIntegrationTest starts a full server behind httptest and returns a
// client that keeps cookies between requests.
func setupIntegrationTest(t *testing.T) (*httptest.Server, *http.Client, *site.Sessions) {
	t.Helper()

	bus := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bus.Close() })
	counter := analytics.NewCounter()
	require.NoError(t, counter.Start(t.Context(), bus))

	sessions := site.NewSessions(func(id string) *site.App {
		return site.NewApp(id, content.Default(), bus, nil)
	})

	s := server.New(server.Dependencies{
		Config: &config.Config{
			SessionSecret: "integration-secret",
			NavRateLimit:  60,
		},
		Sessions: sessions,
		Sheet:    style.Default(),
		Counter:  counter,
		Renderer: rendering.NewUniversalRenderer(),
	})
	s.RegisterRoutes()

	ts := httptest.NewServer(s.E)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return ts, client, sessions
}

func get(t *testing.T, client *http.Client, target string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(target)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func htmxPost(t *testing.T, client *http.Client, target string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, target, nil)
	require.NoError(t, err)
	req.Header.Set("HX-Request", "true")
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestSiteNavigation_Integration(t *testing.T) {
	ts, client, sessions := setupIntegrationTest(t)

	resp, body := get(t, client, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="page-home"`)
	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	require.Len(t, client.Jar.Cookies(u), 1, "first visit should issue the session cookie")

	resp, body = htmxPost(t, client, ts.URL+"/nav/credits")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, `aria-current="page">Credits</a>`)

	resp, body = htmxPost(t, client, ts.URL+"/nav/unknown")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `aria-current="page">Credits</a>`, "unknown routes keep the current page")

	_, body = get(t, client, ts.URL+"/")
	assert.Contains(t, body, `aria-current="page">Home</a>`)

	assert.Equal(t, 1, sessions.Len(), "all requests shared one session")
}

func TestPlainFormNavigation_Integration(t *testing.T) {
	ts, client, _ := setupIntegrationTest(t)

	resp, err := client.Post(ts.URL+"/nav/credits", "application/x-www-form-urlencoded", strings.NewReader(""))
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/credits", resp.Header.Get("Location"))

	resp, body := get(t, client, ts.URL+resp.Header.Get("Location"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `aria-current="page">Credits</a>`)

	// One form submission plus its redirect is a single visit.
	var stats handlers.StatsResponse
	assert.Eventually(t, func() bool {
		_, body := get(t, client, ts.URL+"/api/stats")
		return json.Unmarshal([]byte(body), &stats) == nil && stats.Visits["credits"] == 1
	}, time.Second, 20*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	_, body = get(t, client, ts.URL+"/api/stats")
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, 1, stats.Visits["credits"])
	assert.Equal(t, 1, stats.Sessions)
}

func TestStaticAssets_Integration(t *testing.T) {
	ts, client, _ := setupIntegrationTest(t)

	resp, css := get(t, client, ts.URL+handlers.StylesheetPath)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, css, ".nav-item")
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)

	req, err := http.NewRequest(http.MethodGet, ts.URL+handlers.StylesheetPath, nil)
	require.NoError(t, err)
	req.Header.Set("If-None-Match", etag)
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	resp, favicon := get(t, client, ts.URL+"/static/favicon.svg")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, favicon, "<svg")

	resp, _ = get(t, client, ts.URL+"/static/missing.png")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStats_Integration(t *testing.T) {
	ts, client, _ := setupIntegrationTest(t)

	htmxPost(t, client, ts.URL+"/nav/credits")
	htmxPost(t, client, ts.URL+"/nav/credits")

	assert.Eventually(t, func() bool {
		_, body := get(t, client, ts.URL+"/api/stats")
		var stats handlers.StatsResponse
		if err := json.Unmarshal([]byte(body), &stats); err != nil {
			return false
		}
		return stats.Visits["credits"] == 2 && stats.Sessions == 1
	}, time.Second, 20*time.Millisecond)

	resp, body := get(t, client, ts.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)
}
