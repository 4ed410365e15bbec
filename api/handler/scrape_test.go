package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sowtrack/seedscrape/cache"
	"github.com/sowtrack/seedscrape/config"
	"github.com/sowtrack/seedscrape/models"
)

type stubPipeline struct {
	out   *models.ScrapeOutcome
	calls int
}

func (p *stubPipeline) Run(ctx context.Context, req models.ScrapeRequest) *models.ScrapeOutcome {
	p.calls++
	return p.out
}

func testRouter(p Pipeline, cfg *config.Config, cc *cache.Cache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/scrape", Scrape(p, cfg, cc))
	return r
}

func testCfg() *config.Config {
	cfg := &config.Config{}
	cfg.Fetch.AllowedDomains = []string{"johnnyseeds.com", "selectseeds.com"}
	return cfg
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/scrape", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestScrape_OK(t *testing.T) {
	p := &stubPipeline{out: &models.ScrapeOutcome{
		PlantName:    "Bush Beans",
		VarietyName:  "Provider",
		ScrapeStatus: models.StatusSuccess,
	}}
	r := testRouter(p, testCfg(), nil)

	w := post(r, `{"url":"https://www.johnnyseeds.com/vegetables/beans/bush-beans/provider-bean-seed-10.html"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var out models.ScrapeOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Bush Beans", out.PlantName)
	assert.Equal(t, models.StatusSuccess, out.ScrapeStatus)
	assert.Equal(t, 1, p.calls)
}

func TestScrape_InvalidBody(t *testing.T) {
	p := &stubPipeline{}
	r := testRouter(p, testCfg(), nil)

	w := post(r, `{"url":"not-a-url"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, p.calls)
}

func TestScrape_MissingURL(t *testing.T) {
	r := testRouter(&stubPipeline{}, testCfg(), nil)
	w := post(r, `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScrape_DisallowedHost(t *testing.T) {
	p := &stubPipeline{}
	r := testRouter(p, testCfg(), nil)

	w := post(r, `{"url":"https://evil.example.com/page"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var out models.ScrapeOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotNil(t, out.Error)
	assert.Equal(t, models.ErrCodeDisallowed, out.Error.Code)
	assert.Zero(t, p.calls)
}

func TestScrape_NonWebSchemeRejected(t *testing.T) {
	p := &stubPipeline{}
	r := testRouter(p, testCfg(), nil)

	// An allow-listed host does not rescue an unfetchable scheme.
	w := post(r, `{"url":"ftp://www.johnnyseeds.com/x"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var out models.ScrapeOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotNil(t, out.Error)
	assert.Equal(t, models.ErrCodeInvalidInput, out.Error.Code)
	assert.Zero(t, p.calls)
}

func TestScrape_SubdomainOfAllowedRootIsAllowed(t *testing.T) {
	p := &stubPipeline{out: &models.ScrapeOutcome{ScrapeStatus: models.StatusPartial}}
	r := testRouter(p, testCfg(), nil)

	w := post(r, `{"url":"https://shop.selectseeds.com/products/sweet-pea-cupani"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, p.calls)
}

func TestScrape_CacheHitSkipsPipeline(t *testing.T) {
	p := &stubPipeline{out: &models.ScrapeOutcome{ScrapeStatus: models.StatusSuccess}}
	cc := cache.New(10)
	r := testRouter(p, testCfg(), cc)

	body := `{"url":"https://www.johnnyseeds.com/x/provider-bean-seed-10.html","maxAge":60000}`

	w := post(r, body)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, p.calls)

	var first models.ScrapeOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, "miss", first.CacheStatus)

	w = post(r, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, p.calls, "second request must come from cache")

	var second models.ScrapeOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, "hit", second.CacheStatus)
}

func TestHostAllowed(t *testing.T) {
	domains := []string{"johnnyseeds.com"}
	assert.True(t, hostAllowed("https://www.johnnyseeds.com/x", domains))
	assert.True(t, hostAllowed("https://johnnyseeds.com/x", domains))
	assert.False(t, hostAllowed("https://johnnyseeds.com.evil.com/x", domains))
	assert.False(t, hostAllowed("https://notjohnnyseeds.com/x", domains))
	assert.True(t, hostAllowed("https://anything.example/x", nil))
}

func TestWebScheme(t *testing.T) {
	assert.True(t, webScheme("https://www.johnnyseeds.com/x"))
	assert.True(t, webScheme("http://www.johnnyseeds.com/x"))
	assert.False(t, webScheme("ftp://www.johnnyseeds.com/x"))
	assert.False(t, webScheme("file:///etc/passwd"))
}
