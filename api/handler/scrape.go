package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sowtrack/seedscrape/cache"
	"github.com/sowtrack/seedscrape/config"
	"github.com/sowtrack/seedscrape/models"
	"github.com/sowtrack/seedscrape/webhook"
)

// Pipeline runs one scrape request end to end.
type Pipeline interface {
	Run(ctx context.Context, req models.ScrapeRequest) *models.ScrapeOutcome
}

// Scrape returns a handler for POST /api/v1/scrape.
//
// Flow:
//  1. Parse & validate request; reject hosts outside the vendor allow-list.
//  2. Cache lookup when the caller sent maxAge.
//  3. Run the pipeline; it never errors, only degrades.
//  4. Cache store, async webhook to the catalog service, return 200.
func Scrape(p Pipeline, cfg *config.Config, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ScrapeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ScrapeOutcome{
				ScrapeStatus: models.StatusFailed,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}

		// The binding's url rule accepts any scheme; only http(s) is
		// fetchable.
		if !webScheme(req.URL) {
			c.JSON(http.StatusBadRequest, models.ScrapeOutcome{
				ScrapeStatus: models.StatusFailed,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: "url scheme must be http or https",
				},
			})
			return
		}

		if !hostAllowed(req.URL, cfg.Fetch.AllowedDomains) {
			c.JSON(http.StatusUnprocessableEntity, models.ScrapeOutcome{
				ScrapeStatus: models.StatusFailed,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeDisallowed,
					Message: "host is not an allow-listed seed vendor",
				},
			})
			return
		}

		cacheKey := cache.Key(req.URL)
		if cc != nil && req.MaxAge > 0 {
			if cached, hit := cc.Get(cacheKey, req.MaxAge); hit {
				cached.CacheStatus = "hit"
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		out := p.Run(c.Request.Context(), req)

		if cc != nil && req.MaxAge > 0 {
			cc.Set(cacheKey, out)
			out.CacheStatus = "miss"
		}

		if cfg.Webhook.URL != "" && out.ScrapeStatus != models.StatusFailed {
			webhook.DeliverAsync(cfg.Webhook.URL, cfg.Webhook.Secret, &webhook.Event{
				Type:      webhook.EventScrapeCompleted,
				URL:       req.URL,
				Timestamp: time.Now().Unix(),
				Data:      out,
			})
		}

		c.JSON(http.StatusOK, out)
	}
}

// webScheme reports whether the URL uses a scheme the fetcher can follow.
func webScheme(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// hostAllowed checks the request host against the vendor root-domain
// allow-list. An empty list allows everything.
func hostAllowed(rawURL string, domains []string) bool {
	if len(domains) == 0 {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
