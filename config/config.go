package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Fetch     FetchConfig
	Pipeline  PipelineConfig
	AI        AIConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Webhook   WebhookConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetchConfig controls page acquisition.
type FetchConfig struct {
	// Timeout bounds a single page GET (navigation + body read).
	Timeout time.Duration // default: 15s

	// ProbeTimeout bounds the image-existence HEAD probe.
	ProbeTimeout time.Duration // default: 5s

	// Proxy is an optional outbound proxy URL.
	Proxy string

	// AllowedDomains is the vendor root-domain allow-list. A request URL is
	// accepted when its host equals or is a subdomain of any entry.
	AllowedDomains []string
}

// PipelineConfig controls the extraction pipeline.
type PipelineConfig struct {
	// GlobalTimeout is the race deadline for the whole pipeline. When it
	// trips, one best-effort search call is made before giving up.
	GlobalTimeout time.Duration // default: 25s
}

// AIConfig controls the optional AI stages. Missing credentials disable the
// corresponding stage; they never cause an error.
type AIConfig struct {
	// OpenAIKey enables the structured-extraction first pass.
	OpenAIKey     string
	OpenAIModel   string        // default: "gpt-4o-mini"
	OpenAIBaseURL string        // default: "https://api.openai.com/v1"
	OpenAITimeout time.Duration // default: 20s

	// SearchKey enables the web-search fallback stage.
	SearchKey     string
	SearchBaseURL string        // default: "https://api.tavily.com"
	SearchTimeout time.Duration // default: 12s

	// Region selects the planting-schedule table used to backfill fields the
	// structured extractor leaves empty.
	Region string // default: "northeast"
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	Enabled bool // default: true
	APIKeys []string
}

// RateLimitConfig controls per-key rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 // default: 5
	Burst             int     // default: 10
}

// CacheConfig controls the scrape outcome cache.
type CacheConfig struct {
	MaxEntries int // default: 1000
}

// WebhookConfig controls delivery of finalized outcomes to the catalog
// persistence service.
type WebhookConfig struct {
	URL    string // empty disables delivery
	Secret string // HMAC-SHA256 signing secret
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// defaultAllowedDomains lists the seed-vendor root domains the scraper will
// touch out of the box.
var defaultAllowedDomains = []string{
	"johnnyseeds.com",
	"rareseeds.com",
	"burpee.com",
	"edenbrothers.com",
	"territorialseed.com",
	"botanicalinterests.com",
	"parkseed.com",
	"waysidegardens.com",
	"jacksonandperkins.com",
	"swallowtailgardenseeds.com",
	"selectseeds.com",
	"highmowingseeds.com",
	"fedcoseeds.com",
	"southernexposure.com",
	"seedsavers.org",
	"kitchengardenseeds.com",
	"reneesgarden.com",
	"hudsonvalleyseed.com",
	"trueleafmarket.com",
	"outsidepride.com",
	"sowrightseeds.com",
	"marysheirloomseeds.com",
	"superseeds.com",
	"harrisseeds.com",
	"gurneys.com",
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("SEEDSCRAPE_HOST", "0.0.0.0"),
			Port: envIntOr("SEEDSCRAPE_PORT", 8080),
			Mode: envOr("SEEDSCRAPE_MODE", "release"),
		},
		Fetch: FetchConfig{
			Timeout:        envDurationOr("SEEDSCRAPE_FETCH_TIMEOUT", 15*time.Second),
			ProbeTimeout:   envDurationOr("SEEDSCRAPE_PROBE_TIMEOUT", 5*time.Second),
			Proxy:          os.Getenv("SEEDSCRAPE_PROXY"),
			AllowedDomains: envSliceOr("SEEDSCRAPE_ALLOWED_DOMAINS", defaultAllowedDomains),
		},
		Pipeline: PipelineConfig{
			GlobalTimeout: envDurationOr("SEEDSCRAPE_GLOBAL_TIMEOUT", 25*time.Second),
		},
		AI: AIConfig{
			OpenAIKey:     os.Getenv("SEEDSCRAPE_OPENAI_KEY"),
			OpenAIModel:   envOr("SEEDSCRAPE_OPENAI_MODEL", "gpt-4o-mini"),
			OpenAIBaseURL: envOr("SEEDSCRAPE_OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAITimeout: envDurationOr("SEEDSCRAPE_OPENAI_TIMEOUT", 20*time.Second),
			SearchKey:     os.Getenv("SEEDSCRAPE_SEARCH_KEY"),
			SearchBaseURL: envOr("SEEDSCRAPE_SEARCH_BASE_URL", "https://api.tavily.com"),
			SearchTimeout: envDurationOr("SEEDSCRAPE_SEARCH_TIMEOUT", 12*time.Second),
			Region:        envOr("SEEDSCRAPE_REGION", "northeast"),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("SEEDSCRAPE_AUTH_ENABLED", true),
			APIKeys: envSliceOr("SEEDSCRAPE_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("SEEDSCRAPE_RATE_RPS", 5.0),
			Burst:             envIntOr("SEEDSCRAPE_RATE_BURST", 10),
		},
		Cache: CacheConfig{
			MaxEntries: envIntOr("SEEDSCRAPE_CACHE_MAX_ENTRIES", 1000),
		},
		Webhook: WebhookConfig{
			URL:    os.Getenv("SEEDSCRAPE_CATALOG_WEBHOOK_URL"),
			Secret: os.Getenv("SEEDSCRAPE_CATALOG_WEBHOOK_SECRET"),
		},
		Log: LogConfig{
			Level:  envOr("SEEDSCRAPE_LOG_LEVEL", "info"),
			Format: envOr("SEEDSCRAPE_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
