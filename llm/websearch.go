package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/sowtrack/seedscrape/config"
	"github.com/sowtrack/seedscrape/models"
	"github.com/sowtrack/seedscrape/sanitize"
)

// SearchClient calls the web-search API used as the last-resort source for
// canonical growing fields.
type SearchClient struct {
	httpClient *http.Client
	cfg        config.AIConfig
}

// NewSearchClient builds a search client. Pass nil to use a default
// http.Client bounded by the configured search timeout.
func NewSearchClient(httpClient *http.Client, cfg config.AIConfig) *SearchClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.SearchTimeout}
	}
	return &SearchClient{httpClient: httpClient, cfg: cfg}
}

// Enabled reports whether a search credential is configured.
func (c *SearchClient) Enabled() bool { return c.cfg.SearchKey != "" }

// searchRequest is the search API request body.
type searchRequest struct {
	Query         string `json:"query"`
	IncludeAnswer bool   `json:"include_answer"`
	MaxResults    int    `json:"max_results"`
}

// searchResponse is the subset of the search API reply we consume.
type searchResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// BuildQuery forms the natural-language growing-spec query for a plant.
func BuildQuery(variety, category string) string {
	subject := strings.TrimSpace(strings.TrimSpace(variety) + " " + strings.TrimSpace(category))
	if subject == "" {
		return ""
	}
	return subject + " seeds sun requirements plant spacing days to germination days to maturity"
}

// Search runs the query and returns the synthesized answer plus the combined
// snippet text. Any failure is returned as an error the caller degrades on.
func (c *SearchClient) Search(ctx context.Context, query string) (answer, combined string, err error) {
	if !c.Enabled() {
		return "", "", models.NewScrapeError(models.ErrCodeSearchFailure, "no search credential configured", nil)
	}
	if query == "" {
		return "", "", models.NewScrapeError(models.ErrCodeSearchFailure, "empty search query", nil)
	}

	bodyBytes, err := json.Marshal(searchRequest{Query: query, IncludeAnswer: true, MaxResults: 5})
	if err != nil {
		return "", "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.SearchBaseURL, "/") + "/search"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.SearchKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", models.NewScrapeError(models.ErrCodeSearchFailure, "search request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", models.NewScrapeError(models.ErrCodeSearchFailure, "failed to read search response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", models.NewScrapeError(models.ErrCodeSearchFailure,
			fmt.Sprintf("search API returned %d", resp.StatusCode), nil)
	}

	var sr searchResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return "", "", models.NewScrapeError(models.ErrCodeSearchFailure, "failed to parse search response", err)
	}

	var b strings.Builder
	b.WriteString(sr.Answer)
	for _, r := range sr.Results {
		b.WriteString("\n")
		b.WriteString(r.Content)
	}
	return sanitize.Clean(sr.Answer), sanitize.Clean(b.String()), nil
}

var (
	reProseSun = regexp.MustCompile(`(?i)\b(full sun to part(?:ial)? shade|full sun|part(?:ial)? shade|part(?:ial)? sun|full shade|sun to shade)\b`)

	reProseSpacing = regexp.MustCompile(`(?i)(?:spac\w+|plant(?:ed)?|thin(?:ned)?)\W(?:\w+\W){0,6}?(\d+(?:\.\d+)?(?:\s*(?:-|–|to)\s*\d+(?:\.\d+)?)?\s*(?:inches|inch|in\.?|feet|foot|ft\.?|cm)(?:\s+apart)?)`)

	reProseGermination = regexp.MustCompile(`(?i)germinat\w*\W(?:\w+\W){0,6}?(\d+(?:\s*(?:-|–|to)\s*\d+)?\s*days)`)

	reProseMaturity = regexp.MustCompile(`(?i)(?:\b(\d+(?:\s*(?:-|–|to)\s*\d+)?)\s*days\s*to\s*(?:maturity|harvest)|(?:maturity|matures?|harvest(?:ing)?|ready)\W(?:\w+\W){0,6}?(\d+(?:\s*(?:-|–|to)\s*\d+)?\s*days))`)
)

// ParseProse regex-parses the canonical fields out of search prose, trying
// the synthesized answer first and the combined snippet text second. Each
// field is parsed independently.
func ParseProse(answer, combined string) models.Extraction {
	var ext models.Extraction
	pick := func(re *regexp.Regexp, group int) string {
		for _, text := range []string{answer, combined} {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			val := m[0]
			if group > 0 {
				for _, g := range m[1:] {
					if g != "" {
						val = g
						break
					}
				}
			}
			if v := sanitize.CleanSpec(val, 60); v != "" {
				return v
			}
		}
		return ""
	}

	if sun := pick(reProseSun, 0); sun != "" {
		ext.Sun.Set(titleWords(sun))
	}
	ext.PlantSpacing.Set(pick(reProseSpacing, 1))
	ext.DaysToGermination.Set(pick(reProseGermination, 1))
	if m := pick(reProseMaturity, 1); m != "" {
		if !strings.Contains(strings.ToLower(m), "day") {
			m += " days"
		}
		ext.HarvestDays.Set(m)
	}
	return ext
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if w == "to" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
