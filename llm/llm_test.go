package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sowtrack/seedscrape/config"
	"github.com/sowtrack/seedscrape/models"
)

func aiConfig(extractURL, searchURL string) config.AIConfig {
	return config.AIConfig{
		OpenAIKey:     "test-key",
		OpenAIModel:   "gpt-4o-mini",
		OpenAIBaseURL: extractURL,
		OpenAITimeout: 2 * time.Second,
		SearchKey:     "search-key",
		SearchBaseURL: searchURL,
		SearchTimeout: 2 * time.Second,
		Region:        "northeast",
	}
}

func TestExtractListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"message": map[string]string{
					"content": `{"varietyName":"Provider","daysToMaturity":"50 days","sowingDepth":"1 inch","sunRequirements":"Full Sun"}`,
				},
			}},
		})
	}))
	defer srv.Close()

	c := NewClient(nil, aiConfig(srv.URL, ""))
	listing, err := c.ExtractListing(context.Background(), "Provider bush bean page text")
	if err != nil {
		t.Fatalf("ExtractListing: %v", err)
	}
	if listing.VarietyName != "Provider" || listing.DaysToMaturity != "50 days" {
		t.Errorf("listing = %+v", listing)
	}
}

func TestExtractListing_InvalidJSONFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"message": map[string]string{"content": "Sorry, I can't help with that."},
			}},
		})
	}))
	defer srv.Close()

	c := NewClient(nil, aiConfig(srv.URL, ""))
	if _, err := c.ExtractListing(context.Background(), "text"); err == nil {
		t.Fatal("expected error for non-JSON reply")
	}
}

func TestExtractListing_NoCredential(t *testing.T) {
	c := NewClient(nil, config.AIConfig{OpenAITimeout: time.Second})
	_, err := c.ExtractListing(context.Background(), "text")
	se, ok := err.(*models.ScrapeError)
	if !ok || se.Code != models.ErrCodeLLMAuthFailure {
		t.Fatalf("err = %v, want LLM auth failure", err)
	}
}

func TestExtractListing_AuthErrorClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	c := NewClient(nil, aiConfig(srv.URL, ""))
	_, err := c.ExtractListing(context.Background(), "text")
	se, ok := err.(*models.ScrapeError)
	if !ok || se.Code != models.ErrCodeLLMAuthFailure {
		t.Fatalf("err = %v, want auth failure", err)
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if !req.IncludeAnswer {
			t.Error("include_answer not set")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"answer": "Cupani sweet peas need full sun and germinate in 10-21 days.",
			"results": []map[string]string{
				{"title": "Growing guide", "content": "Space plants 6 inches apart. 77 days to maturity."},
			},
		})
	}))
	defer srv.Close()

	c := NewSearchClient(nil, aiConfig("", srv.URL))
	answer, combined, err := c.Search(context.Background(), BuildQuery("Cupani", "sweet pea"))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if answer == "" || combined == "" {
		t.Fatalf("empty search text: answer=%q combined=%q", answer, combined)
	}

	ext := ParseProse(answer, combined)
	if ext.Sun.Value != "Full Sun" {
		t.Errorf("sun = %q", ext.Sun.Value)
	}
	if ext.DaysToGermination.Value != "10-21 days" {
		t.Errorf("germination = %q", ext.DaysToGermination.Value)
	}
	if ext.PlantSpacing.Value != "6 inches apart" {
		t.Errorf("spacing = %q", ext.PlantSpacing.Value)
	}
	if ext.HarvestDays.Value != "77 days" {
		t.Errorf("harvest = %q", ext.HarvestDays.Value)
	}
}

func TestSearch_NoCredentialDegrades(t *testing.T) {
	c := NewSearchClient(nil, config.AIConfig{SearchTimeout: time.Second})
	_, _, err := c.Search(context.Background(), "tomato growing")
	se, ok := err.(*models.ScrapeError)
	if !ok || se.Code != models.ErrCodeSearchFailure {
		t.Fatalf("err = %v, want search failure", err)
	}
}

func TestParseProse_AnswerWinsOverSnippets(t *testing.T) {
	ext := ParseProse(
		"Needs full sun, matures in 55 days.",
		"part shade tolerant. 90 days to harvest.",
	)
	if ext.Sun.Value != "Full Sun" {
		t.Errorf("sun = %q", ext.Sun.Value)
	}
	if ext.HarvestDays.Value != "55 days" {
		t.Errorf("harvest = %q", ext.HarvestDays.Value)
	}
}

func TestParseProse_IndependentFields(t *testing.T) {
	ext := ParseProse("", "Germinates in 7-14 days.")
	if ext.DaysToGermination.Value != "7-14 days" {
		t.Errorf("germination = %q", ext.DaysToGermination.Value)
	}
	if !ext.Sun.Empty() || !ext.HarvestDays.Empty() {
		t.Errorf("unexpected fields: %+v", ext)
	}
}

func TestScheduleBackfill(t *testing.T) {
	var ext models.Extraction
	ext.HarvestDays.Set("50 days")

	ScheduleBackfill(&ext, "northeast", "bean")

	if ext.HarvestDays.Value != "50 days" {
		t.Errorf("existing harvest overwritten: %q", ext.HarvestDays.Value)
	}
	if ext.Sun.Empty() || ext.PlantSpacing.Empty() || ext.DaysToGermination.Empty() {
		t.Errorf("missing backfill: %+v", ext)
	}

	// Unknown region falls back to the northeast table.
	var ext2 models.Extraction
	ScheduleBackfill(&ext2, "mars", "tomato")
	if ext2.Sun.Empty() {
		t.Error("unknown region did not fall back")
	}
}

func TestBuildQuery(t *testing.T) {
	if q := BuildQuery("Cupani", "sweet pea"); q == "" {
		t.Fatal("empty query")
	}
	if q := BuildQuery("", ""); q != "" {
		t.Errorf("query for empty identity = %q", q)
	}
}
