// Package llm holds the two credential-gated AI stages: structured listing
// extraction against an OpenAI-compatible chat API, and the web-search
// fallback for pages the heuristics could not finish.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sowtrack/seedscrape/config"
	"github.com/sowtrack/seedscrape/models"
)

// Listing is the structured record the extraction model returns for a seed
// product page.
type Listing struct {
	VarietyName     string `json:"varietyName"`
	DaysToMaturity  string `json:"daysToMaturity"`
	SowingDepth     string `json:"sowingDepth"`
	SunRequirements string `json:"sunRequirements"`
}

// Empty reports whether the model found nothing usable.
func (l *Listing) Empty() bool {
	return l.VarietyName == "" && l.DaysToMaturity == "" &&
		l.SowingDepth == "" && l.SunRequirements == ""
}

// Client is a lightweight OpenAI-compatible chat client. It uses net/http
// directly — no third-party SDK needed.
type Client struct {
	httpClient *http.Client
	cfg        config.AIConfig
}

// NewClient builds a client from the AI configuration. Pass nil to use a
// default http.Client bounded by the configured timeout.
func NewClient(httpClient *http.Client, cfg config.AIConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.OpenAITimeout}
	}
	return &Client{httpClient: httpClient, cfg: cfg}
}

// Enabled reports whether an extraction credential is configured.
func (c *Client) Enabled() bool { return c.cfg.OpenAIKey != "" }

// chatRequest is the OpenAI chat completion request body.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse is the minimal chat completion response we need.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// chatErrorResponse captures an API error from the provider.
type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

const extractSystemPrompt = `You are a seed catalog extraction assistant. Extract information about the seed product from the provided page text and return it as JSON with exactly these fields:

{"varietyName": string|null, "daysToMaturity": string|null, "sowingDepth": string|null, "sunRequirements": string|null}

Rules:
- Return ONLY valid JSON, no markdown fences or explanation.
- If a field cannot be found in the text, use null.
- daysToMaturity is the days-to-harvest figure, e.g. "65-75 days".`

// maxPageText bounds how much page text is sent to the model.
const maxPageText = 6000

// ExtractListing sends the page text to the extraction model and parses the
// structured reply. Callers treat any error as a silent fall-through to the
// heuristic stage.
func (c *Client) ExtractListing(ctx context.Context, pageText string) (*Listing, error) {
	if !c.Enabled() {
		return nil, models.NewScrapeError(models.ErrCodeLLMAuthFailure, "no extraction credential configured", nil)
	}
	if len(pageText) > maxPageText {
		pageText = pageText[:maxPageText]
	}

	reqBody := chatRequest{
		Model: c.cfg.OpenAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: extractSystemPrompt},
			{Role: "user", Content: pageText},
		},
		Temperature:    0,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.OpenAIBaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenAIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeLLMFailure, "LLM request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeLLMFailure, "failed to read LLM response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, classifyLLMError(resp.StatusCode, respBody)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, models.NewScrapeError(models.ErrCodeLLMFailure, "failed to parse LLM response", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, models.NewScrapeError(models.ErrCodeLLMFailure, "LLM returned no choices", nil)
	}

	raw := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	var listing Listing
	if err := json.Unmarshal([]byte(raw), &listing); err != nil {
		return nil, models.NewScrapeError(models.ErrCodeLLMFailure, "LLM returned invalid JSON", err)
	}
	if listing.Empty() {
		return nil, models.NewScrapeError(models.ErrCodeLLMFailure, "LLM found no fields", nil)
	}
	return &listing, nil
}

// classifyLLMError maps provider HTTP status codes to error codes.
func classifyLLMError(statusCode int, body []byte) *models.ScrapeError {
	var errResp chatErrorResponse
	msg := "LLM API error"
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		msg = errResp.Error.Message
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return models.NewScrapeError(models.ErrCodeLLMAuthFailure, msg, nil)
	case statusCode == http.StatusTooManyRequests:
		return models.NewScrapeError(models.ErrCodeLLMRateLimited, msg, nil)
	default:
		return models.NewScrapeError(models.ErrCodeLLMFailure, fmt.Sprintf("LLM API returned %d: %s", statusCode, msg), nil)
	}
}
