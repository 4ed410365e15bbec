package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// scrapeRequest mirrors the seedscrape API request model.
type scrapeRequest struct {
	URL             string   `json:"url"`
	KnownPlantTypes []string `json:"knownPlantTypes,omitempty"`
	SkipAiFallback  bool     `json:"skipAiFallback,omitempty"`
}

// scrapeOutcome mirrors the seedscrape API response model.
type scrapeOutcome struct {
	PlantName    string `json:"plant_name"`
	VarietyName  string `json:"variety_name"`
	VendorName   string `json:"vendor_name"`
	ScrapeStatus string `json:"scrape_status"`
	Error        *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func main() {
	apiURL := os.Getenv("SEEDSCRAPE_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080"
	}
	apiKey := os.Getenv("SEEDSCRAPE_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "SEEDSCRAPE_API_KEY is required")
		os.Exit(1)
	}

	s := server.NewMCPServer(
		"seedscrape",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	scrapeTool := mcp.NewTool("scrape_seed_listing",
		mcp.WithDescription("Scrape a seed vendor product page and return the plant identity plus normalized growing specs (sun, spacing, germination, harvest days). The host must be an allow-listed seed vendor."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The vendor product page URL to scrape"),
		),
		mcp.WithArray("known_plant_types",
			mcp.Description("Plant-type names already in your catalog, used to disambiguate plant vs. variety"),
		),
		mcp.WithBoolean("skip_ai_fallback",
			mcp.Description("Suppress the web-search fallback stage even when extraction is incomplete"),
		),
	)
	s.AddTool(scrapeTool, handleScrapeListing(apiURL, apiKey))

	healthTool := mcp.NewTool("service_health",
		mcp.WithDescription("Check the seedscrape service liveness: uptime and the number of registered vendor parsers."),
	)
	s.AddTool(healthTool, handleHealth(apiURL))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleScrapeListing(apiURL, apiKey string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 60 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}

		reqBody := scrapeRequest{
			URL:            url,
			SkipAiFallback: request.GetBool("skip_ai_fallback", false),
		}
		if raw, ok := request.GetArguments()["known_plant_types"].([]interface{}); ok {
			for _, v := range raw {
				if s, ok := v.(string); ok {
					reqBody.KnownPlantTypes = append(reqBody.KnownPlantTypes, s)
				}
			}
		}

		body, err := json.Marshal(reqBody)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal request: %v", err)), nil
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+"/api/v1/scrape", bytes.NewReader(body))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create request: %v", err)), nil
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("X-API-Key", apiKey)

		resp, err := client.Do(httpReq)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("API request failed: %v", err)), nil
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read response: %v", err)), nil
		}

		var outcome scrapeOutcome
		if err := json.Unmarshal(respBody, &outcome); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}
		if outcome.Error != nil {
			return mcp.NewToolResultError(fmt.Sprintf("scrape failed: %s: %s", outcome.Error.Code, outcome.Error.Message)), nil
		}

		// Return the full outcome JSON so the model sees every field.
		return mcp.NewToolResultText(string(respBody)), nil
	}
}

func handleHealth(apiURL string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 10 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+"/api/v1/health", nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create request: %v", err)), nil
		}

		resp, err := client.Do(httpReq)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("health request failed: %v", err)), nil
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read response: %v", err)), nil
		}
		return mcp.NewToolResultText(string(respBody)), nil
	}
}
