package search

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const serperURL = "https://google.serper.dev/search"

type SerperClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewSerperClient(apiKey string) *SerperClient {
	return &SerperClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *SerperClient) Name() string {
	return "Serper"
}

// Search issues one query and returns at most num organic results in
// upstream relevance order. A non-OK upstream status is treated as no
// results, not an error.
func (c *SerperClient) Search(query string, num int) ([]Result, error) {
	body, err := json.Marshal(serperRequest{Query: query, Num: num})
	if err != nil {
		return nil, fmt.Errorf("serper encode: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, serperURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serper search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("search API returned non-OK status, treating as no results", "status", resp.StatusCode)
		return []Result{}, nil
	}

	var raw serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("serper decode: %w", err)
	}

	organic := raw.Organic
	if len(organic) > num {
		organic = organic[:num]
	}

	results := make([]Result, 0, len(organic))
	for _, item := range organic {
		r := Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		}
		if r.Title == "" {
			r.Title = "No Title"
		}
		if r.Link == "" {
			r.Link = "#"
		}
		if r.Snippet == "" {
			r.Snippet = "No snippet available."
		}
		results = append(results, r)
	}

	return results, nil
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type serperResponse struct {
	Organic []serperOrganic `json:"organic"`
}

type serperOrganic struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
