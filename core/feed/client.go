package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"catalog-manager/core/reconcile"
	"catalog-manager/core/utils"
)

// maxErrorBody caps how much of a failed response is kept in an APIError.
const maxErrorBody = 512

// APIError reports a non-2xx response from the backend.
type APIError struct {
	Category   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("feed request for category %q failed with status %d: %s", e.Category, e.StatusCode, e.Body)
}

// Client fetches source records from the backend product API.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a feed client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

// FetchRecords returns every record the backend lists for category.
func (c *Client) FetchRecords(ctx context.Context, category string) ([]reconcile.SourceRecord, error) {
	endpoint := c.baseURL + "/products?category=" + url.QueryEscape(category)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category %s: %w", category, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{Category: category, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	raw, err := decodeList(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode category %s: %w", category, err)
	}

	records := make([]reconcile.SourceRecord, 0, len(raw))
	for _, entry := range raw {
		records = append(records, toRecord(entry))
	}
	return records, nil
}

// decodeList accepts either a bare array or an object wrapping it under "data".
// Only an explicit empty array or a null "data" yield an empty list; any other
// shape is an error so a broken response never reads as an empty category.
func decodeList(r io.Reader) ([]map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}

	if wrapped, ok := payload.(map[string]any); ok {
		data, present := wrapped["data"]
		if !present {
			return nil, fmt.Errorf("unexpected payload shape: object without data")
		}
		if data == nil {
			return nil, nil
		}
		payload = data
	}

	items, ok := payload.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected payload shape: %T", payload)
	}

	list := make([]map[string]any, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected record at index %d: %T", i, item)
		}
		list = append(list, obj)
	}
	return list, nil
}

func toRecord(m map[string]any) reconcile.SourceRecord {
	return reconcile.SourceRecord{
		Code:           utils.ToString(m["code"]),
		Name:           utils.ToString(m["name"]),
		Description:    utils.ToString(m["description"]),
		OriginalPrice:  utils.ToString(m["original_price"]),
		SalePrice:      utils.ToString(m["sale_price"]),
		ImageURL:       utils.ToString(m["image_url"]),
		SecondImageURL: utils.ToString(m["second_image_url"]),
		URL:            utils.ToString(m["url"]),
		TotalStock:     utils.ToInt(m["total_stock"]),
		Summary:        utils.ToString(m["summary"]),
	}
}
