// Package backend is the request layer for the hosted REST data store. One
// call in, one parsed response out, or a passthrough error: there is no
// retrying, pooling beyond the default http.Client, or caching here.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// StatusError is any non-success response from the data store. The raw body
// is kept so callers can surface the backend's own diagnostic verbatim.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: status %d: %s", e.Code, e.Body)
}

// Filter is a single-field exact-match predicate, the only filtering the app
// needs (lookup by username, lookup by foreign key).
type Filter struct {
	Field string
	Value string
}

// Eq builds an exact-match filter on field.
func Eq(field, value string) *Filter {
	return &Filter{Field: field, Value: value}
}

// Client issues authenticated calls against the store's REST resources.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     *zap.SugaredLogger
}

func New(baseURL, apiKey string, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   http.DefaultClient,
		log:     log,
	}
}

func (c *Client) resourceURL(resource string, filter *Filter) string {
	u := c.baseURL + "/rest/v1/" + resource
	if filter != nil {
		q := url.Values{}
		q.Set(filter.Field, "eq."+filter.Value)
		u += "?" + q.Encode()
	}
	return u
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")
}

// Find fetches all rows of resource matching filter (all rows when filter is
// nil) and decodes the JSON array into out. An empty array means zero
// matches, not an error.
func (c *Client) Find(ctx context.Context, resource string, filter *Filter, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resourceURL(resource, filter), nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(resource, resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Insert posts record to resource. The store returns the created
// representation (Prefer: return=representation); when out is non-nil it is
// decoded into it.
func (c *Client) Insert(ctx context.Context, resource string, record, out any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resourceURL(resource, nil), bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.statusError(resource, resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) statusError(resource string, resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	c.log.Errorw("backend request failed", "resource", resource, "status", resp.StatusCode)
	return &StatusError{Code: resp.StatusCode, Body: string(raw)}
}
