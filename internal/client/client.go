// Package client talks to the beverage catalog backend over REST.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"bevctl/internal/catalog"
	"bevctl/internal/config"
	"bevctl/pkg/logging"
)

const subsystem = "Client"

// CatalogAPI is the set of backend operations the catalog views need.
type CatalogAPI interface {
	List(ctx context.Context) ([]*catalog.Item, error)
	Create(ctx context.Context, item *catalog.Item) error
	Update(ctx context.Context, id string, item *catalog.Item) Result
	Delete(ctx context.Context, id string) Result
}

// Client is the HTTP implementation of CatalogAPI.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	catalogPath    string
	managementPath string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the backend described by cfg. A zero timeout
// leaves requests unbounded.
func New(cfg config.APIConfig, opts ...Option) *Client {
	c := &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		catalogPath:    orDefault(cfg.CatalogPath, config.DefaultCatalogPath),
		managementPath: orDefault(cfg.ManagementPath, config.DefaultManagementPath),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// BaseURL returns the backend root the client was configured with.
func (c *Client) BaseURL() string { return c.baseURL }

// List fetches the whole catalog. Transport errors and non-2xx statuses are
// returned as *catalog.LoadFailure. A body that is not a JSON array is an
// empty catalog.
func (c *Client) List(ctx context.Context) ([]*catalog.Item, error) {
	resp, err := c.do(ctx, http.MethodGet, c.catalogPath, nil)
	if err != nil {
		logging.Error(subsystem, err, "GET %s failed", c.catalogPath)
		return nil, &catalog.LoadFailure{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		logging.Warn(subsystem, "GET %s returned status %d", c.catalogPath, resp.StatusCode)
		return nil, &catalog.LoadFailure{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &catalog.LoadFailure{Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	items, err := catalog.DecodeCollection(body)
	if err != nil {
		return nil, &catalog.LoadFailure{Err: err}
	}
	logging.Debug(subsystem, "GET %s returned %d beverages", c.catalogPath, len(items))
	return items, nil
}

// Get looks an item up by id in the full catalog; the backend has no
// single-item read endpoint.
func (c *Client) Get(ctx context.Context, id string) (*catalog.Item, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	it, ok := catalog.FindByID(items, id)
	if !ok {
		return nil, fmt.Errorf("beverage %q not found", id)
	}
	return it, nil
}

// Create posts a new beverage. Only 200 and 201 count as success, and their
// body must be JSON; anything else is a *catalog.AddFailure.
func (c *Client) Create(ctx context.Context, item *catalog.Item) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return &catalog.AddFailure{Err: fmt.Errorf("failed to encode beverage: %w", err)}
	}

	resp, err := c.do(ctx, http.MethodPost, c.managementPath, payload)
	if err != nil {
		logging.Error(subsystem, err, "POST %s failed", c.managementPath)
		return &catalog.AddFailure{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		io.Copy(io.Discard, resp.Body)
		logging.Warn(subsystem, "POST %s returned status %d", c.managementPath, resp.StatusCode)
		return &catalog.AddFailure{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &catalog.AddFailure{StatusCode: resp.StatusCode, Err: err}
	}
	if _, err := catalog.DecodeValue(body); err != nil {
		return &catalog.AddFailure{StatusCode: resp.StatusCode, Err: fmt.Errorf("invalid response body: %w", err)}
	}
	logging.Info(subsystem, "Created beverage %q", nameOf(item))
	return nil
}

// Update replaces the beverage with the given id.
func (c *Client) Update(ctx context.Context, id string, item *catalog.Item) Result {
	path := c.itemPath(id)
	payload, err := json.Marshal(item)
	if err != nil {
		return Result{Method: http.MethodPut, Path: path, Err: err}
	}
	return c.exec(ctx, http.MethodPut, path, payload)
}

// Delete removes the beverage with the given id.
func (c *Client) Delete(ctx context.Context, id string) Result {
	return c.exec(ctx, http.MethodDelete, c.itemPath(id), nil)
}

func (c *Client) exec(ctx context.Context, method, path string, payload []byte) Result {
	res := Result{Method: method, Path: path}
	resp, err := c.do(ctx, method, path, payload)
	if err != nil {
		logging.Error(subsystem, err, "%s %s failed", method, path)
		res.Err = err
		return res
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	res.StatusCode = resp.StatusCode
	if res.OK() {
		logging.Info(subsystem, "%s %s returned status %d", method, path, resp.StatusCode)
	} else {
		logging.Warn(subsystem, "%s %s returned status %d", method, path, resp.StatusCode)
	}
	return res
}

func (c *Client) itemPath(id string) string {
	return strings.TrimRight(c.managementPath, "/") + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

func nameOf(item *catalog.Item) string {
	v, ok := item.Get("name")
	return catalog.JSText(v, ok)
}
