// Package pocketbase is a thin client for the external PocketBase data
// store. It owns the cached admin token and refreshes it once on
// 401/403; all record collections are reached through it.
package pocketbase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/config"
	apperrors "github.com/shipgate/site-api/pkg/util"
)

// Collection names owned by the external store.
const (
	CollectionInquiries            = "inquiries"
	CollectionScorecardSubmissions = "scorecard_submissions"
	CollectionScorecardInquiries   = "scorecard_inquiries"
)

// ErrNotFound is returned when the store has no record with the given id.
var ErrNotFound = errors.New("pocketbase: record not found")

// Client talks to a PocketBase instance with superuser credentials.
type Client struct {
	baseURL       string
	adminEmail    string
	adminPassword string
	httpClient    *http.Client
	logger        *zap.Logger

	mu    sync.Mutex
	token string
}

// New builds a client. The token is fetched lazily on first use.
func New(cfg config.PocketBaseConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		logger:        logger,
	}
}

// BaseURL returns the configured store address without trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListOptions controls paged listing calls.
type ListOptions struct {
	Page    int
	PerPage int
	Filter  Filter
	Sort    string
}

// ListResponse is the raw paged envelope returned by the store.
type ListResponse struct {
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	TotalItems int             `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
	Items      json.RawMessage `json:"items"`
}

// Authenticate forces a token refresh and reports whether admin
// credentials are accepted by the store.
func (c *Client) Authenticate(ctx context.Context) error {
	_, err := c.adminToken(ctx, true)
	return err
}

// Health checks the store's health endpoint. No auth required.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pocketbase health: HTTP %d", resp.StatusCode)
	}
	return nil
}

// CollectionReachable verifies the collection exists and the token can
// see it.
func (c *Client) CollectionReachable(ctx context.Context, collection string) error {
	return c.do(ctx, http.MethodGet, "/api/collections/"+url.PathEscape(collection), nil, nil, nil)
}

// Create inserts a record into the collection and decodes the created
// record into out when out is non-nil.
func (c *Client) Create(ctx context.Context, collection string, body, out any) error {
	path := "/api/collections/" + url.PathEscape(collection) + "/records"
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// List performs one paged listing call.
func (c *Client) List(ctx context.Context, collection string, opts ListOptions) (*ListResponse, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.PerPage <= 0 {
		opts.PerPage = 20
	}
	if opts.Sort == "" {
		opts.Sort = "-created"
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("perPage", strconv.Itoa(opts.PerPage))
	q.Set("sort", opts.Sort)
	if !opts.Filter.IsZero() {
		q.Set("filter", opts.Filter.String())
	}

	var result ListResponse
	path := "/api/collections/" + url.PathEscape(collection) + "/records"
	if err := c.do(ctx, http.MethodGet, path, q, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single record by id. Returns ErrNotFound when absent.
func (c *Client) Get(ctx context.Context, collection, id string, out any) error {
	path := "/api/collections/" + url.PathEscape(collection) + "/records/" + url.PathEscape(id)
	return c.do(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) adminToken(ctx context.Context, force bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && !force {
		return c.token, nil
	}
	c.token = ""

	if c.adminEmail == "" || c.adminPassword == "" {
		return "", apperrors.NewDownstreamUnavailable(
			"External store credentials missing. Set POCKETBASE_ADMIN_EMAIL and POCKETBASE_ADMIN_PASSWORD.", nil)
	}

	payload, err := json.Marshal(map[string]string{
		"identity": c.adminEmail,
		"password": c.adminPassword,
	})
	if err != nil {
		return "", err
	}

	// PocketBase 0.23+ authenticates superusers through the _superusers
	// auth collection.
	authURL := c.baseURL + "/api/collections/_superusers/auth-with-password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewDownstreamUnavailable(
			fmt.Sprintf("Cannot reach external store at %s.", c.baseURL), err)
	}
	defer resp.Body.Close()

	var decoded struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil && resp.StatusCode == http.StatusOK {
		return "", fmt.Errorf("pocketbase auth: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || decoded.Token == "" {
		c.logger.Error("pocketbase admin auth failed",
			zap.Int("status", resp.StatusCode),
			zap.String("url", authURL))
		return "", apperrors.NewDownstreamUnavailable(
			"External store admin auth failed. Check POCKETBASE_ADMIN_EMAIL and POCKETBASE_ADMIN_PASSWORD.", nil)
	}

	c.token = decoded.Token
	return c.token, nil
}

func (c *Client) clearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// do executes one authenticated request, retrying exactly once with a
// fresh token when the store answers 401/403.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	token, err := c.adminToken(ctx, false)
	if err != nil {
		return err
	}

	status, err := c.attempt(ctx, method, path, query, body, out, token)
	if err == nil && (status == http.StatusUnauthorized || status == http.StatusForbidden) {
		c.clearToken()
		token, err = c.adminToken(ctx, true)
		if err != nil {
			return err
		}
		status, err = c.attempt(ctx, method, path, query, body, out, token)
	}
	if err != nil {
		return err
	}

	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return ErrNotFound
	default:
		return apperrors.NewDownstreamUnavailable(
			fmt.Sprintf("External store request failed with HTTP %d.", status), nil)
	}
}

func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, body, out any, token string) (int, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, apperrors.NewDownstreamUnavailable(
			fmt.Sprintf("Cannot reach external store at %s.", c.baseURL), err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("pocketbase: decode %s %s: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}
