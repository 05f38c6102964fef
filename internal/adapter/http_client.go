// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/narmatov/boardsync/internal/config"
	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/models"
)

// HTTPRemoteClient is the HTTP/REST implementation of [RemoteClient]. It also
// implements [NetworkStatus]: connectivity is derived from the outcome of the
// requests it sends, so a single value serves both roles when wiring the sync
// services.
type HTTPRemoteClient struct {
	client     *resty.Client
	configured bool

	mu    sync.RWMutex
	state ConnectionState

	logger *logger.Logger
}

// NewHTTPRemoteClient constructs an HTTP client for the remote row API. It
// normalises and validates the base URL from cfg.BaseURL and attaches
// cfg.APIKey to every request.
//
// A missing base URL or API key is not an error: the client is returned
// unconfigured, IsConfigured reports false and every remote call fails with
// [ErrNotConfigured]. The daemon is expected to run fully local in that mode.
func NewHTTPRemoteClient(cfg config.Remote, logger *logger.Logger) (*HTTPRemoteClient, error) {
	h := &HTTPRemoteClient{state: StatusOffline, logger: logger}

	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		logger.Warn().Msg("remote backend not configured, sync disabled")
		return h, nil
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote address: %w", err)
	}

	h.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("X-API-Key", strings.TrimSpace(cfg.APIKey))
	h.configured = true

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// IsConfigured implements [NetworkStatus].
func (h *HTTPRemoteClient) IsConfigured() bool {
	return h.configured
}

// ConnectionStatus implements [NetworkStatus]. The state is derived from the
// transport outcome of the most recent request: a completed request (any HTTP
// status) means online, a wire-level failure after being online means
// reconnecting, and repeated failures mean offline.
func (h *HTTPRemoteClient) ConnectionStatus() ConnectionState {
	if !h.configured {
		return StatusOffline
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

func (h *HTTPRemoteClient) recordOutcome(transportErr error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if transportErr == nil {
		h.state = StatusOnline
		return
	}
	if h.state == StatusOnline {
		h.state = StatusReconnecting
		return
	}
	h.state = StatusOffline
}

// Select implements [RemoteClient]. It POSTs the filter to
// POST /api/rows/{collection}/query and decodes the matching rows.
func (h *HTTPRemoteClient) Select(ctx context.Context, collection string, filter RowFilter) ([]models.FieldMap, error) {
	if !h.configured {
		return nil, ErrNotConfigured
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(filter).
		Post("/api/rows/" + collection + "/query")
	h.recordOutcome(err)
	if err != nil {
		return nil, fmt.Errorf("select %s request: %w", collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.FieldMap
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode %s select response: %w", collection, err)
	}
	return rows, nil
}

// Insert implements [RemoteClient]. It POSTs the row to
// POST /api/rows/{collection} with an Idempotency-Key header, so that
// repeating the request after an ambiguous failure returns the already
// created row instead of a duplicate.
func (h *HTTPRemoteClient) Insert(ctx context.Context, collection string, row models.FieldMap, idempotencyKey string) (models.FieldMap, error) {
	if !h.configured {
		return nil, ErrNotConfigured
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(row)
	if idempotencyKey != "" {
		req.SetHeader("Idempotency-Key", idempotencyKey)
	}

	resp, err := req.Post("/api/rows/" + collection)
	h.recordOutcome(err)
	if err != nil {
		return nil, fmt.Errorf("insert %s request: %w", collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeRow(resp.Body(), collection)
}

// Update implements [RemoteClient]. It PATCHes the given fields to
// PATCH /api/rows/{collection}/{id} and returns the updated row.
func (h *HTTPRemoteClient) Update(ctx context.Context, collection, id string, row models.FieldMap) (models.FieldMap, error) {
	if !h.configured {
		return nil, ErrNotConfigured
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(row).
		Patch("/api/rows/" + collection + "/" + url.PathEscape(id))
	h.recordOutcome(err)
	if err != nil {
		return nil, fmt.Errorf("update %s/%s request: %w", collection, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeRow(resp.Body(), collection)
}

// Delete implements [RemoteClient]. It issues
// DELETE /api/rows/{collection}/{id}. A 404 is treated as success: the row is
// already gone, which is the state the caller asked for.
func (h *HTTPRemoteClient) Delete(ctx context.Context, collection, id string) error {
	if !h.configured {
		return ErrNotConfigured
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/rows/" + collection + "/" + url.PathEscape(id))
	h.recordOutcome(err)
	if err != nil {
		return fmt.Errorf("delete %s/%s request: %w", collection, id, err)
	}

	if mapErr := mapHTTPError(resp); mapErr != nil && !errors.Is(mapErr, ErrNotFound) {
		return mapErr
	}
	return nil
}

func decodeRow(body []byte, collection string) (models.FieldMap, error) {
	var row models.FieldMap
	if err := json.Unmarshal(body, &row); err != nil {
		return nil, fmt.Errorf("decode %s row response: %w", collection, err)
	}
	return row, nil
}
