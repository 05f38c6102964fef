// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narmatov/boardsync/internal/config"
	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/models"
)

func newTestClient(t *testing.T, serverURL string) *HTTPRemoteClient {
	t.Helper()
	cfg := config.Remote{
		BaseURL:        serverURL,
		APIKey:         "test-api-key",
		RequestTimeout: 5 * time.Second,
	}

	c, err := NewHTTPRemoteClient(cfg, logger.Nop())
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Select ──────────────────────────────────────────────────────────────────

func TestSelect_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/rows/{collection}/query", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "tasks", chi.URLParam(req, "collection"))
		assert.Equal(t, "test-api-key", req.Header.Get("X-API-Key"))

		var filter RowFilter
		require.NoError(t, json.NewDecoder(req.Body).Decode(&filter))
		assert.Equal(t, "p1", filter.Eq["project_id"])

		writeJSON(t, w, http.StatusOK, []models.FieldMap{
			{"id": "r1", "name": "Fix bug", "version": float64(2)},
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	rows, err := c.Select(context.Background(), "tasks", RowFilter{Eq: map[string]any{"project_id": "p1"}})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "r1", rows[0].FieldString("id"))
	assert.Equal(t, StatusOnline, c.ConnectionStatus())
}

func TestSelect_UpdatedAfterRoundTrips(t *testing.T) {
	since := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	r := chi.NewRouter()
	r.Post("/api/rows/{collection}/query", func(w http.ResponseWriter, req *http.Request) {
		var filter RowFilter
		require.NoError(t, json.NewDecoder(req.Body).Decode(&filter))
		require.NotNil(t, filter.UpdatedAfter)
		assert.True(t, filter.UpdatedAfter.Equal(since))

		writeJSON(t, w, http.StatusOK, []models.FieldMap{})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	rows, err := c.Select(context.Background(), "projects", RowFilter{UpdatedAfter: &since})

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSelect_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid api key"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Select(context.Background(), "tasks", RowFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, IsTransient(err))
}

// ── Insert ──────────────────────────────────────────────────────────────────

func TestInsert_SendsIdempotencyKey(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/rows/{collection}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "projects", chi.URLParam(req, "collection"))
		assert.Equal(t, "idem-123", req.Header.Get("Idempotency-Key"))

		var row models.FieldMap
		require.NoError(t, json.NewDecoder(req.Body).Decode(&row))
		row["id"] = "r42"
		writeJSON(t, w, http.StatusCreated, row)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	created, err := c.Insert(context.Background(), "projects", models.FieldMap{"name": "Inbox"}, "idem-123")

	require.NoError(t, err)
	assert.Equal(t, "r42", created.FieldString("id"))
	assert.Equal(t, "Inbox", created.FieldString("name"))
}

func TestInsert_ServerErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Insert(context.Background(), "projects", models.FieldMap{"name": "Inbox"}, "idem-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsTransient(err))
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestUpdate_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Patch("/api/rows/{collection}/{id}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "tasks", chi.URLParam(req, "collection"))
		assert.Equal(t, "r7", chi.URLParam(req, "id"))

		writeJSON(t, w, http.StatusOK, models.FieldMap{"id": "r7", "name": "Renamed", "version": float64(5)})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	updated, err := c.Update(context.Background(), "tasks", "r7", models.FieldMap{"name": "Renamed"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.FieldInt64("version"))
}

func TestUpdate_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Update(context.Background(), "tasks", "ghost", models.FieldMap{"name": "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, IsTransient(err))
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.Delete(context.Background(), "memberships", "r9"))
	assert.Equal(t, "/api/rows/memberships/r9", gotPath)
}

func TestDelete_MissingRowIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	assert.NoError(t, c.Delete(context.Background(), "memberships", "gone"))
}

// ── Configuration and connectivity ──────────────────────────────────────────

func TestUnconfiguredClientShortCircuits(t *testing.T) {
	c, err := NewHTTPRemoteClient(config.Remote{}, logger.Nop())
	require.NoError(t, err)

	assert.False(t, c.IsConfigured())
	assert.Equal(t, StatusOffline, c.ConnectionStatus())

	_, err = c.Select(context.Background(), "tasks", RowFilter{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.Insert(context.Background(), "tasks", models.FieldMap{}, "k")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.Update(context.Background(), "tasks", "r1", models.FieldMap{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, c.Delete(context.Background(), "tasks", "r1"), ErrNotConfigured)
}

func TestInvalidAddressRejected(t *testing.T) {
	_, err := NewHTTPRemoteClient(config.Remote{BaseURL: "://bad", APIKey: "k"}, logger.Nop())
	require.Error(t, err)
}

func TestConnectionStatusTransitions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.FieldMap{})
	}))

	c := newTestClient(t, srv.URL)
	assert.Equal(t, StatusOffline, c.ConnectionStatus())

	_, err := c.Select(context.Background(), "tasks", RowFilter{})
	require.NoError(t, err)
	assert.Equal(t, StatusOnline, c.ConnectionStatus())

	// Kill the server: the first wire failure downgrades to reconnecting,
	// the next one to offline.
	srv.Close()

	_, err = c.Select(context.Background(), "tasks", RowFilter{})
	require.Error(t, err)
	assert.Equal(t, StatusReconnecting, c.ConnectionStatus())

	_, err = c.Select(context.Background(), "tasks", RowFilter{})
	require.Error(t, err)
	assert.Equal(t, StatusOffline, c.ConnectionStatus())
}
