// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer access to the multi-tenant remote
// backend.
//
// The primary abstraction is [RemoteClient], a row-oriented API over named
// collections that decouples the sync services from the underlying protocol.
// The package ships an HTTP/REST implementation ([NewHTTPRemoteClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401), and
// [IsTransient] to decide whether a failed push is worth retrying.
package adapter

import (
	"context"
	"time"

	"github.com/narmatov/boardsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_client_mock.go -package=mock

// RowFilter restricts a Select to rows matching every listed predicate.
// A zero filter matches all rows in the collection.
type RowFilter struct {
	// Eq requires column = value for every entry.
	Eq map[string]any `json:"eq,omitempty"`

	// In requires the column value to be one of the listed values.
	In map[string][]any `json:"in,omitempty"`

	// UpdatedAfter, when set, requires updated_at strictly greater than the
	// given instant. Used by incremental sync.
	UpdatedAfter *time.Time `json:"updated_after,omitempty"`
}

// RemoteClient defines transport-agnostic communication with the remote row
// API. Rows travel as remote-shaped field maps; name translation between the
// local and remote schemas is the caller's concern. Implementations are
// responsible for serialisation, API-key header management, and mapping
// transport-level errors to the sentinel values defined in this package.
type RemoteClient interface {
	// Select fetches the rows of collection matching filter. Tombstoned rows
	// are included; the remote keeps deleted_at as a regular column.
	Select(ctx context.Context, collection string, filter RowFilter) ([]models.FieldMap, error)

	// Insert creates a new row and returns the created row as stored by the
	// backend, including its server-assigned id. idempotencyKey makes the
	// request safe to repeat after an ambiguous failure: the backend returns
	// the previously created row instead of inserting a duplicate.
	Insert(ctx context.Context, collection string, row models.FieldMap, idempotencyKey string) (models.FieldMap, error)

	// Update patches the row identified by id with the given fields and
	// returns the updated row. Returns [ErrNotFound] (wrapped) if the row
	// does not exist on the backend.
	Update(ctx context.Context, collection, id string, row models.FieldMap) (models.FieldMap, error)

	// Delete removes the row identified by id. A missing row is not an
	// error: the desired end state is already in place.
	Delete(ctx context.Context, collection, id string) error
}

// ConnectionState describes the device's current view of remote reachability.
type ConnectionState string

const (
	StatusOnline       ConnectionState = "online"
	StatusOffline      ConnectionState = "offline"
	StatusReconnecting ConnectionState = "reconnecting"
)

// NetworkStatus supplies the connectivity signals that gate all remote I/O.
// Both the sync queue and the sync engine consult it before any remote
// attempt; offline and reconnecting states block remote operations but never
// block local writes.
type NetworkStatus interface {
	// IsConfigured reports whether a remote backend has been configured at
	// all. When false every sync operation short-circuits.
	IsConfigured() bool

	// ConnectionStatus returns the current connectivity state.
	ConnectionStatus() ConnectionState
}
