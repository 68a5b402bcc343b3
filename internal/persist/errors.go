// Package persist loads and saves the content document against two tiers, a
// remote Postgres store and a local file cache, and manages binary assets in
// a Postgres-backed blob store.
package persist

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotConfigured is returned by operations that need the remote store when
// no database connection was configured. The rest of the system keeps
// working from the local cache and defaults.
var ErrNotConfigured = errors.New("remote store is not configured (set DATABASE_URL)")

// PermissionError means the remote store is reachable but rejected the
// operation. It carries guidance the UI can show verbatim.
type PermissionError struct {
	Op  string
	Err error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s: permission denied by the database (grant the folio role access to the site_content and assets tables): %v", e.Op, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// NotProvisionedError means the database or its tables were never created.
// Distinct from PermissionError so the UI can suggest provisioning instead
// of rule changes.
type NotProvisionedError struct {
	Op  string
	Err error
}

func (e *NotProvisionedError) Error() string {
	return fmt.Sprintf("%s: database not provisioned (create the database and run the folio schema): %v", e.Op, e.Err)
}

func (e *NotProvisionedError) Unwrap() error { return e.Err }

// classify maps Postgres error codes onto the error taxonomy. Anything
// unrecognized passes through wrapped with the operation name.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// insufficient_privilege, invalid_authorization_specification,
		// invalid_password
		case "42501", "28000", "28P01":
			return &PermissionError{Op: op, Err: err}
		// invalid_catalog_name (database missing), undefined_table
		case "3D000", "42P01":
			return &NotProvisionedError{Op: op, Err: err}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
