package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names referenced by services when translating duplicates.
const (
	ConstraintUserEmail      = "users_email_key"
	ConstraintUserWorkOSID   = "users_workos_id_key"
	ConstraintWorkspaceName  = "workspaces_name_key"
	ConstraintWorkspaceSlug  = "workspaces_slug_key"
	ConstraintStaffPK        = "workspace_staff_pkey"
	ConstraintInvitationPK   = "staff_invitations_pkey"
	ConstraintActivityTarget = "activities_target_user_key"
)

type duplicateError struct {
	constraint string
	err        error
}

func (e *duplicateError) Error() string {
	return fmt.Sprintf("unique constraint violation: %s", e.constraint)
}

func (e *duplicateError) Unwrap() []error {
	return []error{ErrDuplicate, e.err}
}

// NewDuplicate builds the error a store returns when constraint is violated.
func NewDuplicate(constraint string) error {
	return &duplicateError{constraint: constraint, err: errors.New("duplicate key value")}
}

// DuplicateConstraint returns the violated constraint name when err is a
// duplicate, or "" otherwise.
func DuplicateConstraint(err error) string {
	var d *duplicateError
	if errors.As(err, &d) {
		return d.constraint
	}
	return ""
}

// mapError translates pgx errors into store sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return &duplicateError{constraint: pgErr.ConstraintName, err: err}
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrNotFound, pgErr.Detail)
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return fmt.Errorf("transaction conflict (retryable): %w", err)
	case pgerrcode.QueryCanceled:
		return fmt.Errorf("query canceled: %w", err)
	default:
		return fmt.Errorf("postgres error [%s]: %s: %w", pgErr.Code, pgErr.Message, err)
	}
}

// affected maps a zero-row delete or update to ErrNotFound.
func affected(n int64, err error) error {
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
