// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Storage failures are reduced to a small set of [Kind] values based on
// sentinel errors and PostgreSQL SQLSTATE codes. Message text is never inspected.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
)

// Kind classifies the outcome of a storage call.
type Kind uint8

const (
	// KindNone means no error.
	KindNone Kind = iota
	// KindNotFound means the addressed row does not exist.
	KindNotFound
	// KindConflict means a unique constraint rejected the write.
	KindConflict
	// KindInvalid means a value did not fit its column (SQLSTATE class 22).
	KindInvalid
	// KindInfra covers everything else: connectivity, timeouts, bad SQL.
	KindInfra
)

// String implements fmt.Stringer for log attributes.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	default:
		return "infra"
	}
}

// MsgInvalidValue is the client message for values the database refused.
const MsgInvalidValue = "Value out of range"

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Classify reports the [Kind] of a storage error.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return KindConflict
		case pgerrcode.IsDataException(pgErr.Code):
			return KindInvalid
		}
	}

	return KindInfra
}

// ConstraintName returns the violated constraint name, if err carries one.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// Already classified upstream.
	if apperr.IsAppError(err) {
		return err
	}

	switch Classify(err) {
	case KindNotFound:
		return ErrNotFound
	case KindConflict:
		return apperr.Conflict("Resource already exists").WithCause(err)
	case KindInvalid:
		return apperr.ValidationError(MsgInvalidValue).WithCause(err)
	default:
		return apperr.Internal(fmt.Errorf("%s: %w", action, err))
	}
}
