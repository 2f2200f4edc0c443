// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
	"github.com/taibuivan/salesdesk/internal/platform/database/schema"
	"github.com/taibuivan/salesdesk/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

var selectUserQuery = fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s`,
	schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email,
	schema.UserAccount.Password, schema.UserAccount.CreatedAt, schema.UserAccount.Table,
)

/*
Create persists a new user record into the users.account table.

A unique violation on the email column surfaces as a CONFLICT AppError,
the same outcome as the service-level pre-check.
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.CreatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)

	return createError(err)
}

// createError maps a violation of the email constraint to [MsgEmailTaken].
// Any other conflict keeps the generic message.
func createError(err error) error {
	if dberr.Classify(err) == dberr.KindConflict && dberr.ConstraintName(err) == schema.UserAccount.EmailUnique {
		return apperr.Conflict(MsgEmailTaken).WithCause(err)
	}
	return dberr.Wrap(err, "postgres_user_repo_create_failed")
}

/*
FindByEmail retrieves a user record by its normalized email address.

Returns:
  - *User: Hydrated account entity
  - error: NOT_FOUND AppError or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findOne(context, schema.UserAccount.Email, email, "postgres_user_repo_find_by_email_failed")
}

/*
FindByID retrieves a user record by its UUID.
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findOne(context, schema.UserAccount.ID, id, "postgres_user_repo_find_by_id_failed")
}

func (repository *PostgresUserRepository) findOne(context context.Context, column, value, action string) (*User, error) {
	query := selectUserQuery + fmt.Sprintf(` WHERE %s = $1`, column)

	user := &User{}
	err := repository.pool.QueryRow(context, query, value).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if dberr.Classify(err) == dberr.KindNotFound {
			return nil, apperr.NotFound("User")
		}
		return nil, dberr.Wrap(err, action)
	}

	return user, nil
}
