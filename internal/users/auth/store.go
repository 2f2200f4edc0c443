// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the credential store contract.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: NOT_FOUND AppError when absent, or storage failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given normalized email.

		Parameters:
		  - context: context.Context
		  - email: string (already trimmed and lower-cased)

		Returns:
		  - *User: Hydrated entity
		  - error: NOT_FOUND AppError when absent, or storage failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: CONFLICT AppError when the email is taken, or storage failures
	*/
	Create(context context.Context, user *User) error
}

// # Volatile Data Access

// RevokedTokenRepository records token IDs invalidated by logout.
type RevokedTokenRepository interface {

	/*
		Revoke stores a token ID until its natural expiry.

		Parameters:
		  - context: context.Context
		  - tokenID: string (the jti claim)
		  - ttl: time.Duration (remaining token lifetime)

		Returns:
		  - error: Storage failures
	*/
	Revoke(context context.Context, tokenID string, ttl time.Duration) error

	/*
		IsRevoked reports whether a token ID was revoked.

		Parameters:
		  - context: context.Context
		  - tokenID: string

		Returns:
		  - bool: true when revoked
		  - error: Storage failures
	*/
	IsRevoked(context context.Context, tokenID string) (bool, error)
}
