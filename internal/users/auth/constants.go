// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "github.com/taibuivan/salesdesk/internal/platform/apperr"

// # Authentication Constraints

const (
	// MinPasswordLength is the shortest accepted password, in characters.
	MinPasswordLength = 6

	// MaxNameLength matches the users.account.name column.
	MaxNameLength = 200

	// dummyPassword seeds the digest verified when a login names an unknown email.
	dummyPassword = "salesdesk-timing-equalizer"
)

// # Client Messages

const (
	MsgNameRequired       = "Name is required"
	MsgEmailRequired      = "Email is required"
	MsgEmailInvalid       = "Email must be a valid address"
	MsgPasswordTooShort   = "Password must be at least 6 characters"
	MsgCredentialsMissing = "Email and password are required"
	MsgEmailTaken         = "Email already exists"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password so the two cases are indistinguishable.
var ErrInvalidCredentials = apperr.Unauthorized("Invalid email or password")
