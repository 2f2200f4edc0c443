// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements user identity and session issuance.

It owns the credential store contract, the signup and login use cases, and
the HTTP endpoints under /api/auth.

# Architecture

  - Service: Orchestrates signup, login, profile lookup and logout.
  - Repository: Abstracted interfaces for Postgres (accounts) and Redis (revoked token IDs).
  - Security: argon2id digests and HS256 session tokens from the sec package.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialized.
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile is the public view of a user returned to clients.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile projects the user onto its public fields.
func (user *User) Profile() Profile {
	return Profile{ID: user.ID, Name: user.Name, Email: user.Email}
}

// Session is the result of a successful signup or login.
type Session struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// # Field Identifiers

// Field names used in validation details.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)
