// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
	"github.com/taibuivan/salesdesk/internal/platform/constants"
	"github.com/taibuivan/salesdesk/internal/platform/ctxutil"
	"github.com/taibuivan/salesdesk/internal/platform/respond"
	"github.com/taibuivan/salesdesk/internal/platform/sec"
)

// unauthorizedMessage is the single message for every bearer-token failure,
// so callers cannot tell a forged token from an expired or revoked one.
const unauthorizedMessage = "Unauthorized"

// TokenVerifier defines the interface needed to verify tokens in middleware.
type TokenVerifier interface {
	Verify(token string) (*sec.Claims, error)
}

// RevocationChecker reports whether a token ID was revoked by logout.
type RevocationChecker interface {
	IsRevoked(context context.Context, tokenID string) (bool, error)
}

// Authenticate extracts and verifies the bearer token from the Authorization header.
//
// # Flow
//  1. If the header is absent, the request proceeds as anonymous.
//  2. A malformed header, a token that fails verification, or a revoked token ID
//     is rejected with a generic 401.
//  3. Verified [*sec.Claims] are injected into the context and the request logger
//     gains a user_id attribute.
//
// revocations may be nil when no deny-list is configured.
func Authenticate(verifier TokenVerifier, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			scheme, token, found := strings.Cut(authHeader, " ")
			token = strings.TrimSpace(token)
			if !found || !strings.EqualFold(scheme, constants.BearerScheme) || token == "" {
				respond.Error(writer, request, apperr.Unauthorized(unauthorizedMessage))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(token)
			if err != nil {
				ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "token_rejected",
					slog.String("reason", err.Error()),
				)
				respond.Error(writer, request, apperr.Unauthorized(unauthorizedMessage))
				return
			}

			// ── 4. Deny-list ──────────────────────────────────────────────────
			if revocations != nil {
				revoked, err := revocations.IsRevoked(request.Context(), claims.ID)
				if err != nil {
					respond.Error(writer, request, apperr.Internal(err))
					return
				}
				if revoked {
					respond.Error(writer, request, apperr.Unauthorized(unauthorizedMessage))
					return
				}
			}

			// ── 5. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.String("user_id", claims.UserID())))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized(unauthorizedMessage))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
