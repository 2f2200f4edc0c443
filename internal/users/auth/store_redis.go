// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/salesdesk/internal/platform/constants"
)

// RedisRevokedTokenRepository implements RevokedTokenRepository using Redis.
//
// Keys expire together with the token they revoke, so the deny-list holds
// only tokens that would otherwise still verify.
type RedisRevokedTokenRepository struct {
	client *redis.Client
}

// NewRevokedTokenRepository creates a new Redis-backed RevokedTokenRepository.
func NewRevokedTokenRepository(client *redis.Client) *RedisRevokedTokenRepository {
	return &RedisRevokedTokenRepository{client: client}
}

/*
Revoke stores the token ID with the given TTL.

Parameters:
  - context: context.Context
  - tokenID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisRevokedTokenRepository) Revoke(context context.Context, tokenID string, ttl time.Duration) error {
	if err := repository.client.Set(context, revokedTokenKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_revoked_token_set_failed: %w", err)
	}
	return nil
}

/*
IsRevoked checks whether the token ID is on the deny-list.
*/
func (repository *RedisRevokedTokenRepository) IsRevoked(context context.Context, tokenID string) (bool, error) {
	count, err := repository.client.Exists(context, revokedTokenKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revoked_token_exists_failed: %w", err)
	}
	return count > 0, nil
}

func revokedTokenKey(tokenID string) string {
	return constants.RedisPrefixRevokedToken + tokenID
}
