// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/salesdesk/internal/platform/sec"
)

// Cheap parameters keep the suite fast; production uses DefaultArgon2Params.
var testParams = sec.Argon2Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := sec.NewPasswordHasher(testParams)

	digest, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$argon2id$v=19$"))
	assert.NotContains(t, digest, "secret1")
	assert.True(t, hasher.Verify("secret1", digest))
	assert.False(t, hasher.Verify("secret2", digest))
	assert.False(t, hasher.Verify("", digest))
}

func TestPasswordHasher_SaltedDigests(t *testing.T) {
	hasher := sec.NewPasswordHasher(testParams)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same-password", first))
	assert.True(t, hasher.Verify("same-password", second))
}

func TestPasswordHasher_VerifyUsesStoredParams(t *testing.T) {
	weak := sec.NewPasswordHasher(testParams)
	digest, err := weak.Hash("pw")
	require.NoError(t, err)

	stronger := sec.NewPasswordHasher(sec.Argon2Params{Memory: 16 * 1024, Iterations: 2, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	assert.True(t, stronger.Verify("pw", digest))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := sec.NewPasswordHasher(testParams)

	for _, digest := range []string{
		"",
		"plain-text",
		"$2a$10$abcdefghijklmnopqrstuv",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=8192,t=0,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$a2V5",
	} {
		assert.False(t, hasher.Verify("pw", digest), digest)
	}
}
