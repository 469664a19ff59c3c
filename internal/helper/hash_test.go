package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	digest, err := HashPassword("ChangeMeNow!123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))

	ok, err := VerifyPassword("ChangeMeNow!123", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPasswordMismatchIsNotAnError(t *testing.T) {
	digest, err := HashPassword("correct horse")
	require.NoError(t, err)

	ok, err := VerifyPassword("battery staple", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordSaltsEveryDigest(t *testing.T) {
	first, err := HashPassword("same input")
	require.NoError(t, err)
	second, err := HashPassword("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordCorruptDigest(t *testing.T) {
	cases := []string{
		"",
		"not a digest",
		"$bcrypt$v=19$m=65536,t=3,p=2$abc$def",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$def",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdHNhbHQ$a2V5a2V5",
		// parseable digests whose parameters would blow up key derivation
		"$argon2id$v=19$m=65536,t=0,p=0$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=65536,t=0,p=2$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=65536,t=3,p=0$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=4,t=3,p=2$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHQ$",
		"$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHQ$YQ",
	}

	for _, digest := range cases {
		_, err := VerifyPassword("whatever", digest)
		assert.ErrorIs(t, err, ErrCorruptCredential, "digest %q", digest)
	}
}
