package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple", 1000)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hashed, "pbkdf2-sha512$1000$"))

	assert.True(t, VerifyPassword(hashed, "correct horse battery staple"))
	assert.False(t, VerifyPassword(hashed, "wrong password"))
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	first, err := HashPassword("secret", 1000)
	require.NoError(t, err)
	second, err := HashPassword("secret", 1000)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword(first, "secret"))
	assert.True(t, VerifyPassword(second, "secret"))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("", "secret"))
	assert.False(t, VerifyPassword("not-a-hash", "secret"))
	assert.False(t, VerifyPassword("bcrypt$10$abc$def", "secret"))
	assert.False(t, VerifyPassword("pbkdf2-sha512$zero$salt$key", "secret"))
	assert.False(t, VerifyPassword("pbkdf2-sha512$1000$!!!$key", "secret"))
}
