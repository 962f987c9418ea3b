package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Scheme  = "pbkdf2-sha512"
	pbkdf2SaltLen = 16
	pbkdf2KeyLen  = 64
)

// HashPassword derives a salted PBKDF2-HMAC-SHA512 hash of the password,
// encoded as "pbkdf2-sha512$<iterations>$<salt>$<key>".
func HashPassword(password string, iterations int) (string, error) {
	if iterations <= 0 {
		iterations = 29000
	}
	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, pbkdf2KeyLen, sha512.New)
	return fmt.Sprintf("%s$%d$%s$%s",
		pbkdf2Scheme,
		iterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether the plain password matches the stored hash.
// Malformed stored hashes verify as false rather than erroring, so a login
// attempt against a corrupt record behaves like a wrong password.
func VerifyPassword(hashed, plain string) bool {
	parts := strings.Split(hashed, "$")
	if len(parts) != 4 || parts[0] != pbkdf2Scheme {
		return false
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(plain), salt, iterations, len(expected), sha512.New)
	return subtle.ConstantTimeCompare(key, expected) == 1
}
