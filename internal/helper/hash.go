package helper

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrCorruptCredential marks a stored digest that cannot be parsed. A plain
// password mismatch is not an error, only a false verification result.
var ErrCorruptCredential = errors.New("corrupt password digest")

const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 2
	argonKeyLen  = 32
	argonSaltLen = 16
)

// HashPassword derives an argon2id digest in PHC string form:
// $argon2id$v=19$m=...,t=...,p=...$<b64 salt>$<b64 key>
func HashPassword(plain string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(plain), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	digest := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return digest, nil
}

// VerifyPassword re-derives the key with the digest's own parameters and
// compares in constant time.
func VerifyPassword(plain, digest string) (bool, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("%w: unexpected format", ErrCorruptCredential)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: bad version", ErrCorruptCredential)
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported argon2 version %d", ErrCorruptCredential, version)
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("%w: bad parameters", ErrCorruptCredential)
	}

	// argon2.IDKey panics on parameters outside its working range, so a
	// parseable digest still has to carry sane values before key derivation.
	if iterations < 1 || threads < 1 || memory < 8*uint32(threads) {
		return false, fmt.Errorf("%w: parameters out of range", ErrCorruptCredential)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: bad salt encoding", ErrCorruptCredential)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: bad key encoding", ErrCorruptCredential)
	}
	if len(want) < 4 {
		return false, fmt.Errorf("%w: key too short", ErrCorruptCredential)
	}

	got := argon2.IDKey([]byte(plain), salt, iterations, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
