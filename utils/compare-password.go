package utils

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordMismatch = errors.New("incorrect password")
	ErrHashFormat       = errors.New("invalid hash format")
)

// ComparePass checks password against an argon2id hash produced by HashPass.
// bcrypt hashes written by the previous Node backend are accepted as well.
func ComparePass(password, hashPassword string) error {
	if isBcrypt(hashPassword) {
		if err := bcrypt.CompareHashAndPassword([]byte(hashPassword), []byte(password)); err != nil {
			return ErrPasswordMismatch
		}
		return nil
	}

	parts := strings.Split(hashPassword, ".")
	if len(parts) != 2 {
		return ErrHashFormat
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return ErrHashFormat
	}
	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return ErrHashFormat
	}

	candidate := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, uint32(len(hash)))
	if subtle.ConstantTimeCompare(hash, candidate) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}
