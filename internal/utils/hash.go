// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied to every new password
// hash. The salt is generated by bcrypt and embedded in the hash string, so
// no separate salt storage is needed.
const PasswordHashCost = 10

// HashPassword computes a salted bcrypt digest of the given plaintext
// password using [PasswordHashCost].
//
// The returned string embeds the algorithm version, cost, and salt and is
// suitable for direct storage. The plaintext is never persisted or logged.
//
// Returns an error if bcrypt rejects the input (e.g. the plaintext exceeds
// bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash. The cost and salt are read from the hash string itself.
//
// The three outcomes are kept distinct on purpose:
//   - (true, nil)   — the password matches;
//   - (false, nil)  — the password does not match;
//   - (false, err)  — the stored hash is malformed or verification itself
//     failed. Callers must surface this as an internal error, not as a
//     credential mismatch.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("error verifying password: %w", err)
}
