// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordEncoder hashes and compares passwords with bcrypt.
type PasswordEncoder struct {
	cost int
}

// NewPasswordEncoder returns a bcrypt encoder. A cost of zero selects [bcrypt.DefaultCost].
func NewPasswordEncoder(cost int) *PasswordEncoder {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordEncoder{cost: cost}
}

// Encode hashes a plain-text password.
func (encoder *PasswordEncoder) Encode(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), encoder.cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Matches compares a plain-text password with its hashed version in constant time.
func (encoder *PasswordEncoder) Matches(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
