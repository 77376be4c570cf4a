// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package email normalizes email-like identifiers before they are stored or compared.
//
// # Usage
//
// Members log in with their email address. Normalizing at registration, at
// login and when keying the attempt limiter makes "Alice@Example.com" and
// "alice@example.com" the same identity.
package email

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims, NFKC-normalizes and case-folds an identifier.
//
// # Transformation Pipeline
//
// 1. Trims surrounding whitespace.
// 2. Normalizes to NFKC (compatibility forms collapse: full-width "ａ" → "a").
// 3. Applies Unicode case folding.
func Normalize(identifier string) string {
	result := strings.TrimSpace(identifier)
	result = norm.NFKC.String(result)
	// Casers are stateful, so each call gets its own.
	return cases.Fold().String(result)
}
