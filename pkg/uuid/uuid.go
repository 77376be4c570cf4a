// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuid issues the identifiers used for members and request IDs.
//
// Version 7 values sort by creation time, which keeps the member primary
// key index append-mostly.
package uuid

import "github.com/google/uuid"

// New returns a fresh UUIDv7 in canonical string form. It panics only if the
// system entropy source fails.
func New() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
