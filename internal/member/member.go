// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package member manages registered members: the principals the security
// pipeline authenticates.
//
// # Architecture
//
// The entity here is a plain data record. The auth package reads it through
// the [Repository] contract and builds its own authentication view on top,
// so nothing in this package knows about tokens or authorities.
package member

import (
	"errors"
	"time"
)

// Status is the lifecycle state of a member account.
type Status string

const (
	StatusActive Status = "MEMBER_ACTIVE"
	StatusSleep  Status = "MEMBER_SLEEP"
	StatusQuit   Status = "MEMBER_QUIT" // Terminal. Quit members cannot log in.
)

// Statuses lists every valid [Status] in declaration order.
var Statuses = []Status{StatusActive, StatusSleep, StatusQuit}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Member is a registered account.
//
// # Rules
//   - Email is normalized and unique.
//   - PasswordHash is a bcrypt hash produced by [Service.Create].
//   - Roles are assigned once at registration.
type Member struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	Status       Status
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanAuthenticate reports whether the member may log in.
func (m *Member) CanAuthenticate() bool {
	return m.Status != StatusQuit
}

var (
	// ErrNotFound is returned by repositories when no member matches.
	ErrNotFound = errors.New("member: not found")

	// ErrDuplicateEmail is returned by repositories when the email is already registered.
	ErrDuplicateEmail = errors.New("member: email already registered")
)
