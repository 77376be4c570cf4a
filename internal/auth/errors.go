// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "errors"

var (
	// ErrBadCredentials covers every login failure. Unknown user, wrong
	// password and quit accounts are indistinguishable to the caller.
	ErrBadCredentials = errors.New("auth: bad credentials")

	// ErrAccessDenied is raised when an authenticated principal lacks the required authority.
	ErrAccessDenied = errors.New("auth: access denied")

	// ErrNotAccessToken is recorded when a verified token carries no username,
	// i.e. a refresh token presented as a bearer credential.
	ErrNotAccessToken = errors.New("auth: not an access token")

	// ErrNotRefreshToken is returned when the refresh endpoint receives a token
	// carrying a username, i.e. an access token.
	ErrNotRefreshToken = errors.New("auth: not a refresh token")

	// ErrTooManyAttempts is returned by an [AttemptLimiter] once an identifier is locked out.
	ErrTooManyAttempts = errors.New("auth: too many login attempts")
)
