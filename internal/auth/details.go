// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/taibuivan/memberauth/internal/member"
	"github.com/taibuivan/memberauth/pkg/email"
)

// Principal is a verified identity: who logged in and which roles they hold.
type Principal struct {
	ID       string
	Username string
	Roles    []string
}

// Authenticator verifies a credential and returns the matching principal.
//
// Every failure that stems from the credential itself must be reported as
// [ErrBadCredentials].
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*Principal, error)
}

// PrincipalLoader reloads a principal by username without a password check.
// The refresh endpoint uses it once the refresh token has been verified.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, username string) (*Principal, error)
}

// MemberFinder is the slice of [member.Repository] the details service needs.
type MemberFinder interface {
	FindByEmail(ctx context.Context, email string) (*member.Member, error)
}

// PasswordMatcher compares a plain-text password with a stored hash.
type PasswordMatcher interface {
	Matches(plainTextPassword, existingHash string) bool
}

// # Member Details

// MemberDetails is the authentication view over a stored member. It exposes
// only what credential checking needs and never mutates the member.
type MemberDetails struct {
	member *member.Member
}

// Username is the normalized email used as login identifier and token subject.
func (details MemberDetails) Username() string { return details.member.Email }

// PasswordHash returns the stored bcrypt hash.
func (details MemberDetails) PasswordHash() string { return details.member.PasswordHash }

// Roles returns a copy of the member's role names.
func (details MemberDetails) Roles() []string { return slices.Clone(details.member.Roles) }

// Enabled reports whether the account may authenticate.
func (details MemberDetails) Enabled() bool { return details.member.CanAuthenticate() }

// Principal converts the view into the identity carried through the pipeline.
func (details MemberDetails) Principal() *Principal {
	return &Principal{
		ID:       details.member.ID,
		Username: details.Username(),
		Roles:    details.Roles(),
	}
}

// MemberDetailsService authenticates credentials against the member store.
type MemberDetailsService struct {
	members   MemberFinder
	passwords PasswordMatcher
	dummyHash string
}

// NewMemberDetailsService builds the service. dummyHash is compared against
// when no member matches so unknown usernames cost the same bcrypt work.
func NewMemberDetailsService(members MemberFinder, passwords PasswordMatcher, dummyHash string) *MemberDetailsService {
	return &MemberDetailsService{members: members, passwords: passwords, dummyHash: dummyHash}
}

// LoadByUsername returns the details view for a username.
func (service *MemberDetailsService) LoadByUsername(ctx context.Context, username string) (*MemberDetails, error) {
	found, err := service.members.FindByEmail(ctx, email.Normalize(username))
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("auth: load member: %w", err)
	}
	return &MemberDetails{member: found}, nil
}

// Authenticate implements [Authenticator].
func (service *MemberDetailsService) Authenticate(ctx context.Context, username, password string) (*Principal, error) {
	details, err := service.LoadByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			service.passwords.Matches(password, service.dummyHash)
		}
		return nil, err
	}

	if !service.passwords.Matches(password, details.PasswordHash()) || !details.Enabled() {
		return nil, ErrBadCredentials
	}

	return details.Principal(), nil
}

// LoadPrincipal implements [PrincipalLoader].
func (service *MemberDetailsService) LoadPrincipal(ctx context.Context, username string) (*Principal, error) {
	details, err := service.LoadByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !details.Enabled() {
		return nil, ErrBadCredentials
	}
	return details.Principal(), nil
}
