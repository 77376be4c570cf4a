// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// Authentication is the identity attributed to a request after token verification.
//
// It carries no credential material; trust is token-based once verified.
type Authentication struct {
	Username    string
	Authorities []Authority
}

// HasAnyAuthority reports whether the authentication holds at least one of the given authorities.
func (authentication *Authentication) HasAnyAuthority(required ...Authority) bool {
	for _, granted := range authentication.Authorities {
		for _, want := range required {
			if granted == want {
				return true
			}
		}
	}
	return false
}

// SecurityContext is the per-request holder of the authenticated identity and
// of any authentication error recorded while trying to establish it.
//
// # Concurrency
//
// A SecurityContext belongs to exactly one request and is never shared, so it
// carries no lock. It must be cleared when the request ends.
type SecurityContext struct {
	authentication *Authentication
	err            error
}

// NewSecurityContext returns an empty, unauthenticated context.
func NewSecurityContext() *SecurityContext {
	return &SecurityContext{}
}

// SetAuthentication attributes an identity to the current request.
func (securityContext *SecurityContext) SetAuthentication(authentication *Authentication) {
	securityContext.authentication = authentication
}

// Authentication returns the current identity, or nil when the request is anonymous.
func (securityContext *SecurityContext) Authentication() *Authentication {
	return securityContext.authentication
}

// IsAuthenticated reports whether an identity has been attributed.
func (securityContext *SecurityContext) IsAuthenticated() bool {
	return securityContext.authentication != nil
}

// RecordError stores an authentication failure for the entry point to inspect later.
func (securityContext *SecurityContext) RecordError(err error) {
	securityContext.err = err
}

// Err returns the recorded authentication failure, if any.
func (securityContext *SecurityContext) Err() error {
	return securityContext.err
}

// Clear drops the identity and any recorded error.
func (securityContext *SecurityContext) Clear() {
	securityContext.authentication = nil
	securityContext.err = nil
}
