// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "strings"

// # Roles

const (
	// RoleAdmin may list every member.
	RoleAdmin = "ADMIN"

	// RoleUser is granted to every registered member.
	RoleUser = "USER"

	// AuthorityPrefix normalizes a role name into an [Authority].
	AuthorityPrefix = "ROLE_"
)

// Authority is a normalized permission token used in access-control checks.
type Authority string

// AuthorityOf returns the authority granted by role.
func AuthorityOf(role string) Authority {
	return Authority(AuthorityPrefix + role)
}

// # Authority Resolution

// AuthorityResolver maps stored role identifiers to authorities and assigns
// roles to freshly registered members.
type AuthorityResolver struct {
	adminEmails map[string]struct{}
}

// NewAuthorityResolver creates a resolver that grants [RoleAdmin] to the given emails.
func NewAuthorityResolver(adminEmails []string) *AuthorityResolver {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.TrimSpace(email)
		if email != "" {
			admins[strings.ToLower(email)] = struct{}{}
		}
	}
	return &AuthorityResolver{adminEmails: admins}
}

// ResolveAuthorities maps each role to "ROLE_" + role.
//
// Unknown roles still map to an authority; enforcement happens at the
// authorization decision point. Duplicates are dropped, order is kept.
func (resolver *AuthorityResolver) ResolveAuthorities(roles []string) []Authority {
	authorities := make([]Authority, 0, len(roles))
	seen := make(map[Authority]struct{}, len(roles))

	for _, role := range roles {
		authority := AuthorityOf(role)
		if _, dup := seen[authority]; dup {
			continue
		}
		seen[authority] = struct{}{}
		authorities = append(authorities, authority)
	}

	return authorities
}

// CreateRoles returns the roles assigned at registration for email.
func (resolver *AuthorityResolver) CreateRoles(email string) []string {
	if _, ok := resolver.adminEmails[strings.ToLower(email)]; ok {
		return []string{RoleAdmin, RoleUser}
	}
	return []string{RoleUser}
}
