// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"path"
	"strings"

	"github.com/taibuivan/memberauth/internal/platform/ctxutil"
	"github.com/taibuivan/memberauth/internal/platform/sec"
)

// # Access Rules

// Access is the requirement a rule places on a request.
type Access struct {
	permitAll   bool
	authorities []sec.Authority
}

// PermitAll lets any request through, authenticated or not.
func PermitAll() Access { return Access{permitAll: true} }

// HasAnyRole requires at least one of the given roles.
func HasAnyRole(roles ...string) Access {
	authorities := make([]sec.Authority, 0, len(roles))
	for _, role := range roles {
		authorities = append(authorities, sec.AuthorityOf(role))
	}
	return Access{authorities: authorities}
}

// HasRole requires role.
func HasRole(role string) Access { return HasAnyRole(role) }

// PermitsAll reports whether the access requires nothing.
func (a Access) PermitsAll() bool { return a.permitAll }

// Rule binds an access requirement to a method and an ant-style path pattern.
// An empty Method matches every method.
//
// Pattern segments: "*" matches one segment, "**" matches zero or more, and
// anything else is a [path.Match] pattern for a single segment.
type Rule struct {
	Method  string
	Pattern string
	Access  Access
}

// Policy is an ordered rule list. The first matching rule decides; a request
// no rule matches is permitted.
type Policy struct {
	rules []Rule
}

// NewPolicy returns a policy evaluating rules in order.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy is the member API access table.
func DefaultPolicy() *Policy {
	return NewPolicy(
		Rule{Method: http.MethodPost, Pattern: "/*/members", Access: PermitAll()},
		Rule{Method: http.MethodPatch, Pattern: "/*/members/**", Access: HasRole(sec.RoleUser)},
		Rule{Method: http.MethodGet, Pattern: "/*/members", Access: HasRole(sec.RoleAdmin)},
		Rule{Method: http.MethodGet, Pattern: "/*/members/**", Access: HasAnyRole(sec.RoleUser, sec.RoleAdmin)},
		Rule{Method: http.MethodDelete, Pattern: "/*/members/**", Access: HasRole(sec.RoleUser)},
	)
}

// Decide returns the access required for method and requestPath.
func (policy *Policy) Decide(method, requestPath string) Access {
	segments := splitPath(path.Clean("/" + requestPath))

	for _, rule := range policy.rules {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if matchSegments(splitPath(rule.Pattern), segments) {
			return rule.Access
		}
	}
	return PermitAll()
}

// DecideRequest evaluates both the decoded path and, when present, the
// escaped path chi routes on. A protected outcome from the escaped path wins,
// so "/v11/members/%2E%2E" is judged as the member route it reaches and not
// as the "/v11" its decoded form cleans to.
func (policy *Policy) DecideRequest(request *http.Request) Access {
	if raw := request.URL.RawPath; raw != "" {
		if routed := policy.Decide(request.Method, raw); !routed.PermitsAll() {
			return routed
		}
	}
	return policy.Decide(request.Method, request.URL.Path)
}

// # Decision Stage

// Authorize enforces policy using the authentication established upstream.
//
// Anonymous requests to protected routes go to entryPoint together with any
// recorded verification error; authenticated ones without authority go to denied.
func Authorize(policy *Policy, entryPoint EntryPoint, denied AccessDeniedHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			access := policy.DecideRequest(request)
			if access.PermitsAll() {
				next.ServeHTTP(writer, request)
				return
			}

			securityContext := ctxutil.GetSecurityContext(request.Context())
			if securityContext == nil || !securityContext.IsAuthenticated() {
				var cause error
				if securityContext != nil {
					cause = securityContext.Err()
				}
				entryPoint.Commence(writer, request, cause)
				return
			}

			if !securityContext.Authentication().HasAnyAuthority(access.authorities...) {
				denied.Handle(writer, request, ErrAccessDenied)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # Ant Matching

func splitPath(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func matchSegments(pattern, segments []string) bool {
	for len(pattern) > 0 {
		head := pattern[0]

		if head == "**" {
			rest := pattern[1:]
			for skip := 0; skip <= len(segments); skip++ {
				if matchSegments(rest, segments[skip:]) {
					return true
				}
			}
			return false
		}

		if len(segments) == 0 {
			return false
		}
		if head != "*" {
			matched, err := path.Match(head, segments[0])
			if err != nil || !matched {
				return false
			}
		}

		pattern = pattern[1:]
		segments = segments[1:]
	}
	return len(segments) == 0
}
