// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/memberauth/internal/platform/sec"
)

func TestResolveAuthorities(t *testing.T) {
	resolver := sec.NewAuthorityResolver(nil)

	assert.Equal(t,
		[]sec.Authority{"ROLE_ADMIN", "ROLE_USER"},
		resolver.ResolveAuthorities([]string{"ADMIN", "USER", "ADMIN"}),
	)
	assert.Empty(t, resolver.ResolveAuthorities(nil))
	assert.Equal(t, []sec.Authority{"ROLE_AUDITOR"}, resolver.ResolveAuthorities([]string{"AUDITOR"}))
}

func TestCreateRoles(t *testing.T) {
	resolver := sec.NewAuthorityResolver([]string{" Admin@Example.com ", ""})

	assert.Equal(t, []string{sec.RoleAdmin, sec.RoleUser}, resolver.CreateRoles("admin@example.com"))
	assert.Equal(t, []string{sec.RoleUser}, resolver.CreateRoles("alice@example.com"))
}

func TestAuthentication_HasAnyAuthority(t *testing.T) {
	authentication := &sec.Authentication{
		Username:    "alice",
		Authorities: []sec.Authority{sec.AuthorityOf(sec.RoleUser)},
	}

	assert.True(t, authentication.HasAnyAuthority(sec.AuthorityOf(sec.RoleAdmin), sec.AuthorityOf(sec.RoleUser)))
	assert.False(t, authentication.HasAnyAuthority(sec.AuthorityOf(sec.RoleAdmin)))
	assert.False(t, authentication.HasAnyAuthority())
}

func TestSecurityContext_Lifecycle(t *testing.T) {
	securityContext := sec.NewSecurityContext()
	require.False(t, securityContext.IsAuthenticated())

	securityContext.SetAuthentication(&sec.Authentication{Username: "alice"})
	securityContext.RecordError(sec.ErrTokenExpired)

	assert.True(t, securityContext.IsAuthenticated())
	assert.ErrorIs(t, securityContext.Err(), sec.ErrTokenExpired)

	securityContext.Clear()

	assert.Nil(t, securityContext.Authentication())
	assert.NoError(t, securityContext.Err())
}

func TestPasswordEncoder(t *testing.T) {
	encoder := sec.NewPasswordEncoder(4)

	hash, err := encoder.Encode("correct-pw")
	require.NoError(t, err)

	assert.NotEqual(t, "correct-pw", hash)
	assert.True(t, encoder.Matches("correct-pw", hash))
	assert.False(t, encoder.Matches("wrong-pw", hash))
	assert.False(t, encoder.Matches("correct-pw", "not-a-hash"))
}
