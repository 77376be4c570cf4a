// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/memberauth/internal/auth"
	"github.com/taibuivan/memberauth/internal/member"
	"github.com/taibuivan/memberauth/internal/platform/sec"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	alice        = "alice@example.com"
	alicePW      = "correct-pw"
	adminAddress = "admin@example.com"
)

type fixture struct {
	repository *member.MemoryRepository
	members    *member.Service
	codec      *sec.TokenCodec
	resolver   *sec.AuthorityResolver
	details    *auth.MemberDetailsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	encoder := sec.NewPasswordEncoder(4)
	resolver := sec.NewAuthorityResolver([]string{adminAddress})
	repository := member.NewMemoryRepository()

	codec, err := sec.NewTokenCodec(testSecret, 30, 420)
	require.NoError(t, err)

	dummyHash, err := encoder.Encode("dummy-password")
	require.NoError(t, err)

	f := &fixture{
		repository: repository,
		members:    member.NewService(repository, encoder, resolver),
		codec:      codec,
		resolver:   resolver,
		details:    auth.NewMemberDetailsService(repository, encoder, dummyHash),
	}

	f.register(t, alice)
	f.register(t, adminAddress)
	return f
}

func (f *fixture) register(t *testing.T, address string) *member.Member {
	t.Helper()
	created, err := f.members.Create(context.Background(), member.CreateInput{
		Email: address, Password: alicePW, Name: "Member", Phone: "010-1234-5678",
	})
	require.NoError(t, err)
	return created
}

func (f *fixture) accessToken(t *testing.T, username string, roles ...string) string {
	t.Helper()
	token, err := f.codec.IssueAccessToken(sec.Claims{Username: username, Roles: roles}, username, f.codec.AccessTokenExpiry(), f.codec.EncodedSecretKey())
	require.NoError(t, err)
	return token
}
