// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/memberauth/internal/member"
	"github.com/taibuivan/memberauth/internal/platform/apperr"
	"github.com/taibuivan/memberauth/internal/platform/sec"
	"github.com/taibuivan/memberauth/pkg/pagination"
)

func newService(t *testing.T) (*member.Service, *member.MemoryRepository) {
	t.Helper()
	repository := member.NewMemoryRepository()
	service := member.NewService(repository, sec.NewPasswordEncoder(4), sec.NewAuthorityResolver([]string{"admin@example.com"}))
	return service, repository
}

func register(t *testing.T, service *member.Service, email string) *member.Member {
	t.Helper()
	created, err := service.Create(context.Background(), member.CreateInput{
		Email:    email,
		Password: "correct-pw",
		Name:     "Alice",
		Phone:    "010-1234-5678",
	})
	require.NoError(t, err)
	return created
}

func TestService_Create(t *testing.T) {
	service, repository := newService(t)

	created := register(t, service, "  Alice@Example.com ")

	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, member.StatusActive, created.Status)
	assert.Equal(t, []string{sec.RoleUser}, created.Roles)
	assert.NotEqual(t, "correct-pw", created.PasswordHash)
	assert.True(t, sec.NewPasswordEncoder(4).Matches("correct-pw", created.PasswordHash))

	stored, err := repository.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
}

func TestService_CreateAdmin(t *testing.T) {
	service, _ := newService(t)

	created := register(t, service, "admin@example.com")

	assert.Equal(t, []string{sec.RoleAdmin, sec.RoleUser}, created.Roles)
}

func TestService_CreateDuplicate(t *testing.T) {
	service, _ := newService(t)
	register(t, service, "alice@example.com")

	_, err := service.Create(context.Background(), member.CreateInput{
		Email: "ALICE@example.com", Password: "x", Name: "Other", Phone: "010-000-0000",
	})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusConflict, appError.HTTPStatus)
}

func TestService_GetMissing(t *testing.T) {
	service, _ := newService(t)

	_, err := service.Get(context.Background(), "missing")

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
}

func TestService_UpdatePartial(t *testing.T) {
	service, _ := newService(t)
	created := register(t, service, "alice@example.com")

	name := "Alice Kim"
	updated, err := service.Update(context.Background(), created.ID, member.UpdateInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Alice Kim", updated.Name)
	assert.Equal(t, "010-1234-5678", updated.Phone)
	assert.Equal(t, member.StatusActive, updated.Status)
}

func TestService_DeleteQuits(t *testing.T) {
	service, _ := newService(t)
	created := register(t, service, "alice@example.com")

	require.NoError(t, service.Delete(context.Background(), created.ID))

	fetched, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, member.StatusQuit, fetched.Status)
	assert.False(t, fetched.CanAuthenticate())
}

func TestService_List(t *testing.T) {
	service, _ := newService(t)
	for _, address := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		register(t, service, address)
	}

	members, pageInfo, err := service.List(context.Background(), pagination.Params{Page: 2, Size: 2})
	require.NoError(t, err)

	assert.Len(t, members, 1)
	assert.Equal(t, 3, pageInfo.TotalElements)
	assert.Equal(t, 2, pageInfo.TotalPages)
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, member.StatusSleep.Valid())
	assert.False(t, member.Status("MEMBER_BANNED").Valid())
}
