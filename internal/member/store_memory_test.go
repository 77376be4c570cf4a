// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/memberauth/internal/member"
)

func TestMemoryRepository_CopiesValues(t *testing.T) {
	repository := member.NewMemoryRepository()
	original := &member.Member{ID: "m1", Email: "alice@example.com", Roles: []string{"USER"}}
	require.NoError(t, repository.Create(context.Background(), original))

	original.Roles[0] = "ADMIN"

	stored, err := repository.FindByID(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, []string{"USER"}, stored.Roles)
}

func TestMemoryRepository_Errors(t *testing.T) {
	repository := member.NewMemoryRepository()
	require.NoError(t, repository.Create(context.Background(), &member.Member{ID: "m1", Email: "alice@example.com"}))

	err := repository.Create(context.Background(), &member.Member{ID: "m2", Email: "alice@example.com"})
	assert.ErrorIs(t, err, member.ErrDuplicateEmail)

	_, err = repository.FindByEmail(context.Background(), "bob@example.com")
	assert.ErrorIs(t, err, member.ErrNotFound)

	err = repository.Update(context.Background(), &member.Member{ID: "missing"})
	assert.ErrorIs(t, err, member.ErrNotFound)
}
