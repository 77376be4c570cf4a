// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/memberauth/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
	assert.ErrorIs(t, dberr.Wrap(pgx.ErrNoRows, "find member"), dberr.ErrNotFound)

	duplicate := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	assert.ErrorIs(t, dberr.Wrap(duplicate, "insert member"), dberr.ErrDuplicate)

	other := errors.New("connection reset")
	wrapped := dberr.Wrap(other, "list members")
	assert.ErrorIs(t, wrapped, other)
	assert.Contains(t, wrapped.Error(), "list members")
}
