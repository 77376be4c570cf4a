// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"context"

	"github.com/taibuivan/memberauth/pkg/pagination"
)

// Repository defines the data access contract for members.
//
// # Implementations
//
// [PostgresRepository] in production and [MemoryRepository] for tests and
// local runs without a database.
type Repository interface {
	// Create persists a new member.
	//
	// Returns [ErrDuplicateEmail] if the email is taken.
	Create(ctx context.Context, member *Member) error

	// FindByID returns the member with the given ID, or [ErrNotFound].
	FindByID(ctx context.Context, id string) (*Member, error)

	// FindByEmail returns the member with the given normalized email, or [ErrNotFound].
	FindByEmail(ctx context.Context, email string) (*Member, error)

	// List returns one page of members ordered by creation time, plus the total count.
	List(ctx context.Context, params pagination.Params) ([]*Member, int, error)

	// Update persists the mutable fields (Name, Phone, Status).
	//
	// Returns [ErrNotFound] if the member does not exist.
	Update(ctx context.Context, member *Member) error
}
