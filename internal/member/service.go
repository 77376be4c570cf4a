// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/memberauth/internal/platform/apperr"
	"github.com/taibuivan/memberauth/internal/platform/ctxutil"
	"github.com/taibuivan/memberauth/pkg/email"
	"github.com/taibuivan/memberauth/pkg/pagination"
	"github.com/taibuivan/memberauth/pkg/uuid"
)

// # Contracts

// PasswordEncoder hashes plain-text passwords at registration.
type PasswordEncoder interface {
	Encode(plainTextPassword string) (string, error)
}

// RoleAssigner decides the roles a new member receives.
type RoleAssigner interface {
	CreateRoles(email string) []string
}

// Service implements the member use cases.
type Service struct {
	repository Repository
	encoder    PasswordEncoder
	roles      RoleAssigner
}

// NewService constructs a member [Service].
func NewService(repository Repository, encoder PasswordEncoder, roles RoleAssigner) *Service {
	return &Service{repository: repository, encoder: encoder, roles: roles}
}

// # Inputs

// CreateInput holds the registration data. Fields are validated by the handler.
type CreateInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// UpdateInput carries a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Name   *string
	Phone  *string
	Status *Status
}

// # Use Cases

/*
Create registers a new member.

The email is normalized before the uniqueness check so "Alice@Example.com" and
"alice@example.com" are the same account.

Returns:
  - *Member: the stored member
  - err: Conflict if the email is taken, Internal on storage or hashing failure
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Member, error) {
	normalized := email.Normalize(input.Email)

	if _, err := service.repository.FindByEmail(ctx, normalized); err == nil {
		return nil, apperr.Conflict("Member already exists")
	} else if !errors.Is(err, ErrNotFound) {
		return nil, apperr.Internal(err)
	}

	hashedPassword, err := service.encoder.Encode(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("member_service_hash_failed: %w", err))
	}

	member := &Member{
		ID:           uuid.New(),
		Email:        normalized,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Phone:        input.Phone,
		Status:       StatusActive,
		Roles:        service.roles.CreateRoles(normalized),
	}

	if err := service.repository.Create(ctx, member); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperr.Conflict("Member already exists")
		}
		return nil, apperr.Internal(err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "member_registered",
		slog.String("member_id", member.ID),
		slog.Any("roles", member.Roles),
	)

	return member, nil
}

// Get returns a member by ID.
func (service *Service) Get(ctx context.Context, id string) (*Member, error) {
	member, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}
	return member, nil
}

// List returns one page of members with its pagination metadata.
func (service *Service) List(ctx context.Context, params pagination.Params) ([]*Member, pagination.PageInfo, error) {
	members, total, err := service.repository.List(ctx, params)
	if err != nil {
		return nil, pagination.PageInfo{}, apperr.Internal(err)
	}
	return members, pagination.NewPageInfo(params, total), nil
}

// Update applies a partial update to a member.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Member, error) {
	member, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.Status != nil {
		member.Status = *input.Status
	}

	if err := service.repository.Update(ctx, member); err != nil {
		return nil, notFoundOrInternal(err)
	}

	return member, nil
}

// Delete quits a member. The row is kept; only the status changes.
func (service *Service) Delete(ctx context.Context, id string) error {
	quit := StatusQuit
	if _, err := service.Update(ctx, id, UpdateInput{Status: &quit}); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "member_quit", slog.String("member_id", id))
	return nil
}

func notFoundOrInternal(err error) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("Member")
	}
	return apperr.Internal(err)
}
