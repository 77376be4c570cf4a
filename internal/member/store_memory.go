// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/memberauth/pkg/pagination"
)

// MemoryRepository is an in-process [Repository]. Stored values are copied on
// the way in and out so callers never share a pointer with the store.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*Member
	byEmail map[string]string
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*Member),
		byEmail: make(map[string]string),
	}
}

func (repository *MemoryRepository) Create(_ context.Context, member *Member) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, taken := repository.byEmail[member.Email]; taken {
		return ErrDuplicateEmail
	}

	now := time.Now()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now

	repository.byID[member.ID] = clone(member)
	repository.byEmail[member.Email] = member.ID
	return nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Member, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	stored, ok := repository.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(stored), nil
}

func (repository *MemoryRepository) FindByEmail(_ context.Context, email string) (*Member, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	id, ok := repository.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(repository.byID[id]), nil
}

func (repository *MemoryRepository) List(_ context.Context, params pagination.Params) ([]*Member, int, error) {
	repository.mu.RLock()
	all := make([]*Member, 0, len(repository.byID))
	for _, stored := range repository.byID {
		all = append(all, clone(stored))
	}
	repository.mu.RUnlock()

	slices.SortFunc(all, func(a, b *Member) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	start := min(params.Offset(), len(all))
	end := min(start+params.Size, len(all))
	return all[start:end], len(all), nil
}

func (repository *MemoryRepository) Update(_ context.Context, member *Member) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.byID[member.ID]
	if !ok {
		return ErrNotFound
	}

	member.UpdatedAt = time.Now()
	stored.Name = member.Name
	stored.Phone = member.Phone
	stored.Status = member.Status
	stored.UpdatedAt = member.UpdatedAt
	return nil
}

func clone(member *Member) *Member {
	copied := *member
	copied.Roles = slices.Clone(member.Roles)
	return &copied
}
