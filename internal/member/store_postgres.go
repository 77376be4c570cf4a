// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/memberauth/internal/platform/dberr"
	"github.com/taibuivan/memberauth/pkg/pagination"
	"github.com/taibuivan/memberauth/pkg/uuid"
)

const memberColumns = `id, email, passwordhash, name, phone, status, roles, createdat, updatedat`

// PostgresRepository implements [Repository] on the member.account table using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed member repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new member row.
func (repository *PostgresRepository) Create(ctx context.Context, member *Member) error {
	const query = `
		INSERT INTO member.account (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		member.ID,
		member.Email,
		member.PasswordHash,
		member.Name,
		member.Phone,
		member.Status,
		member.Roles,
		member.CreatedAt,
		member.UpdatedAt,
	)

	return translate(dberr.Wrap(err, "member_repo_create"))
}

// FindByID retrieves a member by its ID. A malformed ID is reported as
// [ErrNotFound] rather than sent to the UUID column.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Member, error) {
	if !uuid.Valid(id) {
		return nil, ErrNotFound
	}

	const query = `SELECT ` + memberColumns + ` FROM member.account WHERE id = $1`

	member, err := scanMember(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(dberr.Wrap(err, "member_repo_find_by_id"))
	}
	return member, nil
}

// FindByEmail retrieves a member by its normalized email.
func (repository *PostgresRepository) FindByEmail(ctx context.Context, email string) (*Member, error) {
	const query = `SELECT ` + memberColumns + ` FROM member.account WHERE email = $1`

	member, err := scanMember(repository.pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, translate(dberr.Wrap(err, "member_repo_find_by_email"))
	}
	return member, nil
}

// List returns one page of members, oldest first.
func (repository *PostgresRepository) List(ctx context.Context, params pagination.Params) ([]*Member, int, error) {
	const countQuery = `SELECT COUNT(*) FROM member.account`
	const listQuery = `
		SELECT ` + memberColumns + `
		FROM member.account
		ORDER BY createdat, id
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "member_repo_count")
	}

	rows, err := repository.pool.Query(ctx, listQuery, params.Size, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "member_repo_list")
	}
	defer rows.Close()

	members := make([]*Member, 0, params.Size)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "member_repo_list_scan")
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "member_repo_list_rows")
	}

	return members, total, nil
}

// Update writes the mutable fields of a member.
func (repository *PostgresRepository) Update(ctx context.Context, member *Member) error {
	const query = `
		UPDATE member.account
		SET name = $2, phone = $3, status = $4, updatedat = $5
		WHERE id = $1`

	member.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(ctx, query,
		member.ID,
		member.Name,
		member.Phone,
		member.Status,
		member.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "member_repo_update")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMember(row pgx.Row) (*Member, error) {
	member := &Member{}
	err := row.Scan(
		&member.ID,
		&member.Email,
		&member.PasswordHash,
		&member.Name,
		&member.Phone,
		&member.Status,
		&member.Roles,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return member, nil
}

// translate maps platform storage errors onto the member error vocabulary.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dberr.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, dberr.ErrDuplicate):
		return ErrDuplicateEmail
	default:
		return err
	}
}
