package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
)

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

// memberQuery aggregates extra roles alongside the membership row so a single
// query yields the full domain.Member.
const memberQuery = `
	SELECT m.member_id, m.user_id, m.organization_id, m.role, m.joined_at,
	       COALESCE(array_agg(mr.role ORDER BY mr.role) FILTER (WHERE mr.role IS NOT NULL), '{}')
	FROM members m
	LEFT JOIN member_roles mr ON mr.member_id = m.member_id
`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.MemberID,
		&m.UserID,
		&m.OrganizationID,
		&m.Role,
		&m.JoinedAt,
		&m.ExtraRoles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PgxMemberRepository) FindMember(ctx context.Context, userID, organizationID string) (*domain.Member, error) {
	query := memberQuery + `
		WHERE m.user_id = $1 AND m.organization_id = $2
		GROUP BY m.member_id;
	`
	member, err := scanMember(r.Pool.QueryRow(ctx, query, userID, organizationID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}
	return member, nil
}

func (r *PgxMemberRepository) ListMembersByOrganization(ctx context.Context, organizationID string) ([]domain.Member, error) {
	query := memberQuery + `
		WHERE m.organization_id = $1
		GROUP BY m.member_id
		ORDER BY m.joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()
	return collectMembers(rows)
}

func (r *PgxMemberRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]domain.Member, error) {
	query := memberQuery + `
		WHERE m.user_id = $1
		GROUP BY m.member_id
		ORDER BY m.joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}
	defer rows.Close()
	return collectMembers(rows)
}

func collectMembers(rows pgx.Rows) ([]domain.Member, error) {
	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func (r *PgxMemberRepository) AddMember(ctx context.Context, member domain.Member) error {
	query := `
		INSERT INTO members (member_id, user_id, organization_id, role, joined_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		member.MemberID,
		member.UserID,
		member.OrganizationID,
		member.Role,
		member.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) UpdateMemberRole(ctx context.Context, memberID string, role domain.MemberRole) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE members SET role = $2 WHERE member_id = $1;`, memberID, role)
	if err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetExtraRoles replaces the extra-role set atomically.
func (r *PgxMemberRepository) SetExtraRoles(ctx context.Context, memberID string, roles []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM member_roles WHERE member_id = $1;`, memberID); err != nil {
		return fmt.Errorf("failed to clear extra roles: %w", err)
	}

	batch := &pgx.Batch{}
	for _, role := range roles {
		batch.Queue(`INSERT INTO member_roles (member_id, role) VALUES ($1, $2);`, memberID, role)
	}
	br := tx.SendBatch(ctx, batch)
	for range roles {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert extra role: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close extra-role batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxMemberRepository) RemoveMember(ctx context.Context, memberID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM members WHERE member_id = $1;`, memberID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
