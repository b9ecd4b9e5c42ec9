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

type PgxSessionRepository struct {
	BaseRepository
}

func newPgxSessionRepository(pool *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	query := `
		INSERT INTO sessions (session_id, user_id, active_organization_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		session.SessionID,
		session.UserID,
		session.ActiveOrganizationID,
		session.ExpiresAt,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `
		SELECT session_id, user_id, active_organization_id, expires_at, created_at
		FROM sessions
		WHERE session_id = $1;
	`
	var s domain.Session
	err := r.Pool.QueryRow(ctx, query, sessionID).Scan(
		&s.SessionID,
		&s.UserID,
		&s.ActiveOrganizationID,
		&s.ExpiresAt,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session %s: %w", sessionID, err)
	}
	return &s, nil
}

func (r *PgxSessionRepository) SetActiveOrganization(ctx context.Context, sessionID string, organizationID *string) error {
	query := `UPDATE sessions SET active_organization_id = $2 WHERE session_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, sessionID, organizationID)
	if err != nil {
		return fmt.Errorf("failed to set active organization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1;`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}
