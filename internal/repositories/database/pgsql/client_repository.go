package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, organization_id, name, phone, email, document, notes, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ClientID,
		&c.OrganizationID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Document,
		&c.Notes,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
		&c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (client_id, organization_id, name, phone, email, document, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.OrganizationID,
		client.Name,
		client.Phone,
		client.Email,
		client.Document,
		client.Notes,
		client.CreatedAt,
		client.CreatedBy,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1 AND organization_id = $2 AND deleted_at IS NULL;`
	client, err := scanClient(r.Pool.QueryRow(ctx, query, clientID, organizationID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return client, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, organizationID string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE organization_id = $1 AND deleted_at IS NULL ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET name = $3, phone = $4, email = $5, document = $6, notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE client_id = $1 AND organization_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.OrganizationID,
		client.Name,
		client.Phone,
		client.Email,
		client.Document,
		client.Notes,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", client.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, organizationID, clientID, deletedBy string, now time.Time) error {
	query := `
		UPDATE clients
		SET deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE client_id = $1 AND organization_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, clientID, organizationID, now, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
