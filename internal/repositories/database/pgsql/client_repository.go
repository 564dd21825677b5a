package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	"github.com/SscSPs/microfinance_backend/internal/models"
	"github.com/SscSPs/microfinance_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// FindClientByID retrieves the name fields of a client.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, client_number, first_name, last_name
		FROM clients
		WHERE client_id = $1;
	`
	var m models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&m.ClientID,
		&m.ClientNumber,
		&m.FirstName,
		&m.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}

	client := mapping.ToDomainClient(m)
	return &client, nil
}
