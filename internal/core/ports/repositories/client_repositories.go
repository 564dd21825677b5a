package repositories

import (
	"context"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
}
