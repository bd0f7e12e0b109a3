package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice.app/billing/repository/bills"
	"backoffice.app/billing/repository/directory"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Bills     bills.Querier
	Directory directory.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Bills:     bills.New(db),
		Directory: directory.New(db),
	}
}
