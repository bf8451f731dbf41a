package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"worksbill/internal/domain"
	"worksbill/internal/port"
)

type contractorRepo struct {
	db *sqlx.DB
}

// NewContractorRepo creates a new PostgreSQL-backed ContractorRepository.
func NewContractorRepo(db *sqlx.DB) port.ContractorRepository {
	return &contractorRepo{db: db}
}

func (r *contractorRepo) Create(ctx context.Context, c *domain.Contractor) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now().UTC()

	query := `INSERT INTO contractors (id, name, parentage, resident, registration, class, pan, gstin, account_number, created_at)
		VALUES (:id, :name, :parentage, :resident, :registration, :class, :pan, :gstin, :account_number, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("contractorRepo.Create: %w", err)
	}
	return nil
}

func (r *contractorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contractor, error) {
	var c domain.Contractor
	err := r.db.GetContext(ctx, &c, "SELECT * FROM contractors WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrContractorNotFound
		}
		return nil, fmt.Errorf("contractorRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *contractorRepo) List(ctx context.Context, offset, limit int) ([]domain.Contractor, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM contractors"); err != nil {
		return nil, 0, fmt.Errorf("contractorRepo.List count: %w", err)
	}

	contractors := []domain.Contractor{}
	err := r.db.SelectContext(ctx, &contractors,
		"SELECT * FROM contractors ORDER BY name ASC, created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("contractorRepo.List: %w", err)
	}
	return contractors, total, nil
}
