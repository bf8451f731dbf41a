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

type workRepo struct {
	db *sqlx.DB
}

// NewWorkRepo creates a new PostgreSQL-backed WorkRepository.
func NewWorkRepo(db *sqlx.DB) port.WorkRepository {
	return &workRepo{db: db}
}

const insertWorkQuery = `INSERT INTO works (
	id, major_head, scheme, workcode, nomenclature, classification,
	aaa_number, aaa_date, aaa_amount, ts_number, ts_date, ts_amount,
	allot_number, allot_date, allot_amount, agreement_number, loi_number, loi_date,
	time_of_completion, start_date, completion_date, expenditure, created_at
) VALUES (
	:id, :major_head, :scheme, :workcode, :nomenclature, :classification,
	:aaa_number, :aaa_date, :aaa_amount, :ts_number, :ts_date, :ts_amount,
	:allot_number, :allot_date, :allot_amount, :agreement_number, :loi_number, :loi_date,
	:time_of_completion, :start_date, :completion_date, :expenditure, :created_at
)`

func (r *workRepo) Create(ctx context.Context, w *domain.Work) error {
	w.ID = uuid.New()
	w.CreatedAt = time.Now().UTC()

	if _, err := r.db.NamedExecContext(ctx, insertWorkQuery, w); err != nil {
		return fmt.Errorf("workRepo.Create: %w", err)
	}
	return nil
}

func (r *workRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	var w domain.Work
	err := r.db.GetContext(ctx, &w, "SELECT * FROM works WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWorkNotFound
		}
		return nil, fmt.Errorf("workRepo.GetByID: %w", err)
	}
	return &w, nil
}

func (r *workRepo) List(ctx context.Context, offset, limit int) ([]domain.Work, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM works"); err != nil {
		return nil, 0, fmt.Errorf("workRepo.List count: %w", err)
	}

	works := []domain.Work{}
	err := r.db.SelectContext(ctx, &works,
		"SELECT * FROM works ORDER BY major_head, scheme, workcode, nomenclature LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("workRepo.List: %w", err)
	}
	return works, total, nil
}

func (r *workRepo) ListByHead(ctx context.Context, majorHead, scheme string) ([]domain.Work, error) {
	works := []domain.Work{}
	err := r.db.SelectContext(ctx, &works,
		`SELECT * FROM works
		 WHERE LOWER(TRIM(major_head)) = LOWER(TRIM($1)) AND LOWER(TRIM(scheme)) = LOWER(TRIM($2))
		 ORDER BY workcode, created_at`, majorHead, scheme)
	if err != nil {
		return nil, fmt.Errorf("workRepo.ListByHead: %w", err)
	}
	return works, nil
}

func (r *workRepo) ListByCode(ctx context.Context, workcode string) ([]domain.Work, error) {
	works := []domain.Work{}
	err := r.db.SelectContext(ctx, &works,
		"SELECT * FROM works WHERE LOWER(TRIM(workcode)) = LOWER(TRIM($1)) ORDER BY nomenclature, created_at", workcode)
	if err != nil {
		return nil, fmt.Errorf("workRepo.ListByCode: %w", err)
	}
	return works, nil
}
