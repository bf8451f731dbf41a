package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"worksbill/internal/domain"
	"worksbill/internal/port"
	"worksbill/internal/works"
)

// WorkOptionsQuery is the current budget selection for which work options are wanted.
type WorkOptionsQuery struct {
	BillType  domain.BillType
	MajorHead string
	Scheme    string
	Workcode  string
}

// WorkOptions lists the selectable workcodes and, once a workcode is chosen, its nomenclatures.
// Non Plan bills have no per-work selection, so both lists are empty for them.
type WorkOptions struct {
	BillType               domain.BillType `json:"bill_type"`
	Workcodes              []string        `json:"workcodes"`
	WorkcodesAvailable     bool            `json:"workcodes_available"`
	Nomenclatures          []string        `json:"nomenclatures"`
	NomenclaturesAvailable bool            `json:"nomenclatures_available"`
	Works                  []domain.Work   `json:"works"`
}

// WorkService defines the sanctioned-work contract.
type WorkService interface {
	Create(ctx context.Context, work *domain.Work) (*domain.Work, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Work, error)
	List(ctx context.Context, offset, limit int) ([]domain.Work, int, error)
	Options(ctx context.Context, query WorkOptionsQuery) (*WorkOptions, error)
	// Resolve returns the work record for a Plan selection, or nil when it does not resolve.
	Resolve(ctx context.Context, majorHead, scheme, workcode, nomenclature string) (*domain.Work, error)
}

type workService struct {
	workRepo port.WorkRepository
}

// NewWorkService creates a new WorkService implementation.
func NewWorkService(workRepo port.WorkRepository) WorkService {
	return &workService{workRepo: workRepo}
}

func (s *workService) Create(ctx context.Context, work *domain.Work) (*domain.Work, error) {
	if err := work.Validate(); err != nil {
		return nil, err
	}
	if err := s.workRepo.Create(ctx, work); err != nil {
		log.Printf("workService.Create: failed to create work %q: %v", work.Workcode, err)
		return nil, fmt.Errorf("creating work: %w", err)
	}
	log.Printf("workService.Create: work %s (%s / %s) created", work.ID, work.Workcode, work.Nomenclature)
	return work, nil
}

func (s *workService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	return s.workRepo.GetByID(ctx, id)
}

func (s *workService) List(ctx context.Context, offset, limit int) ([]domain.Work, int, error) {
	return s.workRepo.List(ctx, offset, limit)
}

func (s *workService) Options(ctx context.Context, q WorkOptionsQuery) (*WorkOptions, error) {
	opts := &WorkOptions{
		BillType:      q.BillType,
		Workcodes:     []string{},
		Nomenclatures: []string{},
		Works:         []domain.Work{},
	}
	if q.BillType != domain.BillTypePlan {
		return opts, nil
	}

	rows, err := s.workRepo.ListByHead(ctx, q.MajorHead, q.Scheme)
	if err != nil {
		return nil, fmt.Errorf("listing works by head: %w", err)
	}
	opts.Workcodes, opts.WorkcodesAvailable = works.WorkcodeOptions(q.MajorHead, q.Scheme, rows)

	if q.Workcode == "" || works.IsSentinel(q.Workcode) {
		return opts, nil
	}
	res := works.ResolvePlanWork(q.Workcode, rows)
	opts.Nomenclatures = res.Nomenclatures
	opts.NomenclaturesAvailable = res.Available
	for _, n := range res.Nomenclatures {
		if w, ok := res.Record(n); ok {
			opts.Works = append(opts.Works, *w)
		}
	}
	return opts, nil
}

func (s *workService) Resolve(ctx context.Context, majorHead, scheme, workcode, nomenclature string) (*domain.Work, error) {
	if workcode == "" || works.IsSentinel(workcode) {
		return nil, nil
	}
	rows, err := s.workRepo.ListByCode(ctx, workcode)
	if err != nil {
		return nil, fmt.Errorf("listing works by code: %w", err)
	}

	// the workcode must belong to the selected major head and scheme
	inHead := rows[:0:0]
	for i := range rows {
		if domain.SameKey(rows[i].MajorHead, majorHead) && domain.SameKey(rows[i].Scheme, scheme) {
			inHead = append(inHead, rows[i])
		}
	}

	w, ok := works.ResolvePlanWork(workcode, inHead).Record(nomenclature)
	if !ok {
		return nil, nil
	}
	return w, nil
}
