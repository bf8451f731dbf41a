package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"worksbill/internal/budget"
	"worksbill/internal/domain"
	"worksbill/internal/port"
)

// BudgetOptions is the budget hierarchy for a bill type plus the schemes under the
// currently selected major head.
type BudgetOptions struct {
	*budget.Options
	SelectedMajorHead string   `json:"selected_major_head"`
	Schemes           []string `json:"schemes"`
}

// BudgetService defines the budget ceiling contract.
type BudgetService interface {
	Create(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error)
	List(ctx context.Context, billType domain.BillType) ([]domain.BudgetEntry, error)
	Options(ctx context.Context, billType domain.BillType, majorHead string) (*BudgetOptions, error)
	// FindEntry returns the ceiling row for a selection, or nil when none matches.
	FindEntry(ctx context.Context, billType domain.BillType, majorHead, scheme string) (*domain.BudgetEntry, error)
}

type budgetService struct {
	budgetRepo port.BudgetRepository
}

// NewBudgetService creates a new BudgetService implementation.
func NewBudgetService(budgetRepo port.BudgetRepository) BudgetService {
	return &budgetService{budgetRepo: budgetRepo}
}

func (s *budgetService) Create(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error) {
	entry.MajorHead = strings.TrimSpace(entry.MajorHead)
	entry.Scheme = strings.TrimSpace(entry.Scheme)
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := s.budgetRepo.Create(ctx, entry); err != nil {
		log.Printf("budgetService.Create: failed to create %s budget %s/%s: %v", entry.BillType, entry.MajorHead, entry.Scheme, err)
		return nil, fmt.Errorf("creating budget entry: %w", err)
	}
	return entry, nil
}

func (s *budgetService) List(ctx context.Context, billType domain.BillType) ([]domain.BudgetEntry, error) {
	if !billType.Valid() {
		return nil, domain.ErrInvalidBillType
	}
	return s.budgetRepo.ListByType(ctx, billType)
}

func (s *budgetService) Options(ctx context.Context, billType domain.BillType, majorHead string) (*BudgetOptions, error) {
	planRows, npRows, err := s.rows(ctx, billType)
	if err != nil {
		return nil, err
	}
	opts := budget.Index(billType, planRows, npRows)
	out := &BudgetOptions{Options: opts, Schemes: []string{}}
	if strings.TrimSpace(majorHead) != "" {
		out.SelectedMajorHead = majorHead
		out.Schemes = opts.Schemes(majorHead)
	}
	return out, nil
}

func (s *budgetService) FindEntry(ctx context.Context, billType domain.BillType, majorHead, scheme string) (*domain.BudgetEntry, error) {
	planRows, npRows, err := s.rows(ctx, billType)
	if err != nil {
		return nil, err
	}
	e, ok := budget.FindEntry(budget.SourceRows(billType, planRows, npRows), majorHead, scheme)
	if !ok {
		return nil, nil
	}
	return e, nil
}

// rows loads only the table the bill type reads from.
func (s *budgetService) rows(ctx context.Context, billType domain.BillType) (planRows, npRows []domain.BudgetEntry, err error) {
	if !billType.Valid() {
		return nil, nil, domain.ErrInvalidBillType
	}
	entries, err := s.budgetRepo.ListByType(ctx, billType)
	if err != nil {
		return nil, nil, fmt.Errorf("listing %s budget: %w", billType, err)
	}
	if billType == domain.BillTypeNonPlan {
		return nil, entries, nil
	}
	return entries, nil, nil
}
