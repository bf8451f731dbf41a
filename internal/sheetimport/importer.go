package sheetimport

import (
	"context"
	"errors"
	"fmt"
	"log"

	"worksbill/internal/domain"
)

// BudgetWriter persists budget ceiling rows.
type BudgetWriter interface {
	Create(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error)
}

// WorkWriter persists works.
type WorkWriter interface {
	Create(ctx context.Context, work *domain.Work) (*domain.Work, error)
}

// Summary counts what an import wrote.
type Summary struct {
	PlanBudget    int        `json:"plan_budget"`
	NonPlanBudget int        `json:"non_plan_budget"`
	Works         int        `json:"works"`
	Skipped       []RowError `json:"skipped"`
}

// Importer writes a parsed workbook through the budget and work services.
type Importer struct {
	budgets BudgetWriter
	works   WorkWriter
}

// NewImporter creates an Importer.
func NewImporter(budgets BudgetWriter, works WorkWriter) *Importer {
	return &Importer{budgets: budgets, works: works}
}

// Import inserts every row of wb. Rows rejected by validation are recorded as
// skipped; any other failure aborts the import.
func (im *Importer) Import(ctx context.Context, wb *Workbook) (*Summary, error) {
	sum := &Summary{Skipped: append([]RowError(nil), wb.Skipped...)}

	budgetSheets := []struct {
		sheet string
		rows  []domain.BudgetEntry
		count *int
	}{
		{SheetBudgetPlan, wb.PlanBudget, &sum.PlanBudget},
		{SheetBudgetNonPlan, wb.NonPlanBudget, &sum.NonPlanBudget},
	}
	for _, bs := range budgetSheets {
		for i := range bs.rows {
			if _, err := im.budgets.Create(ctx, &bs.rows[i]); err != nil {
				if skip, ok := rejected(bs.sheet, i, err); ok {
					sum.Skipped = append(sum.Skipped, skip)
					continue
				}
				return sum, fmt.Errorf("importing %s: %w", bs.sheet, err)
			}
			*bs.count++
		}
	}

	for i := range wb.Works {
		if _, err := im.works.Create(ctx, &wb.Works[i]); err != nil {
			if skip, ok := rejected(SheetWorks, i, err); ok {
				sum.Skipped = append(sum.Skipped, skip)
				continue
			}
			return sum, fmt.Errorf("importing %s: %w", SheetWorks, err)
		}
		sum.Works++
	}

	log.Printf("sheet import: %d plan budget, %d non-plan budget, %d works, %d skipped",
		sum.PlanBudget, sum.NonPlanBudget, sum.Works, len(sum.Skipped))
	return sum, nil
}

// rejected reports validation failures as skipped rows. Row numbers refer to
// the position among parsed rows, not the sheet line.
func rejected(sheet string, i int, err error) (RowError, bool) {
	if !errors.Is(err, domain.ErrValidation) && !errors.Is(err, domain.ErrInvalidBillType) {
		return RowError{}, false
	}
	return RowError{Sheet: sheet, Row: i + 1, Err: err.Error()}, true
}
