// Package sheetimport loads budget and work master data from an .xlsx workbook
// with the sheets budget_plan, budget_np and works.
package sheetimport

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"worksbill/internal/domain"
)

// Sheet names read from the workbook.
const (
	SheetBudgetPlan    = "budget_plan"
	SheetBudgetNonPlan = "budget_np"
	SheetWorks         = "works"
)

// ErrNoSheets is returned when the workbook has none of the expected sheets.
var ErrNoSheets = errors.New("workbook has no budget_plan, budget_np or works sheet")

// RowError records a row that could not be read.
type RowError struct {
	Sheet string `json:"sheet"`
	Row   int    `json:"row"`
	Err   string `json:"error"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s row %d: %s", e.Sheet, e.Row, e.Err)
}

// Workbook is the parsed content of an import file.
type Workbook struct {
	PlanBudget    []domain.BudgetEntry
	NonPlanBudget []domain.BudgetEntry
	Works         []domain.Work
	Skipped       []RowError
}

// header aliases, keyed by normalized header text
var (
	majorHeadCols    = []string{"major head", "majorhead", "mh"}
	schemeCols       = []string{"scheme", "detailed head", "detailedhead", "sub head"}
	amountCols       = []string{"amount", "budget amount", "budget"}
	workcodeCols     = []string{"workcode", "work code"}
	nomenclatureCols = []string{"nomenclature", "work name", "name of work"}
)

// ReadFile opens and parses the workbook at path.
func ReadFile(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parse(f)
}

// Read parses a workbook from r.
func Read(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parse(f)
}

func parse(f *excelize.File) (*Workbook, error) {
	present := make(map[string]string)
	for _, name := range f.GetSheetList() {
		present[strings.ToLower(strings.TrimSpace(name))] = name
	}

	wb := &Workbook{}
	found := false
	if name, ok := present[SheetBudgetPlan]; ok {
		found = true
		rows, err := sheetRows(f, name)
		if err != nil {
			return nil, err
		}
		wb.PlanBudget = wb.readBudget(SheetBudgetPlan, domain.BillTypePlan, rows)
	}
	if name, ok := present[SheetBudgetNonPlan]; ok {
		found = true
		rows, err := sheetRows(f, name)
		if err != nil {
			return nil, err
		}
		wb.NonPlanBudget = wb.readBudget(SheetBudgetNonPlan, domain.BillTypeNonPlan, rows)
	}
	if name, ok := present[SheetWorks]; ok {
		found = true
		rows, err := sheetRows(f, name)
		if err != nil {
			return nil, err
		}
		wb.Works = wb.readWorks(rows)
	}
	if !found {
		return nil, ErrNoSheets
	}
	return wb, nil
}

// sheetRows returns raw cell values so dates arrive as Excel serial numbers.
func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// columns maps normalized header text to its index.
type columns map[string]int

func headerIndex(header []string) columns {
	cols := make(columns, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := cols[key]; !dup && key != "" {
			cols[key] = i
		}
	}
	return cols
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer("_", " ", ".", " ", "(₹)", " ", "(rs)", " ").Replace(h)
	return strings.Join(strings.Fields(h), " ")
}

func (c columns) get(row []string, aliases ...string) string {
	for _, a := range aliases {
		if i, ok := c[a]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
	}
	return ""
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (wb *Workbook) skip(sheet string, row int, err error) {
	wb.Skipped = append(wb.Skipped, RowError{Sheet: sheet, Row: row, Err: err.Error()})
}

func (wb *Workbook) readBudget(sheet string, billType domain.BillType, rows [][]string) []domain.BudgetEntry {
	entries := []domain.BudgetEntry{}
	if len(rows) == 0 {
		return entries
	}
	cols := headerIndex(rows[0])
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		line := i + 2
		amount, err := parseAmount(cols.get(row, amountCols...))
		if err != nil {
			wb.skip(sheet, line, fmt.Errorf("amount: %w", err))
			continue
		}
		e := domain.BudgetEntry{
			BillType:  billType,
			MajorHead: cols.get(row, majorHeadCols...),
			Scheme:    cols.get(row, schemeCols...),
			Amount:    amount,
		}
		if err := e.Validate(); err != nil {
			wb.skip(sheet, line, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

func (wb *Workbook) readWorks(rows [][]string) []domain.Work {
	works := []domain.Work{}
	if len(rows) == 0 {
		return works
	}
	cols := headerIndex(rows[0])
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		line := i + 2
		w, err := readWork(cols, row)
		if err != nil {
			wb.skip(SheetWorks, line, err)
			continue
		}
		if err := w.Validate(); err != nil {
			wb.skip(SheetWorks, line, err)
			continue
		}
		works = append(works, *w)
	}
	return works
}

func readWork(cols columns, row []string) (*domain.Work, error) {
	w := &domain.Work{
		MajorHead:        cols.get(row, majorHeadCols...),
		Scheme:           cols.get(row, schemeCols...),
		Workcode:         cols.get(row, workcodeCols...),
		Nomenclature:     cols.get(row, nomenclatureCols...),
		Classification:   cols.get(row, "classification"),
		AAANumber:        cols.get(row, "aaa no", "aaa number"),
		TSNumber:         cols.get(row, "ts no", "ts number"),
		AllotNumber:      cols.get(row, "allot no", "allot number"),
		AgreementNumber:  cols.get(row, "agreement no", "agreement number"),
		LOINumber:        cols.get(row, "loi no", "loi number"),
		TimeOfCompletion: cols.get(row, "time of completion"),
	}

	amounts := []struct {
		dst     *decimal.Decimal
		name    string
		aliases []string
	}{
		{&w.AAAAmount, "aaa amount", []string{"aaa amt", "aaa amount"}},
		{&w.TSAmount, "ts amount", []string{"ts amt", "ts amount"}},
		{&w.AllotAmount, "allot amount", []string{"allot amt", "allot amount", "allotment amount"}},
		{&w.Expenditure, "expenditure", []string{"expenditure"}},
	}
	for _, a := range amounts {
		d, err := parseAmount(cols.get(row, a.aliases...))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.name, err)
		}
		*a.dst = d
	}

	dates := []struct {
		dst     **time.Time
		name    string
		aliases []string
	}{
		{&w.AAADate, "aaa date", []string{"aaa date"}},
		{&w.TSDate, "ts date", []string{"ts date"}},
		{&w.AllotDate, "allot date", []string{"allot date"}},
		{&w.LOIDate, "loi date", []string{"loi date"}},
		{&w.StartDate, "start date", []string{"start date", "date of start"}},
		{&w.CompletionDate, "completion date", []string{"completion date", "date of completion"}},
	}
	for _, d := range dates {
		t, err := parseDate(cols.get(row, d.aliases...))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = t
	}
	return w, nil
}

// parseAmount accepts "1,18,000", "₹ 5000.50" and blank (zero).
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer(",", "", "₹", "", " ", "").Replace(s)
	if clean == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(clean)
}

var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006", "2/1/2006", "02.01.2006"}

// parseDate accepts an Excel serial date or a day-first text date. Blank is nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}
