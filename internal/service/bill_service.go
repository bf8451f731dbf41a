package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"worksbill/internal/billrecord"
	"worksbill/internal/config"
	"worksbill/internal/deduction"
	"worksbill/internal/domain"
	"worksbill/internal/numwords"
	"worksbill/internal/port"
	"worksbill/internal/validator"
	"worksbill/internal/validator/bill"
)

// BillInput is the DTO for computing, validating and creating a bill.
// Nil percentages fall back to the configured defaults.
type BillInput struct {
	BillType         string
	ContractorID     uuid.UUID
	MajorHead        string
	Scheme           string
	Workcode         string
	Nomenclature     string
	BilledAmount     *decimal.Decimal
	DeductPayments   decimal.Decimal
	RestrictedTo     string
	IncomeTaxPercent *decimal.Decimal
	DepositPercent   *decimal.Decimal
	CessPercent      *decimal.Decimal
	CGSTPercent      *decimal.Decimal
	SGSTPercent      *decimal.Decimal
	CCBill           string
	FinalBill        bool
}

// ComputeResult is the live deduction preview for a bill form.
type ComputeResult struct {
	BillType       domain.BillType  `json:"bill_type"`
	Payable        decimal.Decimal  `json:"payable"`
	RestrictedTo   decimal.Decimal  `json:"restricted_to_amount"`
	Rates          deduction.Rates  `json:"rates"`
	GSTApplicable  bool             `json:"gst_applicable"`
	Deductions     deduction.Result `json:"deductions"`
	NetAmountWords string           `json:"net_amount_words"`
}

// BillService defines the bill computation and submission contract.
type BillService interface {
	Compute(ctx context.Context, input *BillInput) (*ComputeResult, error)
	Validate(ctx context.Context, input *BillInput) (*validator.Result, error)
	Create(ctx context.Context, input *BillInput) (*domain.Bill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error)
	List(ctx context.Context, filters domain.BillFilters) ([]domain.Bill, int, error)
}

type billService struct {
	billRepo       port.BillRepository
	contractorRepo port.ContractorRepository
	works          WorkService
	budgets        BudgetService
	engine         *validator.Engine
	calc           *deduction.Calculator
	cfg            *config.BillConfig
	now            func() time.Time
}

// NewBillService creates a new BillService implementation.
func NewBillService(
	billRepo port.BillRepository,
	contractorRepo port.ContractorRepository,
	workRepo port.WorkRepository,
	budgetRepo port.BudgetRepository,
	engine *validator.Engine,
	cfg *config.BillConfig,
) BillService {
	return &billService{
		billRepo:       billRepo,
		contractorRepo: contractorRepo,
		works:          NewWorkService(workRepo),
		budgets:        NewBudgetService(budgetRepo),
		engine:         engine,
		calc:           deduction.NewCalculator(cfg.GSTInclusiveScheme, cfg.GSTInclusiveDivisor),
		cfg:            cfg,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// resolved is a bill input with every reference looked up.
type resolved struct {
	in         *bill.Input
	billType   domain.BillType
	contractor *domain.Contractor
	gst        bool
}

func (s *billService) resolve(ctx context.Context, input *BillInput) (*resolved, error) {
	r := &resolved{in: &bill.Input{
		BillType:       input.BillType,
		MajorHead:      input.MajorHead,
		Scheme:         input.Scheme,
		Workcode:       input.Workcode,
		Nomenclature:   input.Nomenclature,
		BilledAmount:   input.BilledAmount,
		DeductPayments: input.DeductPayments,
		RestrictedTo:   input.RestrictedTo,
		CessMax:        s.cfg.CessMaxPercent,
		CCBill:         input.CCBill,
	}}

	if input.ContractorID != uuid.Nil {
		c, err := s.contractorRepo.GetByID(ctx, input.ContractorID)
		switch {
		case err == nil:
			r.contractor = c
			r.in.Payee = c.Name
			r.in.AccountNumber = c.AccountNumber
		case errors.Is(err, domain.ErrContractorNotFound), errors.Is(err, domain.ErrNotFound):
			// reported as a missing payee
		default:
			return nil, fmt.Errorf("loading contractor: %w", err)
		}
	}

	r.billType, _ = domain.ParseBillType(input.BillType)
	switch r.billType {
	case domain.BillTypePlan:
		w, err := s.works.Resolve(ctx, input.MajorHead, input.Scheme, input.Workcode, input.Nomenclature)
		if err != nil {
			return nil, err
		}
		r.in.Work = w
	case domain.BillTypeNonPlan:
		if strings.TrimSpace(input.MajorHead) != "" && strings.TrimSpace(input.Scheme) != "" {
			e, err := s.budgets.FindEntry(ctx, r.billType, input.MajorHead, input.Scheme)
			if err != nil {
				return nil, err
			}
			r.in.Budget = e
		}
	}

	// the form pre-fills restricted-to with the payable amount
	if strings.TrimSpace(r.in.RestrictedTo) == "" {
		if payable, ok := r.in.Payable(); ok {
			r.in.RestrictedTo = payable.String()
		}
	}

	r.gst = deduction.GSTApplicable(r.billType, r.in.Work, s.cfg.GSTThreshold)
	r.in.Rates = s.rates(input, r.gst)
	return r, nil
}

func (s *billService) rates(input *BillInput, gst bool) deduction.Rates {
	pick := func(p *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
		if p == nil {
			return def
		}
		return *p
	}
	r := deduction.Rates{
		IncomeTax: pick(input.IncomeTaxPercent, s.cfg.DefaultIncomeTaxPercent),
		Deposit:   pick(input.DepositPercent, s.cfg.DefaultDepositPercent),
		Cess:      pick(input.CessPercent, s.cfg.DefaultCessPercent),
		CGST:      pick(input.CGSTPercent, decimal.Zero),
		SGST:      pick(input.SGSTPercent, decimal.Zero),
	}
	if !gst {
		return r.WithoutGST()
	}
	return r
}

func (s *billService) Compute(ctx context.Context, input *BillInput) (*ComputeResult, error) {
	r, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	// the preview needs a parsable amount and usable rates, checked by the same rules as submission
	check := s.engine.ValidateRules(ctx, r.in, "amount.restricted_to", "req.billed_amount", "amount.percent")
	if !check.Valid {
		return nil, check.Err()
	}
	restricted, _ := bill.ParseAmount(r.in.RestrictedTo)

	payable, _ := r.in.Payable()
	ded := s.calc.Compute(deduction.Input{RestrictedTo: restricted, Rates: r.in.Rates, Scheme: input.Scheme})
	return &ComputeResult{
		BillType:       r.billType,
		Payable:        payable,
		RestrictedTo:   restricted,
		Rates:          r.in.Rates,
		GSTApplicable:  r.gst,
		Deductions:     ded,
		NetAmountWords: numwords.Amount(ded.NetAmount),
	}, nil
}

func (s *billService) Validate(ctx context.Context, input *BillInput) (*validator.Result, error) {
	r, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.engine.Validate(ctx, r.in), nil
}

func (s *billService) Create(ctx context.Context, input *BillInput) (*domain.Bill, error) {
	r, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	// always re-validated, whatever the client saw on /bills/validate
	result := s.engine.Validate(ctx, r.in)
	if !result.Valid {
		log.Printf("billService.Create: rejected %s bill for %q with %d violations",
			r.billType, r.in.Payee, len(result.Violations))
		return nil, result.Err()
	}

	restricted, _ := bill.ParseAmount(r.in.RestrictedTo)
	ded := s.calc.Compute(deduction.Input{RestrictedTo: restricted, Rates: r.in.Rates, Scheme: input.Scheme})

	b := billrecord.Assemble(billrecord.Input{
		Payee: billrecord.Payee{
			ContractorID:  r.contractor.ID,
			Name:          r.contractor.Name,
			AccountNumber: r.contractor.AccountNumber,
		},
		Work: r.in.Work,
		Selection: billrecord.Selection{
			BillType:     r.billType,
			MajorHead:    input.MajorHead,
			Scheme:       input.Scheme,
			Workcode:     input.Workcode,
			Nomenclature: input.Nomenclature,
		},
		Amounts: billrecord.Amounts{
			Billed:         *r.in.BilledAmount,
			DeductPayments: r.in.DeductPayments,
			RestrictedTo:   restricted,
		},
		Rates:      r.in.Rates,
		Deductions: ded,
		Meta:       billrecord.Meta{CCBill: strings.TrimSpace(input.CCBill), FinalBill: input.FinalBill, Now: s.now()},
	})

	opts := port.BillCreateOptions{
		UpdateExpenditure: s.cfg.ExpenditureUpdate == domain.ExpenditureSync && r.billType == domain.BillTypePlan,
		Recheck:           s.recheck(ctx, r.in),
	}
	if err := s.billRepo.Create(ctx, b, opts); err != nil {
		log.Printf("billService.Create: failed to persist bill for %q: %v", b.Payee, err)
		if errors.Is(err, domain.ErrCeilingChanged) || errors.Is(err, domain.ErrWorkNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("persisting bill: %w", err)
	}

	log.Printf("billService.Create: bill %d (%s) created for %q, net %s", b.BillNo, b.ID, b.Payee, b.NetAmount.StringFixed(2))
	return b, nil
}

// recheck re-runs the work ceilings against the row locked by the repository.
func (s *billService) recheck(ctx context.Context, in *bill.Input) func(*domain.Work) error {
	return func(locked *domain.Work) error {
		again := *in
		again.Work = locked
		var msgs []string
		for _, v := range s.engine.Validate(ctx, &again).Violations {
			if strings.HasPrefix(v.Rule, "ceiling.") {
				msgs = append(msgs, v.Message)
			}
		}
		if len(msgs) > 0 {
			return fmt.Errorf("%w: %s", domain.ErrCeilingChanged, strings.Join(msgs, "; "))
		}
		return nil
	}
}

func (s *billService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error) {
	return s.billRepo.GetByID(ctx, id)
}

func (s *billService) List(ctx context.Context, filters domain.BillFilters) ([]domain.Bill, int, error) {
	if err := checkRange(domain.ReportFilters{From: filters.From, To: filters.To}); err != nil {
		return nil, 0, err
	}
	return s.billRepo.List(ctx, filters)
}
