package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"worksbill/internal/domain"
	"worksbill/internal/port"
)

// CreateContractorInput is the DTO for registering a contractor.
type CreateContractorInput struct {
	Name          string
	Parentage     string
	Resident      string
	Registration  string
	Class         domain.ContractorClass
	PAN           string
	GSTIN         string
	AccountNumber string
}

// ContractorService defines the contractor registry contract.
type ContractorService interface {
	Create(ctx context.Context, input *CreateContractorInput) (*domain.Contractor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contractor, error)
	List(ctx context.Context, offset, limit int) ([]domain.Contractor, int, error)
}

type contractorService struct {
	contractorRepo port.ContractorRepository
}

// NewContractorService creates a new ContractorService implementation.
func NewContractorService(contractorRepo port.ContractorRepository) ContractorService {
	return &contractorService{contractorRepo: contractorRepo}
}

func (s *contractorService) Create(ctx context.Context, input *CreateContractorInput) (*domain.Contractor, error) {
	c := &domain.Contractor{
		Name:          strings.TrimSpace(input.Name),
		Parentage:     strings.TrimSpace(input.Parentage),
		Resident:      strings.TrimSpace(input.Resident),
		Registration:  strings.TrimSpace(input.Registration),
		Class:         domain.ContractorClass(strings.ToUpper(strings.TrimSpace(string(input.Class)))),
		PAN:           strings.ToUpper(strings.TrimSpace(input.PAN)),
		GSTIN:         strings.ToUpper(strings.TrimSpace(input.GSTIN)),
		AccountNumber: strings.TrimSpace(input.AccountNumber),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.contractorRepo.Create(ctx, c); err != nil {
		log.Printf("contractorService.Create: failed to create contractor %q: %v", c.Name, err)
		return nil, fmt.Errorf("creating contractor: %w", err)
	}

	log.Printf("contractorService.Create: contractor %s (%s) registered", c.ID, c.Name)
	return c, nil
}

func (s *contractorService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contractor, error) {
	return s.contractorRepo.GetByID(ctx, id)
}

func (s *contractorService) List(ctx context.Context, offset, limit int) ([]domain.Contractor, int, error) {
	return s.contractorRepo.List(ctx, offset, limit)
}
