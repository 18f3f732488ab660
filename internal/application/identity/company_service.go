package identity

import (
	"context"

	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// CompanyService handles company profile operations
type CompanyService struct {
	companyRepo identity.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo identity.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// Get retrieves the company profile
func (s *CompanyService) Get(ctx context.Context, companyID uuid.UUID) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	response := ToCompanyResponse(company)
	return &response, nil
}

// Update applies a sparse update to the company, creating or merging its
// bank details row when present in the request.
func (s *CompanyService) Update(ctx context.Context, companyID uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	merged := company.Merge(identity.CompanyPatch{
		Name:        req.Name,
		Description: req.Description,
	})

	var details *identity.BankDetails
	if patch := toBankDetailsPatch(req.BankDetail); patch != nil {
		if company.BankDetail != nil {
			d := company.BankDetail.Merge(*patch)
			details = &d
		} else {
			d := identity.NewBankDetails("", "", "", "", "").Merge(*patch)
			details = &d
		}
	}

	if err := s.companyRepo.SaveWithBankDetails(ctx, &merged, details); err != nil {
		return nil, err
	}

	updated, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	response := ToCompanyResponse(updated)
	return &response, nil
}

// Delete removes the company
func (s *CompanyService) Delete(ctx context.Context, companyID uuid.UUID) error {
	return s.companyRepo.Delete(ctx, companyID)
}
