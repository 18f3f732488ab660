package billing

import (
	"context"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrganizationService handles counterparty organization operations
type OrganizationService struct {
	organizationRepo billing.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(organizationRepo billing.OrganizationRepository) *OrganizationService {
	return &OrganizationService{organizationRepo: organizationRepo}
}

// Create creates a new organization
func (s *OrganizationService) Create(ctx context.Context, companyID uuid.UUID, req CreateOrganizationRequest) (*OrganizationResponse, error) {
	organization, err := billing.NewOrganization(companyID, req.Name, req.TaxesNumber, req.Address, req.PhoneNumber, req.Email, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.organizationRepo.Save(ctx, organization); err != nil {
		return nil, err
	}
	response := ToOrganizationResponse(organization)
	return &response, nil
}

// GetByID retrieves an organization within the company
func (s *OrganizationService) GetByID(ctx context.Context, companyID, organizationID uuid.UUID) (*OrganizationResponse, error) {
	organization, err := s.organizationRepo.FindByIDForCompany(ctx, companyID, organizationID)
	if err != nil {
		return nil, err
	}
	response := ToOrganizationResponse(organization)
	return &response, nil
}

// List returns a page of the company's organizations
func (s *OrganizationService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[OrganizationResponse], error) {
	organizations, total, err := s.organizationRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrganizationResponse, len(organizations))
	for i := range organizations {
		responses[i] = ToOrganizationResponse(&organizations[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies a sparse update to an organization, creating or merging its
// bank details row when present in the request.
func (s *OrganizationService) Update(ctx context.Context, companyID, organizationID uuid.UUID, req UpdateOrganizationRequest) (*OrganizationResponse, error) {
	organization, err := s.organizationRepo.FindByIDForCompany(ctx, companyID, organizationID)
	if err != nil {
		return nil, err
	}

	merged := organization.Merge(billing.OrganizationPatch{
		Name:        req.Name,
		TaxesNumber: req.TaxesNumber,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Description: req.Description,
	})

	var details *identity.BankDetails
	if req.BankDetail != nil {
		patch := identity.BankDetailsPatch{
			Name:              req.BankDetail.Name,
			Address:           req.BankDetail.Address,
			BankNumber:        req.BankDetail.BankNumber,
			SettlementAccount: req.BankDetail.SettlementAccount,
			Details:           req.BankDetail.Details,
		}
		if organization.BankDetail != nil {
			d := organization.BankDetail.Merge(patch)
			details = &d
		} else {
			d := identity.NewBankDetails("", "", "", "", "").Merge(patch)
			details = &d
		}
	}

	if err := s.organizationRepo.SaveWithBankDetails(ctx, &merged, details); err != nil {
		return nil, err
	}

	updated, err := s.organizationRepo.FindByIDForCompany(ctx, companyID, organizationID)
	if err != nil {
		return nil, err
	}
	response := ToOrganizationResponse(updated)
	return &response, nil
}

// Delete removes an organization
func (s *OrganizationService) Delete(ctx context.Context, companyID, organizationID uuid.UUID) error {
	return s.organizationRepo.DeleteForCompany(ctx, companyID, organizationID)
}
