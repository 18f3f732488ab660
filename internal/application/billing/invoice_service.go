package billing

import (
	"context"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/catalog"
	"github.com/finvoice/backend/internal/domain/identity"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/logger"
	"github.com/finvoice/backend/internal/infrastructure/mail"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvoiceService handles invoice lifecycle operations
type InvoiceService struct {
	invoiceRepo      billing.InvoiceRepository
	organizationRepo billing.OrganizationRepository
	employeeRepo     identity.EmployeeRepository
	companyRepo      identity.CompanyRepository
	productRepo      catalog.ProductRepository
	mailer           mail.Sender
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	organizationRepo billing.OrganizationRepository,
	employeeRepo identity.EmployeeRepository,
	companyRepo identity.CompanyRepository,
	productRepo catalog.ProductRepository,
	mailer mail.Sender,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:      invoiceRepo,
		organizationRepo: organizationRepo,
		employeeRepo:     employeeRepo,
		companyRepo:      companyRepo,
		productRepo:      productRepo,
		mailer:           mailer,
	}
}

// Create assembles and persists a new invoice in review state. Every
// referenced product, the approver and the organization must belong to the
// caller's company.
func (s *InvoiceService) Create(ctx context.Context, companyID uuid.UUID, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	organization, err := s.organizationRepo.FindByIDForCompany(ctx, companyID, req.OrganizationID)
	if err != nil {
		return nil, err
	}
	approver, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, req.ApproverID)
	if err != nil {
		return nil, err
	}

	items := make([]billing.PaymentItem, 0, len(req.PaymentItems))
	for _, itemReq := range req.PaymentItems {
		product, err := s.productRepo.FindByIDForCompany(ctx, companyID, itemReq.ProductID)
		if err != nil {
			return nil, err
		}
		item, err := billing.NewPaymentItem(product, itemReq.Price, itemReq.Amount)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	invoice, err := billing.NewInvoice(companyID, billing.InvoiceType(req.Type), req.PayTo, organization, approver, items)
	if err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("type", string(invoice.Type)),
		zap.String("total_price", invoice.TotalPrice.String()),
	)

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice within the company
func (s *InvoiceService) GetByID(ctx context.Context, companyID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List returns a page of the company's invoices
func (s *InvoiceService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter, query ListInvoicesQuery) (*shared.Paginated[InvoiceResponse], error) {
	invFilter := billing.InvoiceFilter{
		PaidAfter:  query.PaidAfter,
		PaidBefore: query.PaidBefore,
	}
	if query.Status != "" {
		status := billing.InvoiceStatus(query.Status)
		invFilter.Status = &status
	}
	if query.Type != "" {
		invoiceType := billing.InvoiceType(query.Type)
		invFilter.Type = &invoiceType
	}

	invoices, total, err := s.invoiceRepo.FindAllForCompany(ctx, companyID, filter, invFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ReviewQueue lists invoices awaiting the given employee's approval
func (s *InvoiceService) ReviewQueue(ctx context.Context, companyID, employeeID uuid.UUID) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindReviewQueue(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses, nil
}

// ChangeStatus runs the invoice lifecycle transition requested by the acting
// employee and persists the outcome atomically.
func (s *InvoiceService) ChangeStatus(ctx context.Context, companyID, invoiceID, actorID uuid.UUID, req ChangeStatusRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	actor, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, actorID)
	if err != nil {
		return nil, err
	}

	if err := invoice.RequestTransition(billing.InvoiceStatus(req.Status), actor); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.UpdateStatus(ctx, invoice); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Invoice status changed",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("status", string(invoice.Status)),
	)

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// SendToCustomer mails the invoice with the company's banking details to the
// counterparty organization. Only applied income invoices can be sent, and
// the company must have bank details on file.
func (s *InvoiceService) SendToCustomer(ctx context.Context, companyID, invoiceID uuid.UUID) error {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return err
	}
	if !invoice.CanBeSentToCustomer() {
		return shared.NewDomainError("INVALID_STATE", "Only applied income invoices can be sent to the customer")
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company.BankDetail == nil {
		return shared.NewDomainError("INVALID_STATE", "Company bank details are required to bill a customer")
	}
	if invoice.Organization == nil {
		return shared.ErrNotFound
	}

	body := mail.RenderCustomerInvoice(company.BankDetail, invoice)
	if err := s.mailer.Send(ctx, invoice.Organization.Email, mail.CustomerInvoiceSubject, body); err != nil {
		return err
	}

	logger.L(ctx).Info("Customer invoice sent",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("to", invoice.Organization.Email),
	)
	return nil
}
