package mail

import (
	"fmt"
	"strings"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/identity"
)

// CustomerInvoiceSubject is the subject line for customer invoice emails
const CustomerInvoiceSubject = "Invoice payment"

// StaffInvitationSubject is the subject line for staff invitation emails
const StaffInvitationSubject = "Staff invitation"

// RenderCustomerInvoice formats the invoice line items, total, and the
// issuing company's banking details into the message body sent to the
// counterparty organization.
func RenderCustomerInvoice(bankDetail *identity.BankDetails, invoice *billing.Invoice) string {
	var b strings.Builder

	b.WriteString("Products and services:\n")
	for _, item := range invoice.PaymentItems {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		fmt.Fprintf(&b, "%s, price - %s, quantity - %d.\n", name, item.Price.StringFixed(2), item.Amount)
	}
	fmt.Fprintf(&b, "Total price - %s BYN.\n", invoice.TotalPrice.StringFixed(2))
	b.WriteString("Use the following details for payment:\n")
	fmt.Fprintf(&b, "Bank name - %s,\n", bankDetail.Name)
	fmt.Fprintf(&b, "Address - %s,\n", bankDetail.Address)
	fmt.Fprintf(&b, "Bank number - %s,\n", bankDetail.BankNumber)
	fmt.Fprintf(&b, "Settlement account - %s,\n", bankDetail.SettlementAccount)
	fmt.Fprintf(&b, "Additional details - %s.\n", bankDetail.Details)

	return b.String()
}

// RenderStaffInvitation formats the invitation body sent to a newly
// provisioned employee with their generated credentials.
func RenderStaffInvitation(email, password, companyName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You have been invited to the system of company %s.\n", companyName)
	b.WriteString("Use the following credentials to log in:\n")
	fmt.Fprintf(&b, "Email - %s,\n", email)
	fmt.Fprintf(&b, "Password - %s\n", password)

	return b.String()
}
