package billing

import (
	"github.com/finvoice/backend/internal/domain/catalog"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentItem is an immutable quantity/unit-price line of an invoice.
// There is no update or delete surface for payment items; they are created
// with their invoice and live exactly as long as it does.
type PaymentItem struct {
	shared.BaseEntity
	InvoiceID uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID"`
	Price     decimal.Decimal  `gorm:"type:decimal(18,4);not null"` // unit price
	Amount    int              `gorm:"not null"`                    // quantity
}

// TableName returns the table name for GORM
func (PaymentItem) TableName() string {
	return "payment_items"
}

// NewPaymentItem creates a payment item for a product
func NewPaymentItem(product *catalog.Product, price decimal.Decimal, amount int) (*PaymentItem, error) {
	if product == nil {
		return nil, shared.ErrNotFound
	}
	if price.LessThan(decimal.Zero) {
		return nil, shared.NewValidationError("Price cannot be negative")
	}
	if amount <= 0 {
		return nil, shared.NewValidationError("Amount must be positive")
	}
	return &PaymentItem{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  product.ID,
		Price:      price,
		Amount:     amount,
	}, nil
}

// Subtotal returns price multiplied by amount with exact decimal arithmetic
func (pi *PaymentItem) Subtotal() decimal.Decimal {
	return pi.Price.Mul(decimal.NewFromInt(int64(pi.Amount)))
}
