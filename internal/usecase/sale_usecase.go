package usecase

import (
	"context"

	"storehub/internal/domain/entity"
)

// SaleInput carries one cart submission from the register.
type SaleInput struct {
	Cart          []entity.CartItem `json:"cart"`
	PaymentMethod string            `json:"paymentMethod"`
}

// SaleReceipt is the outcome handed back to the register: the processed
// summary plus any products the sale pushed to or below their minimum.
type SaleReceipt struct {
	Summary  entity.SaleSummary `json:"summary"`
	LowStock []entity.Product   `json:"lowStock,omitempty"`
}

// SaleUsecase defines the interface for sale submission use cases
type SaleUsecase interface {
	// SubmitSale processes a cart against the store's ledger and catalog and
	// persists both outcomes in a single write
	SubmitSale(ctx context.Context, storeID string, input *SaleInput) (*SaleReceipt, error)
}
