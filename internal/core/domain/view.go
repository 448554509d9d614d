package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// OrderItemRequest is one requested position of an order-creation request
// after transport mapping.
type OrderItemRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderItemView is the projection of a line item for listing.
type OrderItemView struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// OrderView is the read projection of an order: human-readable status label
// and the derived total, no behavior.
type OrderView struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	LineItems  []OrderItemView `json:"line_items"`
	CreatedAt  time.Time       `json:"created_at"`
}
