package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// OrderLineItem is one product position inside an order. The unit price is a
// snapshot taken when the order is created and never follows later catalog
// price changes. Line items are immutable after creation.
type OrderLineItem struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	UnitPrice decimal.Decimal
	Quantity  int
	Product   *Product // optional display snapshot
}

func NewOrderLineItem(orderID, productID uuid.UUID, unitPrice decimal.Decimal,
	quantity int, product *Product) OrderLineItem {
	return OrderLineItem{
		OrderID:   orderID,
		ProductID: productID,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Product:   product,
	}
}

// Subtotal returns UnitPrice × Quantity.
func (li OrderLineItem) Subtotal() (decimal.Decimal, error) {
	qty, err := decimal.New(int64(li.Quantity), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return li.UnitPrice.Mul(qty)
}

// Order is the aggregate root of the preparation workflow. It owns its line
// items exclusively and starts in the Created status.
type Order struct {
	Notifiable
	ID        uuid.UUID
	UserID    uuid.UUID
	Status    OrderStatus
	LineItems []OrderLineItem
	CreatedAt time.Time
}

func NewOrder(userID uuid.UUID) *Order {
	return &Order{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    OrderStatusCreated,
		CreatedAt: time.Now(),
	}
}

// AddLineItem appends an item, keeping addition order.
func (o *Order) AddLineItem(item OrderLineItem) {
	item.OrderID = o.ID
	o.LineItems = append(o.LineItems, item)
}

// TotalPrice is derived from the line items on every call so it can never
// drift from them.
func (o *Order) TotalPrice() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range o.LineItems {
		sub, err := item.Subtotal()
		if err != nil {
			return decimal.Decimal{}, err
		}
		total, err = total.Add(sub)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
	return total, nil
}

// Validate rebuilds the notification ledger from the aggregate rules: an
// order needs an owner, at least one line item, and positive quantities.
func (o *Order) Validate() {
	o.reset()

	if o.UserID == uuid.Nil {
		o.AddNotification("order must belong to a user")
	}
	if len(o.LineItems) == 0 {
		o.AddNotification("order must have at least one item")
	}
	for _, item := range o.LineItems {
		if item.Quantity <= 0 {
			o.AddNotification("item quantity must be greater than zero")
		}
	}
}
