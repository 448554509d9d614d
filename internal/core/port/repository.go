package port

import (
	"context"

	"github.com/brsantos/burgerhall/internal/core/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

// OrderFilter narrows order listings. Nil fields are ignored.
type OrderFilter struct {
	UserID *uuid.UUID
	Status *domain.OrderStatus
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context, filter *OrderFilter) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, order *domain.Order) error
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ReadProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context, category *domain.ProductCategory) ([]*domain.Product, error)
	DeleteProduct(ctx context.Context, product *domain.Product) error
}
