package port

import (
	"context"

	"github.com/brsantos/burgerhall/internal/core/domain"
	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, items []domain.OrderItemRequest) (*domain.Order, error)
	GetOrders(ctx context.Context, filter *OrderFilter) ([]domain.OrderView, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error)
	RemoveOrder(ctx context.Context, orderID uuid.UUID) error
}

type ProductService interface {
	AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context, category *domain.ProductCategory) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	RemoveProduct(ctx context.Context, productID uuid.UUID) error
}
