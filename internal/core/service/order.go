package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brsantos/burgerhall/internal/core/domain"
	"github.com/brsantos/burgerhall/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService struct {
	orders   port.OrderRepository
	products port.ProductRepository
	logger   *zap.Logger
}

func NewOrderService(orders port.OrderRepository, products port.ProductRepository,
	logger *zap.Logger) (*OrderService, error) {
	return &OrderService{
		orders:   orders,
		products: products,
		logger:   logger,
	}, nil
}

// CreateOrder builds an order from the requested product/quantity pairs.
// Product resolution is all-or-nothing: if any requested product is missing
// or invalid, nothing is persisted. Unit prices are snapshotted from the
// catalog at this moment and never refreshed afterwards.
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID,
	items []domain.OrderItemRequest) (*domain.Order, error) {
	products := make(map[uuid.UUID]*domain.Product, len(items))
	for _, item := range items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}

		product, err := s.products.ReadProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, domain.ErrInvalidProducts
			}
			s.logger.Error("Read product", zap.Error(err))
			return nil, domain.ErrInternal
		}

		product.Validate()
		if !product.IsValid() {
			return nil, domain.ErrInvalidProducts
		}
		products[item.ProductID] = product
	}

	order := domain.NewOrder(userID)
	for _, item := range items {
		product := products[item.ProductID]
		order.AddLineItem(domain.NewOrderLineItem(
			order.ID, item.ProductID, product.Price, item.Quantity, product))
	}

	order.Validate()
	if !order.IsValid() {
		return nil, fmt.Errorf("%w: %s",
			domain.ErrOrderNotValid, joinNotifications(order.Notifications()))
	}

	newOrder, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	return newOrder, nil
}

// GetOrders lists orders matching the filter and projects each into a read
// view with the status label and the derived total.
func (s *OrderService) GetOrders(ctx context.Context, filter *port.OrderFilter) ([]domain.OrderView, error) {
	list, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, err
	}

	views := make([]domain.OrderView, 0, len(list))
	for _, order := range list {
		total, err := order.TotalPrice()
		if err != nil {
			s.logger.Error("Order total", zap.Error(err))
			return nil, domain.ErrInternal
		}

		items := make([]domain.OrderItemView, 0, len(order.LineItems))
		for _, item := range order.LineItems {
			view := domain.OrderItemView{
				ProductID: item.ProductID,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			}
			if item.Product != nil {
				view.Name = item.Product.Name
				view.Description = item.Product.Description
			}
			items = append(items, view)
		}

		views = append(views, domain.OrderView{
			ID:         order.ID,
			UserID:     order.UserID,
			Status:     order.Status.Label(),
			TotalPrice: total,
			LineItems:  items,
			CreatedAt:  order.CreatedAt,
		})
	}

	return views, nil
}

// UpdateOrderStatus moves an order to a new status under the transition
// policy. Re-asserting the current status is always rejected.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID,
	status domain.OrderStatus) (*domain.Order, error) {
	if !status.Known() {
		return nil, domain.ErrUnknownOrderStatus
	}

	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrInvalidOrder
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if order.Status == status {
		return nil, &domain.SameStatusError{Status: order.Status}
	}
	if !domain.TransitionAllowed(order.Status, status) {
		return nil, domain.ErrUnknownOrderStatus
	}

	order.Status = status

	updated, err := s.orders.UpdateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Update order", zap.Error(err))
		return nil, err
	}

	return updated, nil
}

// RemoveOrder deletes an order. The only business rule is existence.
func (s *OrderService) RemoveOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrInvalidOrder
		}
		s.logger.Error("Read order", zap.Error(err))
		return domain.ErrInternal
	}

	err = s.orders.DeleteOrder(ctx, order)
	if err != nil {
		s.logger.Error("Delete order", zap.Error(err))
		return err
	}

	return nil
}

func joinNotifications(notifications []domain.Notification) string {
	messages := make([]string, 0, len(notifications))
	for _, n := range notifications {
		messages = append(messages, n.Message)
	}
	return strings.Join(messages, "; ")
}
