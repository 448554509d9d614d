package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/brsantos/burgerhall/internal/core/domain"
	"github.com/brsantos/burgerhall/internal/core/port"
	"github.com/brsantos/burgerhall/internal/core/port/mock"
	"github.com/brsantos/burgerhall/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(orders *mock.MockOrderRepository, products *mock.MockProductRepository)

func TestOrderService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	userID := uuid.New()
	productID := uuid.New()
	product := domain.NewProduct("Burger", "Big burger", decimal.MustParse("20"), domain.ProductCategorySandwich)
	product.ID = productID

	type createOrderTest struct {
		name     string
		userID   uuid.UUID
		items    []domain.OrderItemRequest
		mock     prepareMocks
		expError error
		check    func(t *testing.T, order *domain.Order)
	}

	tests := []createOrderTest{
		{
			name:   "Create good order",
			userID: userID,
			items:  []domain.OrderItemRequest{{ProductID: productID, Quantity: 1}},
			mock: func(orders *mock.MockOrderRepository, products *mock.MockProductRepository) {
				products.EXPECT().ReadProduct(gomock.Any(), productID).Return(product, nil)
				orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						return o, nil
					})
			},
			expError: nil,
			check: func(t *testing.T, order *domain.Order) {
				assert.Len(t, order.LineItems, 1)
				assert.Equal(t, domain.OrderStatusCreated, order.Status)
				assert.Equal(t, userID, order.UserID)

				total, err := order.TotalPrice()
				assert.NoError(t, err)
				assert.Equal(t, 0, total.Cmp(decimal.MustParse("20")))
			},
		},
		{
			name:   "Unknown product rejects whole order",
			userID: userID,
			items:  []domain.OrderItemRequest{{ProductID: productID, Quantity: 1}},
			mock: func(orders *mock.MockOrderRepository, products *mock.MockProductRepository) {
				products.EXPECT().ReadProduct(gomock.Any(), productID).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidProducts,
		},
		{
			name:   "Invalid product rejects whole order",
			userID: userID,
			items:  []domain.OrderItemRequest{{ProductID: productID, Quantity: 1}},
			mock: func(orders *mock.MockOrderRepository, products *mock.MockProductRepository) {
				broken := domain.NewProduct("", "", decimal.Zero, domain.ProductCategory(""))
				broken.ID = productID
				products.EXPECT().ReadProduct(gomock.Any(), productID).Return(broken, nil)
			},
			expError: domain.ErrInvalidProducts,
		},
		{
			name:     "Empty order is not persisted",
			userID:   userID,
			items:    nil,
			mock:     func(orders *mock.MockOrderRepository, products *mock.MockProductRepository) {},
			expError: domain.ErrOrderNotValid,
		},
		{
			name:   "Zero quantity is not persisted",
			userID: userID,
			items:  []domain.OrderItemRequest{{ProductID: productID, Quantity: 0}},
			mock: func(orders *mock.MockOrderRepository, products *mock.MockProductRepository) {
				products.EXPECT().ReadProduct(gomock.Any(), productID).Return(product, nil)
			},
			expError: domain.ErrOrderNotValid,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orders := mock.NewMockOrderRepository(mockCtrl)
			products := mock.NewMockProductRepository(mockCtrl)
			test.mock(orders, products)

			s, err := service.NewOrderService(orders, products, logger)
			assert.NoError(t, err)

			result, err := s.CreateOrder(context.Background(), test.userID, test.items)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			if test.check != nil {
				test.check(t, result)
			}
		})
	}
}

func TestOrderService_CreateOrderSnapshotsPrice(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	productID := uuid.New()
	product := domain.NewProduct("Burger", "Big burger", decimal.MustParse("20"), domain.ProductCategorySandwich)
	product.ID = productID

	orders := mock.NewMockOrderRepository(mockCtrl)
	products := mock.NewMockProductRepository(mockCtrl)

	products.EXPECT().ReadProduct(gomock.Any(), productID).Return(product, nil)
	orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
			return o, nil
		})

	s, err := service.NewOrderService(orders, products, logger)
	assert.NoError(t, err)

	order, err := s.CreateOrder(context.Background(), uuid.New(),
		[]domain.OrderItemRequest{{ProductID: productID, Quantity: 2}})
	assert.NoError(t, err)

	// catalog price change after creation must not affect the line item
	product.Price = decimal.MustParse("35")

	assert.Equal(t, 0, order.LineItems[0].UnitPrice.Cmp(decimal.MustParse("20")))
	total, err := order.TotalPrice()
	assert.NoError(t, err)
	assert.Equal(t, 0, total.Cmp(decimal.MustParse("40")))
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	orderID := uuid.New()

	makeOrder := func(status domain.OrderStatus) *domain.Order {
		o := domain.NewOrder(uuid.New())
		o.ID = orderID
		o.AddLineItem(domain.NewOrderLineItem(o.ID, uuid.New(), decimal.MustParse("30"), 1, nil))
		o.Status = status
		return o
	}

	type updateStatusTest struct {
		name       string
		orderID    uuid.UUID
		status     domain.OrderStatus
		mock       prepareMocks
		expError   error
		expMessage string
	}

	tests := []updateStatusTest{
		{
			name:    "Update to next status",
			orderID: orderID,
			status:  domain.OrderStatusReady,
			mock: func(orders *mock.MockOrderRepository, products *mock.MockProductRepository) {
				orders.EXPECT().ReadOrder(gomock.Any(), orderID).
					Return(makeOrder(domain.OrderStatusInPreparation), nil)
				orders.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						return o, nil
					})
			},
			expError: nil,
		},
		{
			name:    "Same status is rejected",
			orderID: orderID,
			status:  domain.OrderStatusInPreparation,
			mock: func(orders *mock.MockOrderRepository, products *mock.MockProductRepository) {
				orders.EXPECT().ReadOrder(gomock.Any(), orderID).
					Return(makeOrder(domain.OrderStatusInPreparation), nil)
			},
			expError:   domain.ErrSameStatus,
			expMessage: "order already has status In preparation",
		},
		{
			name:    "Unknown order",
			orderID: uuid.New(),
			status:  domain.OrderStatusReady,
			mock: func(orders *mock.MockOrderRepository, products *mock.MockProductRepository) {
				orders.EXPECT().ReadOrder(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidOrder,
		},
		{
			name:     "Unknown status is rejected before repository",
			orderID:  orderID,
			status:   domain.OrderStatus("SHIPPED"),
			mock:     func(orders *mock.MockOrderRepository, products *mock.MockProductRepository) {},
			expError: domain.ErrUnknownOrderStatus,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orders := mock.NewMockOrderRepository(mockCtrl)
			products := mock.NewMockProductRepository(mockCtrl)
			test.mock(orders, products)

			s, err := service.NewOrderService(orders, products, logger)
			assert.NoError(t, err)

			result, err := s.UpdateOrderStatus(context.Background(), test.orderID, test.status)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				if test.expMessage != "" {
					assert.Equal(t, test.expMessage, err.Error())
				}
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.status, result.Status)
		})
	}
}

func TestOrderService_RemoveOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	orderID := uuid.New()
	order := domain.NewOrder(uuid.New())
	order.ID = orderID

	type removeOrderTest struct {
		name     string
		orderID  uuid.UUID
		mock     prepareMocks
		expError error
	}

	tests := []removeOrderTest{
		{
			name:    "Remove existing order",
			orderID: orderID,
			mock: func(orders *mock.MockOrderRepository, products *mock.MockProductRepository) {
				orders.EXPECT().ReadOrder(gomock.Any(), orderID).Return(order, nil)
				orders.EXPECT().DeleteOrder(gomock.Any(), order).Return(nil)
			},
			expError: nil,
		},
		{
			name:    "Unknown order",
			orderID: uuid.New(),
			mock: func(orders *mock.MockOrderRepository, products *mock.MockProductRepository) {
				orders.EXPECT().ReadOrder(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidOrder,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orders := mock.NewMockOrderRepository(mockCtrl)
			products := mock.NewMockProductRepository(mockCtrl)
			test.mock(orders, products)

			s, err := service.NewOrderService(orders, products, logger)
			assert.NoError(t, err)

			err = s.RemoveOrder(context.Background(), test.orderID)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestOrderService_GetOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	product := domain.NewProduct("Test", "Test description", decimal.MustParse("30"), domain.ProductCategoryDessert)

	order := domain.NewOrder(uuid.New())
	order.AddLineItem(domain.NewOrderLineItem(order.ID, product.ID, product.Price, 1, product))
	order.Status = domain.OrderStatusInPreparation

	orders := mock.NewMockOrderRepository(mockCtrl)
	products := mock.NewMockProductRepository(mockCtrl)

	orders.EXPECT().ListOrders(gomock.Any(), gomock.Any()).
		Return([]*domain.Order{order}, nil)

	s, err := service.NewOrderService(orders, products, logger)
	assert.NoError(t, err)

	views, err := s.GetOrders(context.Background(), nil)
	assert.NoError(t, err)
	assert.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, order.ID, view.ID)
	assert.Equal(t, "In preparation", view.Status)
	assert.Equal(t, 0, view.TotalPrice.Cmp(decimal.MustParse("30")))
	assert.Len(t, view.LineItems, 1)
	assert.Equal(t, "Test", view.LineItems[0].Name)
	assert.Equal(t, 1, view.LineItems[0].Quantity)
}

func TestOrderService_GetOrdersRepositoryError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	expErr := errors.New("connection lost")

	orders := mock.NewMockOrderRepository(mockCtrl)
	products := mock.NewMockProductRepository(mockCtrl)

	orders.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(nil, expErr)

	s, err := service.NewOrderService(orders, products, logger)
	assert.NoError(t, err)

	views, err := s.GetOrders(context.Background(), &port.OrderFilter{})
	assert.Nil(t, views)
	assert.Equal(t, expErr, err)
}
