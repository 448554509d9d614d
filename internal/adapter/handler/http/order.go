package http

import (
	"net/http"

	"github.com/brsantos/burgerhall/internal/core/domain"
	"github.com/brsantos/burgerhall/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type createOrderReq struct {
	UserID    string         `json:"user_id" binding:"required"`
	LineItems []orderItemReq `json:"line_items" binding:"required"`
}

type orderResp struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req createOrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	items := make([]domain.OrderItemRequest, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			oh.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
		items = append(items, domain.OrderItemRequest{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	order, err := oh.service.CreateOrder(ctx, userID, items)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, orderResp{
		ID:     order.ID.String(),
		Status: order.Status.Label(),
	}, http.StatusCreated)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	filter := port.OrderFilter{}

	if v := ctx.Query("user_id"); v != "" {
		userID, err := uuid.Parse(v)
		if err != nil {
			oh.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
		filter.UserID = &userID
	}
	if v := ctx.Query("status"); v != "" {
		status := domain.OrderStatus(v)
		if !status.Known() {
			oh.handleError(ctx, domain.ErrUnknownOrderStatus)
			return
		}
		filter.Status = &status
	}

	views, err := oh.service.GetOrders(ctx, &filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, views)
}

type updateOrderStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	var req updateOrderStatusReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.UpdateOrderStatus(ctx, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, orderResp{
		ID:     order.ID.String(),
		Status: order.Status.Label(),
	})
}

func (oh *OrderHandler) RemoveOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err = oh.service.RemoveOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
