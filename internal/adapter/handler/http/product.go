package http

import (
	"net/http"

	"github.com/brsantos/burgerhall/internal/core/domain"
	"github.com/brsantos/burgerhall/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Handler
	service port.ProductService
}

func NewProductHandler(service port.ProductService, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type productReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
}

type productResp struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

type notificationsResp struct {
	Notifications []string `json:"notifications"`
}

func newProductResp(product *domain.Product) productResp {
	return productResp{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    string(product.Category),
	}
}

func newNotificationsResp(notifications []domain.Notification) notificationsResp {
	messages := make([]string, 0, len(notifications))
	for _, n := range notifications {
		messages = append(messages, n.Message)
	}
	return notificationsResp{Notifications: messages}
}

func (ph *ProductHandler) AddProduct(ctx *gin.Context) {
	var req productReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	// A non-numeric price is a transport error; a non-positive one is a
	// business rule and goes through the notification ledger.
	price := decimal.Zero
	if req.Price != "" {
		var err error
		price, err = decimal.Parse(req.Price)
		if err != nil {
			ph.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
	}

	product := domain.NewProduct(req.Name, req.Description, price,
		domain.ProductCategory(req.Category))

	product, err := ph.service.AddProduct(ctx, product)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	if !product.IsValid() {
		ctx.JSON(http.StatusBadRequest, newNotificationsResp(product.Notifications()))
		return
	}

	ph.handleSuccessWithStatus(ctx, newProductResp(product), http.StatusCreated)
}

func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	product, err := ph.service.GetProduct(ctx, productID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResp(product))
}

func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	var category *domain.ProductCategory
	if v := ctx.Query("category"); v != "" {
		c := domain.ProductCategory(v)
		if !c.Known() {
			ph.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
		category = &c
	}

	list, err := ph.service.ListProducts(ctx, category)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]productResp, 0, len(list))
	for _, p := range list {
		result = append(result, newProductResp(p))
	}

	ph.handleSuccess(ctx, result)
}

func (ph *ProductHandler) UpdateProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	var req productReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	price := decimal.Zero
	if req.Price != "" {
		price, err = decimal.Parse(req.Price)
		if err != nil {
			ph.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
	}

	product := &domain.Product{
		ID:          productID,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Category:    domain.ProductCategory(req.Category),
	}

	product, err = ph.service.UpdateProduct(ctx, product)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	if !product.IsValid() {
		ctx.JSON(http.StatusBadRequest, newNotificationsResp(product.Notifications()))
		return
	}

	ph.handleSuccess(ctx, newProductResp(product))
}

func (ph *ProductHandler) RemoveProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err = ph.service.RemoveProduct(ctx, productID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
