package service

import (
	"context"
	"errors"

	"github.com/brsantos/burgerhall/internal/core/domain"
	"github.com/brsantos/burgerhall/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService struct {
	products port.ProductRepository
	logger   *zap.Logger
}

func NewProductService(products port.ProductRepository, logger *zap.Logger) (*ProductService, error) {
	return &ProductService{
		products: products,
		logger:   logger,
	}, nil
}

// AddProduct validates and persists a catalog item. An invalid product is
// returned with its notifications and a nil error so the caller can surface
// every failing rule; the repository is not touched in that case.
func (s *ProductService) AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.Validate()
	if !product.IsValid() {
		return product, nil
	}

	newProduct, err := s.products.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newProduct, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	product, err := s.products.ReadProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, category *domain.ProductCategory) ([]*domain.Product, error) {
	list, err := s.products.ListProducts(ctx, category)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// UpdateProduct re-runs validation before persisting changes to an existing
// catalog item.
func (s *ProductService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.Validate()
	if !product.IsValid() {
		return product, nil
	}

	_, err := s.products.ReadProduct(ctx, product.ID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	updated, err := s.products.UpdateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Update product", zap.Error(err))
		return nil, err
	}

	return updated, nil
}

func (s *ProductService) RemoveProduct(ctx context.Context, productID uuid.UUID) error {
	product, err := s.products.ReadProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return err
		}
		s.logger.Error("Read product", zap.Error(err))
		return domain.ErrInternal
	}

	err = s.products.DeleteProduct(ctx, product)
	if err != nil {
		s.logger.Error("Delete product", zap.Error(err))
		return err
	}

	return nil
}
