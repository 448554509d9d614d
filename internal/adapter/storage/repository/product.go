package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/brsantos/burgerhall/internal/adapter/storage"
	"github.com/brsantos/burgerhall/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ProductRepository struct {
	db *storage.DB
}

func NewProductRepository(db *storage.DB) (*ProductRepository, error) {
	return &ProductRepository{db: db}, nil
}

func (pr *ProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := pr.db.QueryBuilder.
		Insert("products").
		Columns("id", "name", "description", "price", "category").
		Values(product.ID, product.Name, product.Description, product.Price, product.Category)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = pr.db.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return product, nil
}

func (pr *ProductRepository) ReadProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	statement := pr.db.QueryBuilder.
		Select("id", "name", "description", "price", "category").
		From("products").
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}

	err = pr.db.QueryRow(ctx, sql, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (pr *ProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := pr.db.QueryBuilder.
		Update("products").
		Set("name", product.Name).
		Set("description", product.Description).
		Set("price", product.Price).
		Set("category", product.Category).
		Where(sq.Eq{"id": product.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := pr.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return product, nil
}

func (pr *ProductRepository) ListProducts(ctx context.Context, category *domain.ProductCategory) ([]*domain.Product, error) {
	statement := pr.db.QueryBuilder.
		Select("id", "name", "description", "price", "category").
		From("products").
		OrderBy("name")

	if category != nil {
		statement = statement.Where(sq.Eq{"category": *category})
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := pr.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product := domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Category,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &product)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (pr *ProductRepository) DeleteProduct(ctx context.Context, product *domain.Product) error {
	statement := pr.db.QueryBuilder.
		Delete("products").
		Where(sq.Eq{"id": product.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := pr.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}
