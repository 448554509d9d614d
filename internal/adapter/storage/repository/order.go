package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/brsantos/burgerhall/internal/adapter/storage"
	"github.com/brsantos/burgerhall/internal/core/domain"
	"github.com/brsantos/burgerhall/internal/core/port"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type OrderRepository struct {
	db *storage.DB
}

func NewOrderRepository(db *storage.DB) (*OrderRepository, error) {
	return &OrderRepository{db: db}, nil
}

func (or *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, or.db, func(tx pgx.Tx) error {
		orderSt := or.db.QueryBuilder.
			Insert("orders").
			Columns("id", "user_id", "status", "created_at").
			Values(order.ID, order.UserID, order.Status, order.CreatedAt)

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		for _, item := range order.LineItems {
			itemSt := or.db.QueryBuilder.
				Insert("order_items").
				Columns("order_id", "product_id", "unit_price", "quantity").
				Values(order.ID, item.ProductID, item.UnitPrice, item.Quantity)

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (or *OrderRepository) ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("id", "user_id", "status", "created_at").
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	err = or.loadLineItems(ctx, &order)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (or *OrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Update("orders").
		Set("status", order.Status).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return order, nil
}

func (or *OrderRepository) ListOrders(ctx context.Context, filter *port.OrderFilter) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("id", "user_id", "status", "created_at").
		From("orders").
		OrderBy("created_at")

	if filter != nil {
		if filter.UserID != nil {
			statement = statement.Where(sq.Eq{"user_id": *filter.UserID})
		}
		if filter.Status != nil {
			statement = statement.Where(sq.Eq{"status": *filter.Status})
		}
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	for _, order := range list {
		err = or.loadLineItems(ctx, order)
		if err != nil {
			return nil, err
		}
	}

	return list, nil
}

func (or *OrderRepository) DeleteOrder(ctx context.Context, order *domain.Order) error {
	statement := or.db.QueryBuilder.
		Delete("orders").
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}

// loadLineItems fills the order with its items plus the product display
// snapshot. The stored unit_price is the creation-time snapshot, not the
// current catalog price.
func (or *OrderRepository) loadLineItems(ctx context.Context, order *domain.Order) error {
	statement := or.db.QueryBuilder.
		Select("i.order_id", "i.product_id", "i.unit_price", "i.quantity",
			"p.name", "p.description", "p.price", "p.category").
		From("order_items i").
		Join("products p on p.id = i.product_id").
		Where(sq.Eq{"i.order_id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}

	order.LineItems = order.LineItems[:0]
	for rows.Next() {
		item := domain.OrderLineItem{}
		product := domain.Product{}

		err := rows.Scan(
			&item.OrderID,
			&item.ProductID,
			&item.UnitPrice,
			&item.Quantity,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Category,
		)
		if err != nil {
			return err
		}

		product.ID = item.ProductID
		item.Product = &product
		order.LineItems = append(order.LineItems, item)
	}

	return rows.Err()
}
