// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
	"github.com/taibuivan/salesdesk/internal/platform/database/schema"
	"github.com/taibuivan/salesdesk/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on sales.customerorder.
// Lines live in a JSONB column on the order row, so an order is written
// by a single INSERT and can never be partially stored.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectOrderQuery = fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s`,
	schema.SalesOrder.ID, schema.SalesOrder.CreatedAt, schema.SalesOrder.CustomerID,
	schema.SalesOrder.CustomerName, schema.SalesOrder.CustomerEmail,
	schema.SalesOrder.Items, schema.SalesOrder.Total, schema.SalesOrder.Table,
)

func (repository *PostgresRepository) ListOrders(context context.Context) ([]*Order, error) {
	query := selectOrderQuery + fmt.Sprintf(` ORDER BY %s DESC, %s DESC`,
		schema.SalesOrder.CreatedAt, schema.SalesOrder.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_orders")
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_order")
		}
		orders = append(orders, o)
	}

	return orders, dberr.Wrap(rows.Err(), "list_orders")
}

func (repository *PostgresRepository) GetOrder(context context.Context, id int64) (*Order, error) {
	query := selectOrderQuery + fmt.Sprintf(` WHERE %s = $1`, schema.SalesOrder.ID)

	o, err := scanOrder(repository.db.QueryRow(context, query, id))
	if err != nil {
		if dberr.Classify(err) == dberr.KindNotFound {
			return nil, apperr.NotFound("Order")
		}
		return nil, dberr.Wrap(err, "get_order")
	}
	return o, nil
}

func (repository *PostgresRepository) CreateOrder(context context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("postgres_order_repo_encode_items_failed: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		schema.SalesOrder.Table, schema.SalesOrder.CustomerID, schema.SalesOrder.CustomerName,
		schema.SalesOrder.CustomerEmail, schema.SalesOrder.Items, schema.SalesOrder.Total,
		schema.SalesOrder.ID, schema.SalesOrder.CreatedAt,
	)

	err = repository.db.QueryRow(context, query,
		o.CustomerID,
		o.CustomerName,
		o.CustomerEmail,
		items,
		o.Total,
	).Scan(&o.ID, &o.CreatedAt)

	return dberr.Wrap(err, "create_order")
}

func (repository *PostgresRepository) DeleteOrder(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.SalesOrder.Table, schema.SalesOrder.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return false, dberr.Wrap(err, "delete_order")
	}
	return cmd.RowsAffected() > 0, nil
}

func scanOrder(row pgx.Row) (*Order, error) {
	o := &Order{}
	var items []byte

	if err := row.Scan(&o.ID, &o.CreatedAt, &o.CustomerID, &o.CustomerName, &o.CustomerEmail, &items, &o.Total); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order %d items: %w", o.ID, err)
	}

	return o, nil
}
