// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
	"github.com/taibuivan/salesdesk/internal/platform/database/schema"
	"github.com/taibuivan/salesdesk/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on the sales.product table.
// NUMERIC prices round-trip through decimal.Decimal's sql.Scanner and
// driver.Valuer, so no float conversion happens on the way.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectProductQuery = fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s`,
	schema.SalesProduct.ID, schema.SalesProduct.Name, schema.SalesProduct.Category,
	schema.SalesProduct.Price, schema.SalesProduct.Stock, schema.SalesProduct.Description,
	schema.SalesProduct.Table,
)

func (repository *PostgresRepository) ListProducts(context context.Context) ([]*Product, error) {
	query := selectProductQuery + fmt.Sprintf(` ORDER BY %s`, schema.SalesProduct.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_product")
		}
		products = append(products, p)
	}

	return products, dberr.Wrap(rows.Err(), "list_products")
}

func (repository *PostgresRepository) GetProduct(context context.Context, id int64) (*Product, error) {
	query := selectProductQuery + fmt.Sprintf(` WHERE %s = $1`, schema.SalesProduct.ID)

	p, err := scanProduct(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, notFoundOr(err, "get_product")
	}
	return p, nil
}

func (repository *PostgresRepository) CreateProduct(context context.Context, p *Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`,
		schema.SalesProduct.Table, schema.SalesProduct.Name, schema.SalesProduct.Category,
		schema.SalesProduct.Price, schema.SalesProduct.Stock, schema.SalesProduct.Description,
		schema.SalesProduct.ID,
	)

	err := repository.db.QueryRow(context, query, p.Name, p.Category, p.Price, p.Stock, p.Description).Scan(&p.ID)
	return dberr.Wrap(err, "create_product")
}

func (repository *PostgresRepository) UpdateProduct(context context.Context, p *Product) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`,
		schema.SalesProduct.Table, schema.SalesProduct.Name, schema.SalesProduct.Category,
		schema.SalesProduct.Price, schema.SalesProduct.Stock, schema.SalesProduct.Description,
		schema.SalesProduct.ID,
	)

	cmd, err := repository.db.Exec(context, query, p.ID, p.Name, p.Category, p.Price, p.Stock, p.Description)
	if err != nil {
		return dberr.Wrap(err, "update_product")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Product")
	}
	return nil
}

func (repository *PostgresRepository) DeleteProduct(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.SalesProduct.Table, schema.SalesProduct.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_product")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Product")
	}
	return nil
}

func scanProduct(row pgx.Row) (*Product, error) {
	p := &Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Description)
	return p, err
}

func notFoundOr(err error, action string) error {
	if dberr.Classify(err) == dberr.KindNotFound {
		return apperr.NotFound("Product")
	}
	return dberr.Wrap(err, action)
}
