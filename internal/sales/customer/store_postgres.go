// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package customer

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
	"github.com/taibuivan/salesdesk/internal/platform/database/schema"
	"github.com/taibuivan/salesdesk/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on the sales.customer table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectCustomerQuery = fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s`,
	schema.SalesCustomer.ID, schema.SalesCustomer.Name, schema.SalesCustomer.Email,
	schema.SalesCustomer.Phone, schema.SalesCustomer.Company, schema.SalesCustomer.CreatedAt,
	schema.SalesCustomer.Table,
)

func (repository *PostgresRepository) ListCustomers(context context.Context) ([]*Customer, error) {
	query := selectCustomerQuery + fmt.Sprintf(` ORDER BY %s DESC, %s DESC`,
		schema.SalesCustomer.CreatedAt, schema.SalesCustomer.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_customers")
	}
	defer rows.Close()

	var customers []*Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_customer")
		}
		customers = append(customers, c)
	}

	return customers, dberr.Wrap(rows.Err(), "list_customers")
}

func (repository *PostgresRepository) GetCustomer(context context.Context, id int64) (*Customer, error) {
	query := selectCustomerQuery + fmt.Sprintf(` WHERE %s = $1`, schema.SalesCustomer.ID)

	c, err := scanCustomer(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, notFoundOr(err, "get_customer")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateCustomer(context context.Context, c *Customer) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.SalesCustomer.Table, schema.SalesCustomer.Name, schema.SalesCustomer.Email,
		schema.SalesCustomer.Phone, schema.SalesCustomer.Company,
		schema.SalesCustomer.ID, schema.SalesCustomer.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, c.Name, c.Email, c.Phone, c.Company).Scan(&c.ID, &c.CreatedAt)
	return dberr.Wrap(err, "create_customer")
}

func (repository *PostgresRepository) UpdateCustomer(context context.Context, c *Customer) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
		RETURNING %s
	`,
		schema.SalesCustomer.Table, schema.SalesCustomer.Name, schema.SalesCustomer.Email,
		schema.SalesCustomer.Phone, schema.SalesCustomer.Company, schema.SalesCustomer.ID,
		schema.SalesCustomer.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, c.ID, c.Name, c.Email, c.Phone, c.Company).Scan(&c.CreatedAt)
	return notFoundOr(err, "update_customer")
}

func (repository *PostgresRepository) DeleteCustomer(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.SalesCustomer.Table, schema.SalesCustomer.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_customer")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Customer")
	}
	return nil
}

func scanCustomer(row pgx.Row) (*Customer, error) {
	c := &Customer{}
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt)
	return c, err
}

func notFoundOr(err error, action string) error {
	if dberr.Classify(err) == dberr.KindNotFound {
		return apperr.NotFound("Customer")
	}
	return dberr.Wrap(err, action)
}
