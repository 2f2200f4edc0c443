// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
	"github.com/taibuivan/salesdesk/internal/platform/validate"
	"github.com/taibuivan/salesdesk/internal/sales/product"
	"github.com/taibuivan/salesdesk/pkg/slice"
)

// Catalog resolves authoritative product data.
type Catalog interface {
	GetProduct(context context.Context, id int64) (*product.Product, error)
}

// Pricer turns requested lines into priced snapshots.
type Pricer struct {
	catalog Catalog
}

func NewPricer(catalog Catalog) *Pricer {
	return &Pricer{catalog: catalog}
}

/*
Price validates the request and prices every line from the catalog.

Lines keep their request order. A product requested twice yields two
independent lines. Each distinct product is looked up once per call so all
of its lines share one price.

Returns:
  - []Line: Priced snapshots, same length and order as lines
  - decimal.Decimal: Sum of the line totals
  - error: VALIDATION_ERROR (including totals above [MaxAmount]), NOT_FOUND
    naming the first unknown product id, or an internal lookup failure
*/
func (pricer *Pricer) Price(context context.Context, customerID int64, lines []LineInput) ([]Line, decimal.Decimal, error) {
	if err := validateRequest(customerID, lines); err != nil {
		return nil, decimal.Zero, err
	}

	resolved := make(map[int64]*product.Product, len(lines))
	priced := make([]Line, 0, len(lines))

	for _, line := range lines {
		item, ok := resolved[line.ProductID]
		if !ok {
			found, err := pricer.catalog.GetProduct(context, line.ProductID)
			if err != nil {
				if apperr.HasCode(err, apperr.CodeNotFound) {
					return nil, decimal.Zero, apperr.NotFoundID("Product", line.ProductID).WithCause(err)
				}
				return nil, decimal.Zero, fmt.Errorf("order_pricing_lookup_failed: %w", err)
			}
			item = found
			resolved[line.ProductID] = item
		}

		priced = append(priced, Line{
			ProductID:   item.ID,
			ProductName: item.Name,
			UnitPrice:   item.Price,
			Quantity:    line.Quantity,
			LineTotal:   item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}

	total := Total(priced)
	if err := validateAmounts(priced, total); err != nil {
		return nil, decimal.Zero, err
	}

	return priced, total, nil
}

// Total sums the line totals.
func Total(lines []Line) decimal.Decimal {
	return slice.Reduce(lines, decimal.Zero, func(sum decimal.Decimal, line Line) decimal.Decimal {
		return sum.Add(line.LineTotal)
	})
}

func validateRequest(customerID int64, lines []LineInput) error {
	validator := &validate.Validator{}
	validator.
		Custom(FieldCustomerID, customerID <= 0, MsgCustomerAndItemsRequired).
		Custom(FieldItems, len(lines) == 0, MsgCustomerAndItemsRequired)
	if validator.HasErrors() {
		return validator.Err()
	}

	for i, line := range lines {
		validator.
			Custom(fmt.Sprintf("items[%d].productId", i), line.ProductID <= 0, MsgProductIDRequired).
			Custom(fmt.Sprintf("items[%d].quantity", i), line.Quantity < MinQuantity, MsgQuantityTooSmall).
			Custom(fmt.Sprintf("items[%d].quantity", i), line.Quantity > MaxQuantity, MsgQuantityTooLarge)
	}
	return validator.Err()
}

func validateAmounts(lines []Line, total decimal.Decimal) error {
	validator := &validate.Validator{}
	for i, line := range lines {
		validator.Custom(fmt.Sprintf("items[%d].quantity", i), line.LineTotal.GreaterThan(MaxAmount), MsgAmountTooLarge)
	}
	validator.Custom(FieldTotal, total.GreaterThan(MaxAmount), MsgAmountTooLarge)
	return validator.Err()
}
