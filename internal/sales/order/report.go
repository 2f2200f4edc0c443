// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// ProductSales aggregates every persisted line of one product.
type ProductSales struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
	Orders      int             `json:"orders"`
}

/*
SummarizeByProduct folds order snapshots into per-product sales.

Revenue sums the stored line totals, so it reflects the prices orders were
placed at. ProductName comes from the first order seen for the product;
with orders listed newest first that is the most recent snapshot name.
Results are ordered by revenue descending, then product id.
*/
func SummarizeByProduct(orders []*Order) []ProductSales {
	index := map[int64]int{}
	var summary []ProductSales

	for _, o := range orders {
		counted := map[int64]bool{}
		for _, line := range o.Items {
			at, ok := index[line.ProductID]
			if !ok {
				at = len(summary)
				index[line.ProductID] = at
				summary = append(summary, ProductSales{
					ProductID:   line.ProductID,
					ProductName: line.ProductName,
					Revenue:     decimal.Zero,
				})
			}

			entry := &summary[at]
			entry.Quantity += int64(line.Quantity)
			entry.Revenue = entry.Revenue.Add(line.LineTotal)
			if !counted[line.ProductID] {
				counted[line.ProductID] = true
				entry.Orders++
			}
		}
	}

	slices.SortStableFunc(summary, func(a, b ProductSales) int {
		if byRevenue := b.Revenue.Cmp(a.Revenue); byRevenue != 0 {
			return byRevenue
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})

	return summary
}
