// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/salesdesk/internal/platform/database/schema"
)

func TestColumns_MatchMigrationNaming(t *testing.T) {
	tables := map[string][]string{
		schema.UserAccount.Table:   schema.UserAccount.Columns(),
		schema.SalesCustomer.Table: schema.SalesCustomer.Columns(),
		schema.SalesProduct.Table:  schema.SalesProduct.Columns(),
		schema.SalesOrder.Table:    schema.SalesOrder.Columns(),
	}

	for table, columns := range tables {
		assert.Contains(t, table, ".", "tables live in a named schema")
		seen := map[string]bool{}
		for _, column := range columns {
			assert.Equal(t, strings.ToLower(column), column, "%s.%s", table, column)
			assert.NotContains(t, column, "_", "%s.%s", table, column)
			assert.False(t, seen[column], "duplicate column %s.%s", table, column)
			seen[column] = true
		}
	}
}
