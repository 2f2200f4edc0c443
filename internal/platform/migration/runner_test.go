// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/sales?sslmode=disable", "pgx5://u:p@db:5432/sales?sslmode=disable"},
		{"postgresql://u@db/sales", "pgx5://u@db/sales"},
		{"pgx5://u@db/sales", "pgx5://u@db/sales"},
		{"host=db user=u dbname=sales", "host=db user=u dbname=sales"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertToPgx5DSN(tt.in), tt.in)
	}
}
