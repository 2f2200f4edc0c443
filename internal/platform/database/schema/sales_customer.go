// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SalesCustomerTable represents the 'sales.customer' table
type SalesCustomerTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   string
	CreatedAt string
}

// SalesCustomer is the schema definition for sales.customer
var SalesCustomer = SalesCustomerTable{
	Table:     "sales.customer",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Phone:     "phone",
	Company:   "company",
	CreatedAt: "createdat",
}

func (t SalesCustomerTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Phone, t.Company, t.CreatedAt}
}
