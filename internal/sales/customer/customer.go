// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package customer manages the people and companies orders are placed for.

Customers are plain CRUD records. Orders copy a customer's name and email at
creation time, so later edits here never rewrite order history.
*/
package customer

import "time"

// Customer is a buyer known to the sales desk.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	CreatedAt time.Time `json:"createdAt"`
}

// Input carries the client-editable fields for create and update.
type Input struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// Field names for validation
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldCompany = "company"
)

const (
	MaxNameLength    = 200
	MaxEmailLength   = 320
	MaxPhoneLength   = 50
	MaxCompanyLength = 200

	MsgNameAndEmailRequired = "Name and email are required"
)
