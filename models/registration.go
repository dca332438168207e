/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/registration/registry"
)

// TableName is the default name of the registration table.
const TableName = "registration-table"

// KeyAttribute is the hash key of the registration table.
const KeyAttribute = "email"

func init() {
	registry.RegisterIndexMap[Registration](map[string]string{
		KeyAttribute: "{" + KeyAttribute + "}",
	})
}

type Registration struct {

	// Address the user registered with. Primary key of the table.
	// Required: true
	// Format: email
	Email strfmt.Email `json:"email" dynamodbav:"email"`

	// Display name.
	// Required: true
	Name string `json:"name" dynamodbav:"name"`

	// Phone number as entered.
	// Required: true
	Phone string `json:"phone" dynamodbav:"phone"`

	// Password as received. Stored without hashing.
	// Required: true
	// Format: password
	Password strfmt.Password `json:"password" dynamodbav:"password"`
}

// Key returns the table key of the record.
func (r Registration) Key() string {
	return r.Email.String()
}
