/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

const (
	// MessageSuccess is the body message of a stored registration.
	MessageSuccess = "Registration successful"

	// MessageFailure is the body message of any failed invocation.
	MessageFailure = "Ocorreu um erro."
)

// ResponseBody is the JSON document carried in the response envelope body.
type ResponseBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
