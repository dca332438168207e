/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handler

import (
	"encoding/base64"
	"encoding/json"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/registration/errors"
	"github.com/suparena/registration/models"
)

const (
	fieldEmail    = "email"
	fieldName     = "name"
	fieldPhone    = "phone"
	fieldPassword = "password"

	redactedValue = "***"
)

var requiredFields = []string{fieldEmail, fieldName, fieldPhone, fieldPassword}

// Event is the invocation payload. It is either the registration object
// itself or an API Gateway proxy event whose body holds that object.
type Event map[string]any

// payload returns the object holding the registration fields.
func (e Event) payload() (map[string]any, error) {
	if _, ok := e[fieldEmail]; ok {
		return e, nil
	}
	body, ok := e["body"].(string)
	if !ok {
		return e, nil
	}

	raw := []byte(body)
	if encoded, _ := e["isBase64Encoded"].(bool); encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, errors.NewValidationError("body", "is not valid base64")
		}
		raw = decoded
	}

	var inner map[string]any
	if err := json.Unmarshal(raw, &inner); err != nil || inner == nil {
		return nil, errors.NewValidationError("body", "is not a JSON object")
	}
	return inner, nil
}

// Registration extracts the record from the event. Every field must be
// present and hold a string; values are taken as is.
func (e Event) Registration() (models.Registration, error) {
	p, err := e.payload()
	if err != nil {
		return models.Registration{}, err
	}

	values := make(map[string]string, len(requiredFields))
	for _, name := range requiredFields {
		raw, ok := p[name]
		if !ok {
			return models.Registration{}, errors.NewValidationError(name, "required field is missing")
		}
		s, ok := raw.(string)
		if !ok {
			return models.Registration{}, errors.NewValidationError(name, "must be a string")
		}
		values[name] = s
	}

	return models.Registration{
		Email:    strfmt.Email(values[fieldEmail]),
		Name:     values[fieldName],
		Phone:    values[fieldPhone],
		Password: strfmt.Password(values[fieldPassword]),
	}, nil
}

// redacted returns a copy of the event that is safe to log. A proxy body
// holding the registration is decoded so only its password is masked.
func (e Event) redacted() map[string]any {
	out := maskPassword(e)
	if _, ok := out["body"].(string); !ok {
		return out
	}
	if _, ok := e[fieldEmail]; !ok {
		if inner, err := e.payload(); err == nil {
			out["body"] = maskPassword(inner)
			return out
		}
	}
	out["body"] = redactedValue
	return out
}

func maskPassword(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	if _, ok := out[fieldPassword]; ok {
		out[fieldPassword] = redactedValue
	}
	return out
}
