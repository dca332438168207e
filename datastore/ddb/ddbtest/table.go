/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package ddbtest provides an in-memory DynamoDB table for tests.
package ddbtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// Table simulates a single DynamoDB table with a string hash key. It answers
// GetItem and PutItem with the same error types the service returns.
type Table struct {
	mu       sync.RWMutex
	name     string
	hashKey  string
	items    map[string]map[string]types.AttributeValue
	putError error
	puts     int
}

// NewTable creates an empty table with the given name and hash key attribute.
func NewTable(name, hashKey string) *Table {
	return &Table{
		name:    name,
		hashKey: hashKey,
		items:   make(map[string]map[string]types.AttributeValue),
	}
}

// WithPutError makes every PutItem call fail with err.
func (t *Table) WithPutError(err error) *Table {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.putError = err
	return t
}

// GetItem returns the item stored under the hash key in params.Key.
func (t *Table) GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	if err := t.checkTable(params.TableName); err != nil {
		return nil, err
	}
	k, err := t.keyValue(params.Key, "key")
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	item, ok := t.items[k]
	if !ok {
		return &sdk.GetItemOutput{}, nil
	}
	return &sdk.GetItemOutput{Item: copyItem(item)}, nil
}

// PutItem replaces the item with the same hash key.
func (t *Table) PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	if err := t.checkTable(params.TableName); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.putError != nil {
		return nil, t.putError
	}
	k, err := t.keyValue(params.Item, "item")
	if err != nil {
		return nil, err
	}

	t.items[k] = copyItem(params.Item)
	t.puts++
	return &sdk.PutItemOutput{}, nil
}

// Item returns the raw attributes stored under key, or nil.
func (t *Table) Item(key string) map[string]types.AttributeValue {
	t.mu.RLock()
	defer t.mu.RUnlock()

	item, ok := t.items[key]
	if !ok {
		return nil
	}
	return copyItem(item)
}

// Len returns the number of stored items.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// Puts returns the number of successful PutItem calls.
func (t *Table) Puts() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.puts
}

func (t *Table) checkTable(name *string) error {
	if aws.ToString(name) != t.name {
		return &types.ResourceNotFoundException{
			Message: aws.String(fmt.Sprintf("Requested resource not found: Table: %s not found", aws.ToString(name))),
		}
	}
	return nil
}

func (t *Table) keyValue(attrs map[string]types.AttributeValue, what string) (string, error) {
	v, ok := attrs[t.hashKey].(*types.AttributeValueMemberS)
	if !ok {
		return "", &smithy.GenericAPIError{
			Code:    "ValidationException",
			Message: fmt.Sprintf("One or more parameter values were invalid: Missing the key %s in the %s", t.hashKey, what),
		}
	}
	if v.Value == "" {
		return "", &smithy.GenericAPIError{
			Code:    "ValidationException",
			Message: fmt.Sprintf("One or more parameter values are not valid. The AttributeValue for a key attribute cannot contain an empty string value. Key: %s", t.hashKey),
		}
	}
	return v.Value, nil
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	cp := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		cp[k] = v
	}
	return cp
}
