/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/registration/errors"
	"github.com/suparena/registration/registry"
)

// API is the subset of the DynamoDB client used by the datastore.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
}

var _ API = (*sdk.Client)(nil)

// ClientOptions configures NewDynamoDBClient. Empty fields fall back to the
// SDK's default configuration chain.
type ClientOptions struct {
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the service endpoint, e.g. DynamoDB Local.
	Endpoint string
}

// DynamodbDataStore implements datastore.DataStore[T] by using AWS DynamoDB as the underlying data store.
type DynamodbDataStore[T any] struct {
	client    API
	tableName string
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros fills each template of the index map from the attributes of
// an already marshalled item.
func expandMacros(indexMap map[string]string, av map[string]types.AttributeValue) map[string]string {
	res := make(map[string]string, len(indexMap))

	for fieldName, template := range indexMap {
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			key := strings.Trim(macro, "{}")

			val, ok := av[key]
			if !ok {
				return ""
			}

			switch tv := val.(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				// binary, sets, NULL and documents cannot form a key
				return ""
			}
		})
		res[fieldName] = expanded
	}

	return res
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are used
// when both keys are given, otherwise the default chain (for Lambda, the
// execution role).
func NewDynamoDBClient(ctx context.Context, opts ClientOptions) (*sdk.Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T backed by a fresh client.
func NewDynamodbDataStore[T any](ctx context.Context, opts ClientOptions, tableName string) (*DynamodbDataStore[T], error) {
	client, err := NewDynamoDBClient(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return NewDynamodbDataStoreWithClient[T](client, tableName), nil
}

// NewDynamodbDataStoreWithClient constructs a DynamodbDataStore around an existing client.
func NewDynamodbDataStoreWithClient[T any](client API, tableName string) *DynamodbDataStore[T] {
	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
	}
}

// TableName returns the table the store reads and writes.
func (d *DynamodbDataStore[T]) TableName() string {
	return d.tableName
}

// GetOne retrieves a single item using a string key. A missing item is
// reported as a NotFoundError.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrNoIndexMap, typeName[T]())
	}

	keyMap, err := buildKeyFromExpanded(expandStringKey(indexMap, key))
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      &d.tableName,
		Key:            keyMap,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(typeName[T](), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores the given entity with an unconditional PutItem. Key attributes
// are filled from the index map registered for T; an existing item with the
// same key is replaced.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrNoIndexMap, typeName[T]())
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return errors.NewWriteError("marshal", err)
	}

	for k, v := range expandMacros(indexMap, av) {
		if v == "" {
			return errors.NewValidationError(k, "key attribute is empty")
		}
		av[k] = &types.AttributeValueMemberS{Value: v}
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return errors.NewWriteError("PutItem", err)
	}
	return nil
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded index map.
// Every key attribute must have a non-empty value.
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	if len(expanded) == 0 {
		return nil, fmt.Errorf("index map defines no key attributes")
	}

	key := make(map[string]types.AttributeValue, len(expanded))
	for attr, v := range expanded {
		if v == "" {
			return nil, errors.NewValidationError(attr, "key attribute is empty")
		}
		key[attr] = &types.AttributeValueMemberS{Value: v}
	}
	return key, nil
}

// expandStringKey replaces macro patterns in the indexMap values with the provided key.
// It assumes that each value in the index map contains a single macro (e.g., "{email}").
func expandStringKey(indexMap map[string]string, key string) map[string]string {
	expanded := make(map[string]string, len(indexMap))
	for field, template := range indexMap {
		expanded[field] = macroPattern.ReplaceAllLiteralString(template, key)
	}
	return expanded
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
