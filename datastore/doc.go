/*
Package datastore defines the interface of the durable key-value table.

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	}

Put is an unconditional overwrite keyed by the record's registered key
schema. GetOne returns a NotFoundError from the errors package when no item
has the key.

Implementations:
  - ddb: DynamoDB implementation
  - mock: In-memory mock implementation for testing
*/
package datastore
