/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Unconditional PutItem writes (last write wins)
  - Strongly consistent GetItem reads
  - Key derivation from the index map registered for the record type
  - Static credentials or the default credential chain
  - Endpoint override for DynamoDB Local

Macro Expansion:
Key attributes are filled from the marshalled item:

	indexMap := map[string]string{
	    "email": "{email}",       // hash key copied from the email attribute
	}

Construction:

	store, err := ddb.NewDynamodbDataStore[models.Registration](ctx, ddb.ClientOptions{
	    Region: "us-east-1",
	}, "registration-table")

Tests substitute the client with ddbtest.Table through
NewDynamodbDataStoreWithClient. The integration tests (build tag
integration) run against DynamoDB Local.
*/
package ddb
