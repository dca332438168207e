/*
Package registration is a serverless function that stores user registrations
in a DynamoDB table.

Each invocation carries an email, name, phone and password. The handler
writes them as one item keyed by email (an unconditional overwrite) and
answers with an API Gateway style envelope:

	200 {"message": "Registration successful"}
	500 {"message": "Ocorreu um erro.", "error": "<cause>"}

Both responses carry Content-Type: application/json and
Access-Control-Allow-Origin: *.

Layout:
  - handler: the Lambda handler
  - datastore: table interface, with ddb (DynamoDB) and mock implementations
  - datastore/ddb/ddbtest: in-memory DynamoDB table for tests
  - models: the Registration record and response body
  - registry: key schema per record type
  - config, logging: configuration and zap logger construction
  - cmd/register: the Lambda binary

Passwords are stored as received.
*/
package registration
