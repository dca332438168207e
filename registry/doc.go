/*
Package registry manages the key schema of stored record types.

Each Go type that is persisted through a datastore registers an index map
naming the table's key attributes and how to fill them from the record:

	registry.RegisterIndexMap[models.Registration](map[string]string{
	    "email": "{email}",
	})

Macros in braces refer to attribute names of the marshalled item (the
dynamodbav tag names). The registration table uses a single hash key, so the
map has one entry; composite keys simply add a second attribute.

The registry is thread-safe and should be populated during initialization,
typically in init() functions next to the model.
*/
package registry
