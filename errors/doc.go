/*
Package errors provides semantic error types for the registration function.

Every failure the handler can meet falls into one of a few kinds, each with a
sentinel that works with the standard errors.Is() function or the helpers:

	var (
	    ErrNotFound     = errors.New("record not found")
	    ErrInvalidInput = errors.New("invalid input")
	    ErrWriteFailed  = errors.New("write failed")
	    ErrNoIndexMap   = errors.New("no index map found for type")
	)

Usage:

	if err := store.Put(ctx, record); err != nil {
	    if errors.IsWriteFailure(err) {
	        // table rejected or never received the item
	    }
	}

	err := errors.NewValidationError("email", "required field is missing")
	err := errors.NewWriteError("PutItem", cause)

WriteError unwraps to its cause, so SDK error types stay reachable through
errors.As.
*/
package errors
