/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package handler implements the registration Lambda handler.
package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"github.com/suparena/registration/datastore"
	"github.com/suparena/registration/models"
)

// Handler writes one registration per invocation. It holds no mutable state
// and is safe for concurrent use.
type Handler struct {
	store  datastore.DataStore[models.Registration]
	logger *zap.Logger
}

// New creates a Handler writing to store. A nil logger discards output.
func New(store datastore.DataStore[models.Registration], logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle stores the registration carried by event and reports the outcome in
// the response envelope: 200 when the write succeeded, 500 for any failure.
// The returned error is always nil so the runtime never sees a failed
// invocation.
func (h *Handler) Handle(ctx context.Context, event Event) (events.APIGatewayProxyResponse, error) {
	logger := h.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With(zap.String("requestId", lc.AwsRequestID))
	}

	logger.Info("registration event received", zap.Any("event", event.redacted()))

	record, err := event.Registration()
	if err == nil {
		err = h.store.Put(ctx, record)
	}
	if err != nil {
		logger.Error("registration failed", zap.Error(err))
		return failure(err), nil
	}

	logger.Debug("registration stored", zap.String("email", record.Key()))
	return success(), nil
}
