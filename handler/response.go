/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/suparena/registration/models"
)

func responseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

func respond(status int, body models.ResponseBody) events.APIGatewayProxyResponse {
	// string fields only; Marshal cannot fail
	b, _ := json.Marshal(body)
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    responseHeaders(),
		Body:       string(b),
	}
}

func success() events.APIGatewayProxyResponse {
	return respond(http.StatusOK, models.ResponseBody{Message: models.MessageSuccess})
}

func failure(err error) events.APIGatewayProxyResponse {
	return respond(http.StatusInternalServerError, models.ResponseBody{
		Message: models.MessageFailure,
		Error:   err.Error(),
	})
}
