// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ljt019/jotview/lib/netutil"
)

// APIError represents a non-2xx response from the jotform service.
// The service returns plain-text or small JSON error bodies; either
// way the first line ends up in Message.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the error description from the service, trimmed to
	// a single line.
	Message string
}

func (err *APIError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("jotclient: HTTP %d", err.StatusCode)
	}
	return fmt.Sprintf("jotclient: HTTP %d: %s", err.StatusCode, err.Message)
}

// IsNotFound reports whether err is a service 404 response, which the
// jotform service returns for status updates against ids it no longer
// has.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusNotFound
}

// IsTransient reports whether err looks retryable: a 5xx response or
// a request timeout. Connection-level failures never produce an
// APIError and are always worth retrying, so callers typically treat
// any non-APIError network error as transient too.
func IsTransient(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	return apiError.StatusCode >= 500 ||
		apiError.StatusCode == http.StatusRequestTimeout ||
		apiError.StatusCode == http.StatusTooManyRequests
}

// parseAPIErrorFromBody parses a service error from a status code and
// response body. The body may be JSON with an "error" or "message"
// field, or bare text.
func parseAPIErrorFromBody(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wireError) == nil {
		if wireError.Error != "" {
			apiError.Message = wireError.Error
			return apiError
		}
		if wireError.Message != "" {
			apiError.Message = wireError.Message
			return apiError
		}
	}

	apiError.Message = netutil.ErrorBody(bytes.NewReader(body))
	return apiError
}
