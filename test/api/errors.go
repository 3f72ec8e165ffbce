/*
Copyright 2026 the CDP Integration Test Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// HTTPError is returned for any response outside the 2xx range.  Tests that
// expect a rejection assert on StatusCode and Message.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
	Message    string
	TraceID    string
}

func newHTTPError(method, path string, statusCode int, body []byte, traceID string) *HTTPError {
	return &HTTPError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Body:       body,
		Message:    ExtractErrorMessage(body),
		TraceID:    traceID,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code %d: %s (trace ID: %s)", e.Method, e.Path, e.StatusCode, e.Message, e.TraceID)
}

// IsStatus reports whether err wraps an HTTPError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}

	return httpErr.StatusCode == statusCode
}

// StatusCode returns the status code carried by err, or 0 if it is not an
// HTTP error, e.g. a transport failure.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return 0
	}

	return httpErr.StatusCode
}

// ErrorMessage returns the server supplied error message carried by err.
func ErrorMessage(err error) string {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		if err == nil {
			return ""
		}

		return err.Error()
	}

	return httpErr.Message
}

// ExtractErrorMessage pulls a human readable message out of an error body.
// The server answers either with a JSON object or with plain text.
func ExtractErrorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var object map[string]any
	if err := json.Unmarshal(body, &object); err == nil {
		for _, key := range []string{"message", "Message", "error", "Error"} {
			if value, ok := object[key].(string); ok && value != "" {
				return value
			}
		}

		return trimmed
	}

	var text string
	if err := json.Unmarshal(body, &text); err == nil {
		return text
	}

	return trimmed
}
