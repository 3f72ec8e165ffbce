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
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

var ErrContractViolation = errors.New("response contract violation")

//go:embed openapi.yaml
var openapiSpec []byte

// ResponseValidator checks responses against the documented shape of the
// consumed HTTP surface.
type ResponseValidator struct {
	router routers.Router
}

func NewResponseValidator() (*ResponseValidator, error) {
	return NewResponseValidatorFromData(openapiSpec)
}

// NewResponseValidatorFromData builds a validator from an alternative description.
func NewResponseValidatorFromData(data []byte) (*ResponseValidator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("loading response contract: %w", err)
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building response contract router: %w", err)
	}

	return &ResponseValidator{
		router: router,
	}, nil
}

// Validate checks a single response.  Routes the description does not
// cover are accepted as is.
func (v *ResponseValidator) Validate(ctx context.Context, req *http.Request, statusCode int, header http.Header, body []byte) error {
	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		// Unknown paths and methods both surface as route errors.
		var routeErr *routers.RouteError
		if errors.As(err, &routeErr) {
			return nil
		}

		return fmt.Errorf("matching response contract route: %w", err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: statusCode,
		Header: header,
	}

	input.SetBodyBytes(body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrContractViolation, req.Method, req.URL.Path, err)
	}

	return nil
}
