/*
Copyright 2026 the Suitest Authors.

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

// Package openapi holds the description of the Suitest Network API responses
// that are consumed, and validates live responses against it.
package openapi

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

const (
	OperationGetTestPackRun = "getTestPackRun"
	OperationGetTestResult  = "getTestResult"
	OperationListDevices    = "listDevices"
	OperationListTests      = "listTests"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")

	//go:embed networkapi.yaml
	document []byte
)

// Schema loads and validates the embedded API document.
func Schema(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("loading network api schema: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating network api schema: %w", err)
	}

	return doc, nil
}

// Validator checks response bodies against the schema of the operation that
// produced them.  Routes are indexed by operation ID rather than matched by
// path as the API is mounted under an arbitrary base URL.
type Validator struct {
	routes map[string]*routers.Route
}

// NewValidator returns a validator for all operations in the embedded document.
func NewValidator(ctx context.Context) (*Validator, error) {
	doc, err := Schema(ctx)
	if err != nil {
		return nil, err
	}

	routes := map[string]*routers.Route{}

	for path, item := range doc.Paths.Map() {
		for method, operation := range item.Operations() {
			routes[operation.OperationID] = &routers.Route{
				Spec:      doc,
				Path:      path,
				PathItem:  item,
				Method:    method,
				Operation: operation,
			}
		}
	}

	return &Validator{
		routes: routes,
	}, nil
}

// ValidateResponse checks the body of a successful response.
func (v *Validator) ValidateResponse(ctx context.Context, operationID string, req *http.Request, resp *http.Response, body []byte) error {
	route, ok := v.routes[operationID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, operationID)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request: req,
			Route:   route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   io.NopCloser(bytes.NewReader(body)),
		Options: &openapi3filter.Options{
			MultiError: true,
		},
	}

	return openapi3filter.ValidateResponse(ctx, input)
}
