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

package networkapi

//go:generate go tool mockgen -source=client.go -destination=mock/interface.go -package=mock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SuitestAutomation/translate-demo/pkg/constants"
	"github.com/SuitestAutomation/translate-demo/pkg/openapi"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	HeaderTokenID       = "X-TokenId"
	HeaderTokenPassword = "X-TokenPassword"
)

// Credentials are the static token pair every request is authenticated with.
type Credentials struct {
	TokenID       string
	TokenPassword string
}

// Interface is the subset of the Network API used to assemble result data.
type Interface interface {
	GetTestPackRun(ctx context.Context, testPackRunID string) (*TestPackRun, error)
	GetTestResult(ctx context.Context, testResultID string) (*TestResult, error)
	ListDevices(ctx context.Context) ([]Device, error)
	ListTests(ctx context.Context, appID, versionID string) ([]Test, error)
}

// ResponseValidator checks a successful response body before it is decoded.
type ResponseValidator interface {
	ValidateResponse(ctx context.Context, operationID string, req *http.Request, resp *http.Response, body []byte) error
}

// Client is a Network API client.
type Client struct {
	client      *http.Client
	credentials Credentials
	endpoints   *Endpoints
	validator   ResponseValidator
	userAgent   string
}

var _ Interface = &Client{}

// Option modifies the client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, e.g. to set a timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithValidator checks every successful response against a schema.
func WithValidator(validator ResponseValidator) Option {
	return func(c *Client) {
		c.validator = validator
	}
}

// WithUserAgent overrides the default user agent.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New returns a new client.
func New(baseURL string, credentials Credentials, options ...Option) (*Client, error) {
	endpoints, err := NewEndpoints(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		client:      &http.Client{},
		credentials: credentials,
		endpoints:   endpoints,
		userAgent:   constants.VersionString(),
	}

	for _, o := range options {
		o(c)
	}

	return c, nil
}

// Endpoints returns the endpoints the client talks to.
func (c *Client) Endpoints() *Endpoints {
	return c.endpoints
}

// createTraceParent creates a W3C traceparent header value so a request can
// be correlated with upstream logs.
func createTraceParent() string {
	traceID := make([]byte, 16)
	_, _ = rand.Read(traceID)

	spanID := make([]byte, 8)
	_, _ = rand.Read(spanID)

	return fmt.Sprintf("00-%s-%s-01", hex.EncodeToString(traceID), hex.EncodeToString(spanID))
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest performs a GET and returns the body of a successful response.
func (c *Client) doRequest(ctx context.Context, operationID, url string) ([]byte, error) {
	log := log.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	traceParent := createTraceParent()

	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderTokenID, c.credentials.TokenID)
	req.Header.Set(HeaderTokenPassword, c.credentials.TokenPassword)

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "operation", operationID, "url", url, "duration", duration, "traceID", extractTraceID(traceParent))
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	log.V(1).Info("http request", "operation", operationID, "url", url, "status", resp.StatusCode, "duration", duration, "traceID", extractTraceID(traceParent))

	if !success(resp.StatusCode) {
		return nil, newFetchError(url, resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.validator != nil {
		if err := c.validator.ValidateResponse(ctx, operationID, req, resp, body); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSchema, operationID, err)
		}
	}

	return body, nil
}

// get performs a single shot request and decodes the response.
func get[T any](ctx context.Context, c *Client, operationID, url string) (*T, error) {
	body, err := c.doRequest(ctx, operationID, url)
	if err != nil {
		return nil, err
	}

	var result T

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: decoding %s response: %w", ErrSchema, operationID, err)
	}

	return &result, nil
}

// GetTestPackRun returns a detailed test pack run.
func (c *Client) GetTestPackRun(ctx context.Context, testPackRunID string) (*TestPackRun, error) {
	url, err := c.endpoints.TestPackRun(testPackRunID)
	if err != nil {
		return nil, err
	}

	return get[TestPackRun](ctx, c, openapi.OperationGetTestPackRun, url)
}

// GetTestResult returns a detailed test result.
func (c *Client) GetTestResult(ctx context.Context, testResultID string) (*TestResult, error) {
	url, err := c.endpoints.TestResult(testResultID)
	if err != nil {
		return nil, err
	}

	return get[TestResult](ctx, c, openapi.OperationGetTestResult, url)
}

// ListDevices returns every device visible to the token.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	return FetchAll[Device](ctx, c, openapi.OperationListDevices, c.endpoints.Devices())
}

// ListTests returns every test defined for an application version.
func (c *Client) ListTests(ctx context.Context, appID, versionID string) ([]Test, error) {
	url, err := c.endpoints.Tests(appID, versionID)
	if err != nil {
		return nil, err
	}

	return FetchAll[Test](ctx, c, openapi.OperationListTests, url)
}
