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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alessio/shellescape"
	"github.com/onsi/ginkgo/v2"
)

const (
	// HeaderAcceptCDP requests version specific server behaviour.
	HeaderAcceptCDP = "Accept-CDP"

	contentTypeJSON = "application/json"

	// maxCurlBody bounds the request body echoed in curl reproductions.
	maxCurlBody = 4096
)

//go:generate go tool mockgen -source=api_client.go -destination=mock/interfaces.go -package=mock

// Doer sends a single HTTP request, *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger receives the client's diagnostic output.
type Logger interface {
	Printf(format string, args ...any)
}

type APIClient struct {
	baseURL   string
	client    Doer
	username  string
	password  string
	version   string
	config    *TestConfig
	endpoints *Endpoints
	logger    Logger
	validator *ResponseValidator
}

// Option customizes a client at construction time.
type Option func(*APIClient)

// WithDoer replaces the HTTP transport.
func WithDoer(doer Doer) Option {
	return func(c *APIClient) {
		c.client = doer
	}
}

// WithLogger replaces the default GinkgoWriter output.
func WithLogger(logger Logger) Option {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// WithResponseValidator validates every successful JSON response.
func WithResponseValidator(validator *ResponseValidator) Option {
	return func(c *APIClient) {
		c.validator = validator
	}
}

func NewAPIClientWithConfig(config *TestConfig, options ...Option) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimSuffix(config.Hostname, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		username:  config.Username,
		password:  config.Password,
		version:   config.DefaultVersion,
		config:    config,
		endpoints: NewEndpoints(),
		logger:    ginkgo.GinkgoWriter,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// NewAPIClientFromConfig applies the response validator when the
// configuration asks for one.
func NewAPIClientFromConfig(config *TestConfig, options ...Option) (*APIClient, error) {
	if config.ValidateResponses {
		validator, err := NewResponseValidator()
		if err != nil {
			return nil, err
		}

		options = append([]Option{WithResponseValidator(validator)}, options...)
	}

	return NewAPIClientWithConfig(config, options...), nil
}

func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// SetCredentials switches the identity used for subsequent requests, used by
// permission tests to act as a less privileged person.
func (c *APIClient) SetCredentials(username, password string) {
	c.username = username
	c.password = password
}

// Get issues a GET and parses the JSON array response.  An empty body yields nil.
func (c *APIClient) Get(ctx context.Context, path string) ([]Thing, error) {
	return c.GetWithVersion(ctx, path, c.version)
}

// GetWithVersion is Get with an explicit Accept-CDP version.
func (c *APIClient) GetWithVersion(ctx context.Context, path, version string) ([]Thing, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, path, nil, "", version)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", path, err)
	}

	return ParseThings(respBody)
}

// Post issues a POST of a JSON change request and parses the JSON array response.
// The body may be raw JSON bytes, a string, or any value to marshal.
func (c *APIClient) Post(ctx context.Context, path string, body any) ([]Thing, error) {
	return c.PostWithVersion(ctx, path, body, c.version)
}

// PostWithVersion is Post with an explicit Accept-CDP version.
func (c *APIClient) PostWithVersion(ctx context.Context, path string, body any, version string) ([]Thing, error) {
	data, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, path, data, contentTypeJSON, version)
	if err != nil {
		return nil, fmt.Errorf("posting to %s: %w", path, err)
	}

	return ParseThings(respBody)
}

// PostFile issues a multipart POST of a JSON change request together with a
// file attachment, as used to create file revisions.
func (c *APIClient) PostFile(ctx context.Context, path string, manifest any, filePath string) ([]Thing, error) {
	data, err := encodeBody(manifest)
	if err != nil {
		return nil, err
	}

	body, contentType, err := newMultipartBody(data, filePath)
	if err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, path, body, contentType, c.version)
	if err != nil {
		return nil, fmt.Errorf("posting file to %s: %w", path, err)
	}

	return ParseThings(respBody)
}

// Restore resets the server to its seeded dataset.
func (c *APIClient) Restore(ctx context.Context) error {
	//nolint:bodyclose // response body is closed in doRequest
	if _, _, err := c.doRequest(ctx, http.MethodPost, c.endpoints.Restore(), nil, "", ""); err != nil {
		return fmt.Errorf("restoring dataset: %w", err)
	}

	return nil
}

// ExportModel requests an exchange file for the given engineering model
// setups and returns the raw archive.
func (c *APIClient) ExportModel(ctx context.Context, modelSetupIids []string) ([]byte, error) {
	data, err := encodeBody(modelSetupIids)
	if err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.Export(), data, contentTypeJSON, c.version)
	if err != nil {
		return nil, fmt.Errorf("exporting models: %w", err)
	}

	return respBody, nil
}

// Response is the raw result of a request, for specs that need to look at
// headers or non-JSON bodies.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Do issues an arbitrary request and returns the raw response.  Non-2xx
// statuses are still reported as *HTTPError.
func (c *APIClient) Do(ctx context.Context, method, path string, body []byte, version string) (*Response, error) {
	contentType := ""
	if body != nil {
		contentType = contentTypeJSON
	}

	resp, respBody, err := c.doRequest(ctx, method, path, body, contentType, version)
	if resp == nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, err
}

func encodeBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	case string:
		return []byte(v), nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return data, nil
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.logger.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	c.logger.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs a non-success HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, actualStatus int, body, traceParent string) {
	c.logger.Printf("[%s %s] UNEXPECTED STATUS got=%d body=%s traceparent=%s\n", method, path, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	c.logger.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// logReproduction logs a curl command line that replays the request, minus the password.
func (c *APIClient) logReproduction(req *http.Request, body []byte) {
	c.logger.Printf("REPRODUCE: %s\n", c.curlCommand(req, body))
}

func (c *APIClient) curlCommand(req *http.Request, body []byte) string {
	args := []string{"curl", "-sS", "-X", req.Method}

	if c.username != "" {
		args = append(args, "-u", c.username)
	}

	for _, name := range []string{HeaderAcceptCDP, "Content-Type", "Traceparent"} {
		if value := req.Header.Get(name); value != "" && !strings.HasPrefix(value, "multipart/") {
			args = append(args, "-H", name+": "+value)
		}
	}

	if len(body) > 0 && len(body) <= maxCurlBody && req.Header.Get("Content-Type") == contentTypeJSON {
		args = append(args, "--data-binary", string(body))
	}

	args = append(args, req.URL.String())

	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = shellescape.Quote(arg)
	}

	return strings.Join(quoted, " ")
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body []byte, contentType, version string) (*http.Response, []byte, error) {
	fullURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if version != "" {
		req.Header.Set(HeaderAcceptCDP, version)
	}

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		c.logReproduction(req, body)

		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		c.logger.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		c.logger.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logUnexpectedStatus(method, path, resp.StatusCode, string(respBody), traceParent)
		c.logReproduction(req, body)

		return resp, respBody, newHTTPError(method, path, resp.StatusCode, respBody, extractTraceID(traceParent))
	}

	if c.validator != nil {
		if err := c.validator.Validate(ctx, req, resp.StatusCode, resp.Header, respBody); err != nil {
			c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "response contract violation")
			return resp, respBody, err
		}
	}

	return resp, respBody, nil
}
