// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/ljt019/jotview/lib/clock"
	"github.com/ljt019/jotview/lib/netutil"
	"github.com/ljt019/jotview/lib/schema/jotform"
)

// defaultBaseURL is the jotform service endpoint assumed when Config
// leaves BaseURL empty. The service conventionally runs next to the
// exhibit floor network on port 3030.
const defaultBaseURL = "http://localhost:3030"

// Config holds configuration for creating a jotform service Client.
type Config struct {
	// BaseURL is the root URL for service requests. Defaults to
	// "http://localhost:3030". Must use http or https.
	BaseURL string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient. Set a Timeout on it to bound requests.
	HTTPClient *http.Client

	// Clock provides time operations. Defaults to clock.Real().
	// Inject clock.Fake() in tests for deterministic behavior.
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed client for the jotform service with bounded
// response reads and structured error handling.
type Client struct {
	baseURL    string
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient creates a jotform service client from the given
// configuration. Returns an error when the base URL does not use an
// http or https scheme.
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("jotclient: base URL must use http or https (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		clock:      clk,
		logger:     logger,
	}, nil
}

// BaseURL returns the resolved service base URL, useful for log and
// error messages.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// FetchJotforms retrieves every jotform from the service. The service
// returns the full set on each call; there is no pagination or
// filtering on the wire.
func (client *Client) FetchJotforms(ctx context.Context) ([]jotform.Jotform, error) {
	body, err := client.do(ctx, http.MethodGet, "/jotforms", nil)
	if err != nil {
		return nil, err
	}

	var forms []jotform.Jotform
	if err := json.Unmarshal(body, &forms); err != nil {
		return nil, fmt.Errorf("jotclient: decoding jotforms response: %w", err)
	}
	return forms, nil
}

// statusUpdateRequest is the wire body for POST /jotforms/{id}/status.
type statusUpdateRequest struct {
	NewStatus jotform.Status `json:"new_status"`
}

// UpdateStatus records a status change for one jotform on the service.
// The id is the jotform's opaque identifier; status must be one of the
// four known values. The response body carries no information the
// client needs, so success is just a nil error.
func (client *Client) UpdateStatus(ctx context.Context, id string, status jotform.Status) error {
	if id == "" {
		return fmt.Errorf("jotclient: empty jotform id")
	}
	if !status.Known() {
		return fmt.Errorf("jotclient: refusing to send unknown status %q", status)
	}

	path := "/jotforms/" + url.PathEscape(id) + "/status"
	_, err := client.do(ctx, http.MethodPost, path, statusUpdateRequest{NewStatus: status})
	return err
}

// do executes a service request. The path is relative to the base URL.
// Non-GET requests JSON-encode requestBody (pass nil for no body).
// Returns the response body as raw bytes; on non-2xx responses,
// returns an *APIError.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	requestURL := client.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("jotclient: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("jotclient: creating request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	start := client.clock.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("jotclient: %s %s: %w", method, requestURL, err)
	}
	defer response.Body.Close()

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("jotclient: reading response body: %w", err)
	}

	client.logger.Debug("jotform service request",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"elapsed", client.clock.Now().Sub(start),
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIErrorFromBody(response.StatusCode, body)
	}

	return body, nil
}
