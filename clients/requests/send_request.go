// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package requests

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/thomasg208/thomasai-resume/middleware/logger"
)

// HttpClient interface for making HTTP requests.
// Use RetryableHTTPClient for retry support.
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Compile-time check that http.Client implements HttpClient
var _ HttpClient = (*http.Client)(nil)

// SendRequest builds and sends an HTTP request, returning a Result for response handling.
func SendRequest(ctx context.Context, client HttpClient, req *HttpRequest) *Result {
	log := logger.GetLogger(ctx).With(slog.String("request", req.Name))

	httpReq, err := req.buildHttpRequest(ctx)
	if err != nil {
		return &Result{err: fmt.Errorf("failed to build http request: %w", err)}
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return &Result{err: fmt.Errorf("request failed: %w", err)}
	}

	respBody, err := io.ReadAll(resp.Body)
	closeBody(resp.Body, log, "response")
	if err != nil {
		return &Result{err: fmt.Errorf("failed to read response body: %w", err)}
	}
	log.Debug("request completed", slog.Int("status", resp.StatusCode), slog.Int("bytes", len(respBody)))

	return &Result{response: resp, responseBody: respBody}
}

// Result holds the response from SendRequest.
type Result struct {
	responseBody []byte
	response     *http.Response
	err          error
}

// Err returns the transport error, if any.
func (r *Result) Err() error {
	return r.err
}

// StatusCode returns the response status, or 0 when no response was received.
func (r *Result) StatusCode() int {
	if r.err != nil || r.response == nil {
		return 0
	}
	return r.response.StatusCode
}

// Body returns the buffered response body.
func (r *Result) Body() []byte {
	return r.responseBody
}

// Header returns the response headers.
func (r *Result) Header() http.Header {
	if r.err != nil || r.response == nil {
		return http.Header{}
	}
	return r.response.Header
}

// AsError converts the response into an HttpError.
func (r *Result) AsError() error {
	if r.err != nil {
		return r.err
	}
	return &HttpError{
		StatusCode: r.StatusCode(),
		Header:     r.Header().Clone(),
		Body:       string(r.responseBody),
	}
}
