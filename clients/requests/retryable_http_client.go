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
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/thomasg208/thomasai-resume/middleware/logger"
)

// RetryableHTTPClient wraps an HttpClient with retry logic for transport failures
// and attempt timeouts.
type RetryableHTTPClient struct {
	client HttpClient
	config RequestRetryConfig
}

// NewRetryableHTTPClient creates a new RetryableHTTPClient.
// Config is optional - defaults will be used if not provided.
func NewRetryableHTTPClient(client HttpClient, config ...RequestRetryConfig) *RetryableHTTPClient {
	if client == nil {
		client = &http.Client{}
	}
	var cfg RequestRetryConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	return &RetryableHTTPClient{client: client, config: cfg.withDefaults()}
}

// Do executes the request, retrying at most RetryAttemptsMax times. The returned
// response body is fully buffered.
func (c *RetryableHTTPClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := logger.GetLogger(ctx).With(
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
	)

	body, err := snapshotBody(req, log)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
		}
		last := attempt >= c.config.RetryAttemptsMax

		resp, retry, err := c.doAttempt(ctx, req, attempt, last, log)
		if !retry {
			return resp, err
		}

		wait := c.config.Backoff(c.config.RetryWaitMin, c.config.RetryWaitMax, attempt, nil)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during retry wait: %w", ctx.Err())
		}
	}
}

// doAttempt sends one attempt under its own timeout. retry is only reported for
// transport failures, so no response accompanies it.
func (c *RetryableHTTPClient) doAttempt(ctx context.Context, req *http.Request, attempt int, last bool, log *slog.Logger) (*http.Response, bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.config.AttemptTimeout)
	defer cancel()

	log = log.With(
		slog.Int("attempt", attempt+1),
		slog.Int("maxAttempts", c.config.RetryAttemptsMax+1),
	)

	resp, err := c.client.Do(req.Clone(attemptCtx))
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, fmt.Errorf("context cancelled or timed out: %w", ctx.Err())
		}
		reason := "failed"
		if attemptCtx.Err() != nil {
			reason = "timed out"
		}
		if last {
			log.Warn("HTTP request "+reason+", giving up", slog.String("error", err.Error()))
			return nil, false, fmt.Errorf("request %s after %d attempts: %w", reason, attempt+1, err)
		}
		log.Debug("HTTP request "+reason+", retrying", slog.String("error", err.Error()))
		return nil, true, nil
	}

	// The body must be read before attemptCtx is cancelled.
	if err := bufferBody(resp, log); err != nil {
		return nil, false, err
	}
	return resp, false, nil
}

func snapshotBody(req *http.Request, log *slog.Logger) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(req.Body)
	closeBody(req.Body, log, "request")
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return body, nil
}

func bufferBody(resp *http.Response, log *slog.Logger) error {
	body, err := io.ReadAll(resp.Body)
	closeBody(resp.Body, log, "response")
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return nil
}

func closeBody(body io.Closer, log *slog.Logger, kind string) {
	if err := body.Close(); err != nil {
		log.Warn("failed to close "+kind+" body", slog.String("error", err.Error()))
	}
}
