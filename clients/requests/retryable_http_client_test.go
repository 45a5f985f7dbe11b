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
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noWait(_, _ time.Duration, _ int, _ *http.Response) time.Duration { return 0 }

// flakyClient fails the first failures calls at the transport level.
type flakyClient struct {
	failures int32
	calls    atomic.Int32
	bodies   []string
	next     HttpClient
}

func (c *flakyClient) Do(req *http.Request) (*http.Response, error) {
	n := c.calls.Add(1)
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		c.bodies = append(c.bodies, string(b))
		req.Body = io.NopCloser(bytes.NewReader(b))
	}
	if n <= c.failures {
		return nil, errors.New("dial tcp: connection refused")
	}
	return c.next.Do(req)
}

func TestRetryableHTTPClient(t *testing.T) {
	t.Run("does not retry by default", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewRetryableHTTPClient(nil)
		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("retries transport errors and replays the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))
		defer server.Close()

		flaky := &flakyClient{failures: 2, next: http.DefaultClient}
		client := NewRetryableHTTPClient(flaky, RequestRetryConfig{RetryAttemptsMax: 3, Backoff: noWait})
		req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader("payload"))
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(body))
		assert.Equal(t, int32(3), flaky.calls.Load())
		assert.Equal(t, []string{"payload", "payload", "payload"}, flaky.bodies)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		flaky := &flakyClient{failures: 10, next: http.DefaultClient}
		client := NewRetryableHTTPClient(flaky, RequestRetryConfig{RetryAttemptsMax: 2, Backoff: noWait})
		req, err := http.NewRequest(http.MethodGet, "http://example.invalid", nil)
		require.NoError(t, err)

		_, err = client.Do(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 3 attempts")
		assert.Equal(t, int32(3), flaky.calls.Load())
	})

	t.Run("returns failure statuses without retrying", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "upstream down")
		}))
		defer server.Close()

		client := NewRetryableHTTPClient(nil, RequestRetryConfig{RetryAttemptsMax: 3, Backoff: noWait})
		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "upstream down", string(body))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("stops waiting when the context is cancelled", func(t *testing.T) {
		flaky := &flakyClient{failures: 10, next: http.DefaultClient}
		client := NewRetryableHTTPClient(flaky, RequestRetryConfig{
			RetryAttemptsMax: 5,
			Backoff:          func(_, _ time.Duration, _ int, _ *http.Response) time.Duration { return time.Hour },
		})
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://example.invalid", nil)
		require.NoError(t, err)

		_, err = client.Do(req)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, int32(1), flaky.calls.Load())
	})
}
