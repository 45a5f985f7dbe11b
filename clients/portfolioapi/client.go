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

// Package portfolioapi is the client for the portfolio site API. It attaches the
// session's bearer credential to every call and, when the API reports an expired
// credential, refreshes it once before giving up and logging the session out.
package portfolioapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thomasg208/thomasai-resume/clients/requests"
	"github.com/thomasg208/thomasai-resume/middleware/logger"
	"github.com/thomasg208/thomasai-resume/utils"
)

const (
	LoginPath   = "/auth/login"
	RefreshPath = "/auth/refresh"
	LogoutPath  = "/auth/logout"
)

// Config contains configuration for the portfolio API client
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api
	BaseURL string
	// Session holds the credential and logout handler. A new empty session is used when nil.
	Session *Session
	// HTTPClient overrides the transport. When nil a cookie-carrying client wrapped
	// with RetryConfig is used.
	HTTPClient  requests.HttpClient
	Timeout     time.Duration
	RetryConfig requests.RequestRetryConfig
	// Metrics is optional.
	Metrics *Metrics
}

// Request describes a call relative to the API root.
type Request struct {
	// Name identifies the call in logs.
	Name   string
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte

	// retried is set once the request went through a refresh cycle.
	retried bool
}

// Response is a buffered successful API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body for status %d: %w", r.StatusCode, err)
	}
	return nil
}

// Client issues requests against the API root on behalf of a Session.
type Client struct {
	baseURL    string
	session    *Session
	httpClient requests.HttpClient
	metrics    *Metrics
}

// NewClient creates a client for the API rooted at cfg.BaseURL.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	session := cfg.Session
	if session == nil {
		session = NewSession()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		jar, err := NewCookieJar()
		if err != nil {
			return nil, err
		}
		httpClient = requests.NewRetryableHTTPClient(&http.Client{
			Jar:     jar,
			Timeout: cfg.Timeout,
		}, cfg.RetryConfig)
	}

	return &Client{
		baseURL:    baseURL,
		session:    session,
		httpClient: httpClient,
		metrics:    cfg.Metrics,
	}, nil
}

// Session returns the session backing this client.
func (c *Client) Session() *Session {
	return c.session
}

// SetCredential replaces the bearer token used for subsequent requests.
func (c *Client) SetCredential(token string) {
	c.session.SetCredential(token)
}

// SetLogoutHandler replaces the callback invoked when the session cannot be recovered.
func (c *Client) SetLogoutHandler(fn func()) {
	c.session.SetLogoutHandler(fn)
}

// Do sends req and returns the response when it is 2xx. Any other response is returned
// as a *requests.HttpError. A 401 flagged as refreshable triggers one credential refresh
// and one re-issue of the request; unrecoverable 401s invoke the logout handler.
// req itself is not modified.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", utils.ErrInvalidInput)
	}
	attempt := *req
	attempt.Header = req.Header.Clone()
	attempt.retried = false

	log := logger.GetLogger(ctx).With(
		slog.String("request", attempt.name()),
		slog.String("path", attempt.Path),
	)

	for {
		result := c.send(ctx, &attempt)
		if err := result.Err(); err != nil {
			c.metrics.observeRequest(outcomeTransportError)
			return nil, err
		}

		decision := Decide(result.StatusCode(), result.Body(), attempt.retried)
		switch decision.Outcome {
		case Succeeded:
			c.metrics.observeRequest(outcomeSucceeded)
			return &Response{
				StatusCode: result.StatusCode(),
				Header:     result.Header(),
				Body:       result.Body(),
			}, nil

		case NeedsRefreshRetry:
			attempt.retried = true
			log.Info("credential rejected, refreshing")
			if err := c.refreshCredential(ctx); err != nil {
				if ctx.Err() != nil {
					// Cancelled by the caller, the session may still be valid.
					log.Debug("credential refresh interrupted", slog.String("error", err.Error()))
					c.metrics.observeRequest(outcomeCancelled)
					return nil, fmt.Errorf("credential refresh interrupted: %w", ctx.Err())
				}
				log.Warn("credential refresh failed, logging out", slog.String("error", err.Error()))
				c.metrics.observeRequest(outcomeLoggedOut)
				c.logout()
				return nil, result.AsError()
			}
			log.Debug("credential refreshed, re-issuing request")

		default:
			if decision.Logout {
				log.Warn("session is no longer authorized, logging out",
					slog.Int("status", result.StatusCode()),
					slog.Bool("retried", attempt.retried))
				c.metrics.observeRequest(outcomeLoggedOut)
				c.logout()
			} else {
				c.metrics.observeRequest(outcomeFailed)
			}
			return nil, result.AsError()
		}
	}
}

// refreshCredential asks the API for a new token using the refresh cookie and stores it.
func (c *Client) refreshCredential(ctx context.Context) error {
	req := &requests.HttpRequest{
		Name:   "portfolioapi.refresh",
		URL:    c.url(RefreshPath),
		Method: http.MethodPost,
	}
	token, err := c.fetchToken(ctx, req)
	if err != nil {
		c.metrics.observeRefresh(false)
		return fmt.Errorf("%w: %w", utils.ErrRefreshFailed, err)
	}
	c.metrics.observeRefresh(true)
	c.session.SetCredential(token)
	return nil
}

// fetchToken sends a login or refresh request and extracts the token field.
func (c *Client) fetchToken(ctx context.Context, req *requests.HttpRequest) (string, error) {
	result := requests.SendRequest(ctx, c.httpClient, req)
	if err := result.Err(); err != nil {
		return "", err
	}
	if !requests.IsSuccessStatus(result.StatusCode()) {
		return "", result.AsError()
	}
	if len(result.Body()) == 0 {
		return "", utils.ErrMissingToken
	}
	var tokenResp utils.TokenResponse
	if err := json.Unmarshal(result.Body(), &tokenResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode token response: %w", utils.ErrMissingToken, err)
	}
	if tokenResp.Token == "" {
		return "", utils.ErrMissingToken
	}
	return tokenResp.Token, nil
}

func (c *Client) send(ctx context.Context, req *Request) *requests.Result {
	httpReq := &requests.HttpRequest{
		Name:    req.name(),
		URL:     c.url(req.Path),
		Method:  req.Method,
		Headers: req.Header.Clone(),
		Query:   req.Query,
		Body:    req.Body,
	}
	if token := c.session.Credential(); token != "" {
		httpReq.SetHeader("Authorization", "Bearer "+token)
	} else if httpReq.Headers != nil {
		httpReq.Headers.Del("Authorization")
	}
	return requests.SendRequest(ctx, c.httpClient, httpReq)
}

func (c *Client) logout() {
	c.metrics.observeLogout()
	c.session.logout()
}

func (c *Client) url(path string) string {
	if path == "" {
		return c.baseURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (r *Request) name() string {
	if r.Name != "" {
		return r.Name
	}
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	return "portfolioapi." + method + " " + r.Path
}

// IsUnauthorized reports whether err is a 401 returned by the API.
func IsUnauthorized(err error) bool {
	return requests.IsStatus(err, http.StatusUnauthorized)
}

// errorMessage extracts the "error" field from an API error body.
func errorMessage(err error) string {
	var httpErr *requests.HttpError
	if !errors.As(err, &httpErr) || httpErr.Body == "" {
		return ""
	}
	var payload utils.ErrorResponse
	if json.Unmarshal([]byte(httpErr.Body), &payload) != nil {
		return ""
	}
	return strings.TrimSpace(payload.Error)
}
