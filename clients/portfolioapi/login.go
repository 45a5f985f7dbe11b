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

package portfolioapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/thomasg208/thomasai-resume/clients/requests"
	"github.com/thomasg208/thomasai-resume/middleware/logger"
	"github.com/thomasg208/thomasai-resume/utils"
)

const (
	defaultLoginFailureMessage  = "Login failed. Please check your credentials and try again."
	invalidLoginResponseMessage = "Invalid response from server"
)

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginError is returned when login does not produce a token. Message is suitable
// for showing to the user.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login failed: %s", e.Message)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

// Login exchanges credentials for a bearer token and stores it on the session.
// The API also sets the refresh cookie used by later refresh calls.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return "", fmt.Errorf("%w: email and password are required", utils.ErrInvalidInput)
	}

	req, err := (&requests.HttpRequest{
		Name:   "portfolioapi.login",
		URL:    c.url(LoginPath),
		Method: http.MethodPost,
	}).SetJSON(creds)
	if err != nil {
		return "", err
	}

	token, err := c.fetchToken(ctx, req)
	if err != nil {
		if errors.Is(err, utils.ErrMissingToken) {
			return "", &LoginError{Message: invalidLoginResponseMessage, Err: err}
		}
		msg := errorMessage(err)
		if msg == "" {
			msg = defaultLoginFailureMessage
		}
		return "", &LoginError{Message: msg, Err: err}
	}

	c.session.SetCredential(token)
	logger.GetLogger(ctx).Info("logged in", slog.String("email", creds.Email))
	return token, nil
}

// Logout revokes the refresh cookie on the API, drops the credential and invokes the
// logout handler. The local session is cleared even when the API call fails.
func (c *Client) Logout(ctx context.Context) error {
	result := requests.SendRequest(ctx, c.httpClient, &requests.HttpRequest{
		Name:   "portfolioapi.logout",
		URL:    c.url(LogoutPath),
		Method: http.MethodPost,
	})
	c.session.Clear()
	c.logout()

	if err := result.Err(); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	if !requests.IsSuccessStatus(result.StatusCode()) {
		return result.AsError()
	}
	return nil
}
