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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomasg208/thomasai-resume/utils"
)

func TestClientLogin(t *testing.T) {
	t.Run("stores the token on success", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var creds Credentials
			if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Email != "thomas@example.com" || creds.Password != "hunter2" {
				writeJSON(w, http.StatusBadRequest, `{"error":"bad payload"}`)
				return
			}
			writeJSON(w, http.StatusOK, `{"token":"abc"}`)
		})
		client, logouts := newTestClient(t, api)

		token, err := client.Login(context.Background(), Credentials{Email: " thomas@example.com ", Password: "hunter2"})
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
		assert.Equal(t, "abc", client.Session().Credential())
		assert.Zero(t, logouts.count())
	})

	t.Run("surfaces the server error message", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("POST /api/auth/login", respond(http.StatusUnauthorized, `{"error":"invalid email or password"}`))
		client, logouts := newTestClient(t, api)

		_, err := client.Login(context.Background(), Credentials{Email: "a@b.c", Password: "wrong"})
		var loginErr *LoginError
		require.ErrorAs(t, err, &loginErr)
		assert.Equal(t, "invalid email or password", loginErr.Message)
		assert.True(t, IsUnauthorized(err))
		assert.Zero(t, logouts.count())
		assert.Zero(t, api.count("/api/auth/refresh"))
		assert.False(t, client.Session().HasCredential())
	})

	t.Run("falls back to a generic message", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("POST /api/auth/login", respond(http.StatusInternalServerError, ``))
		client, _ := newTestClient(t, api)

		_, err := client.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw"})
		var loginErr *LoginError
		require.ErrorAs(t, err, &loginErr)
		assert.Equal(t, defaultLoginFailureMessage, loginErr.Message)
	})

	t.Run("rejects a success without token", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("POST /api/auth/login", respond(http.StatusOK, `{"user":"x"}`))
		client, _ := newTestClient(t, api)

		_, err := client.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw"})
		var loginErr *LoginError
		require.ErrorAs(t, err, &loginErr)
		assert.Equal(t, invalidLoginResponseMessage, loginErr.Message)
		assert.ErrorIs(t, err, utils.ErrMissingToken)
	})

	t.Run("rejects a success that is not JSON", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("POST /api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>maintenance</html>"))
		})
		client, _ := newTestClient(t, api)

		_, err := client.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw"})
		var loginErr *LoginError
		require.ErrorAs(t, err, &loginErr)
		assert.Equal(t, invalidLoginResponseMessage, loginErr.Message)
		assert.ErrorIs(t, err, utils.ErrMissingToken)
		assert.False(t, client.Session().HasCredential())
	})

	t.Run("requires email and password", func(t *testing.T) {
		api := newFakeAPI(t)
		client, _ := newTestClient(t, api)

		_, err := client.Login(context.Background(), Credentials{Email: "  ", Password: "pw"})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		_, err = client.Login(context.Background(), Credentials{Email: "a@b.c"})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Zero(t, api.count("/api/auth/login"))
	})
}

func TestClientLogout(t *testing.T) {
	t.Run("revokes remotely and clears the session", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("POST /api/auth/logout", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		client, logouts := newTestClient(t, api)
		client.SetCredential("abc")

		require.NoError(t, client.Logout(context.Background()))
		assert.False(t, client.Session().HasCredential())
		assert.Equal(t, 1, logouts.count())
		assert.Equal(t, 1, api.count("/api/auth/logout"))
	})

	t.Run("clears the session even when the API fails", func(t *testing.T) {
		api := newFakeAPI(t)
		api.handle("POST /api/auth/logout", respond(http.StatusInternalServerError, `{"error":"boom"}`))
		client, logouts := newTestClient(t, api)
		client.SetCredential("abc")

		err := client.Logout(context.Background())
		requireHTTPError(t, err, http.StatusInternalServerError)
		assert.False(t, client.Session().HasCredential())
		assert.Equal(t, 1, logouts.count())
	})
}
