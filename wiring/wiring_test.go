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

package wiring

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomasg208/thomasai-resume/clients/portfolioapi"
	"github.com/thomasg208/thomasai-resume/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		LogLevel: "INFO",
		API: config.APIConfig{
			BaseURL:        baseURL,
			TimeoutSeconds: 5,
		},
		DevServer: config.DevServerConfig{
			Host:              "127.0.0.1",
			Port:              8080,
			SigningKey:        "test-signing-key-with-enough-bytes",
			Issuer:            "test-issuer",
			AccessTokenTTL:    15 * time.Minute,
			RefreshTokenTTL:   time.Hour,
			DemoEmail:         "demo@example.com",
			DemoPassword:      "demo-password",
			DemoName:          "Demo",
			CORSAllowedOrigin: "*",
		},
	}
}

func TestInitializeClient(t *testing.T) {
	t.Run("wires a client sharing the session", func(t *testing.T) {
		params, err := InitializeClient(testConfig("http://localhost:8080/api"))
		require.NoError(t, err)
		require.NotNil(t, params.Client)
		require.NotNil(t, params.Logger)

		params.Session.SetCredential("token")
		assert.Equal(t, "token", params.Client.Session().Credential())

		families, err := params.Registry.Gather()
		require.NoError(t, err)
		assert.NotEmpty(t, families)
	})

	t.Run("rejects an invalid base URL", func(t *testing.T) {
		_, err := InitializeClient(testConfig(""))
		assert.Error(t, err)
	})
}

func TestInitializeDevServer(t *testing.T) {
	server, err := InitializeDevServer(testConfig(""))
	require.NoError(t, err)

	ts := httptest.NewServer(server.Server.Handler())
	defer ts.Close()

	client, err := InitializeClient(testConfig(ts.URL + "/api"))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = client.Client.Login(ctx, portfolioapi.Credentials{Email: "demo@example.com", Password: "demo-password"})
	require.NoError(t, err)
	require.NoError(t, client.Client.GetJSON(ctx, "/widgets", nil))

	health, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}
