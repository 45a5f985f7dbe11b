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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
		assert.Equal(t, 0, cfg.API.RetryAttemptsMax)
		assert.Equal(t, 8080, cfg.DevServer.Port)
		assert.Equal(t, 15*time.Minute, cfg.DevServer.AccessTokenTTL)
		assert.True(t, cfg.AutoMaxProcsEnabled)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://thomasai.dev/api")
		t.Setenv("API_RETRY_ATTEMPTS_MAX", "2")
		t.Setenv("DEV_SERVER_ACCESS_TOKEN_TTL", "30s")
		t.Setenv("DEV_SERVER_COOKIE_SECURE", "true")
		t.Setenv("LOG_LEVEL", "DEBUG")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://thomasai.dev/api", cfg.API.BaseURL)
		assert.Equal(t, 2, cfg.API.RetryAttemptsMax)
		assert.Equal(t, 30*time.Second, cfg.DevServer.AccessTokenTTL)
		assert.True(t, cfg.DevServer.CookieSecure)
		assert.Equal(t, "DEBUG", cfg.LogLevel)
	})

	t.Run("collects every validation error", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "not-a-url")
		t.Setenv("API_TIMEOUT_SECONDS", "zero")
		t.Setenv("DEV_SERVER_PORT", "70000")
		t.Setenv("DEV_SERVER_REFRESH_TOKEN_TTL", "1m")
		t.Setenv("DEV_SERVER_ACCESS_TOKEN_TTL", "5m")

		_, err := Load()
		require.Error(t, err)
		assert.ErrorContains(t, err, "API_BASE_URL")
		assert.ErrorContains(t, err, "API_TIMEOUT_SECONDS must be an integer")
		assert.ErrorContains(t, err, "DEV_SERVER_PORT")
		assert.ErrorContains(t, err, "DEV_SERVER_REFRESH_TOKEN_TTL")
	})

	t.Run("reads values from an env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("DEV_SERVER_DEMO_EMAIL=file@thomasai.dev\n"), 0o600))
		t.Setenv("DEV_SERVER_DEMO_EMAIL", "")
		require.NoError(t, os.Unsetenv("DEV_SERVER_DEMO_EMAIL"))
		require.NoError(t, godotenv.Load(path))
		t.Cleanup(func() { _ = os.Unsetenv("DEV_SERVER_DEMO_EMAIL") })

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "file@thomasai.dev", cfg.DevServer.DemoEmail)
	})
}
