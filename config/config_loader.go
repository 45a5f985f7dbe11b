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
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDevSigningKey is only meant for local development.
const DefaultDevSigningKey = "dev-signing-key-change-me"

var config *Config

func GetConfig() *Config {
	return config
}

func init() {
	loadEnvs()
}

func loadEnvs() {
	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath != "" {
		err := godotenv.Load(envFilePath)
		if err != nil {
			panic(err)
		}
	}

	r := &configReader{}
	config = read(r)
	r.logAndExitIfErrorsFound()

	slog.Info("configReader: configs loaded")
}

// Load reads the configuration from the environment and returns every validation error found.
func Load() (*Config, error) {
	r := &configReader{}
	cfg := read(r)
	if err := r.err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read(r *configReader) *Config {
	cfg := &Config{}
	cfg.LogLevel = r.readOptionalString("LOG_LEVEL", "INFO")
	cfg.AutoMaxProcsEnabled = r.readOptionalBool("AUTO_MAX_PROCS_ENABLED", true)

	cfg.API = APIConfig{
		BaseURL:            r.readOptionalString("API_BASE_URL", "http://localhost:8080/api"),
		TimeoutSeconds:     int(r.readOptionalInt64("API_TIMEOUT_SECONDS", 30)),
		RetryAttemptsMax:   int(r.readOptionalInt64("API_RETRY_ATTEMPTS_MAX", 0)),
		RetryWaitMinMillis: int(r.readOptionalInt64("API_RETRY_WAIT_MIN_MS", 1000)),
		RetryWaitMaxMillis: int(r.readOptionalInt64("API_RETRY_WAIT_MAX_MS", 10000)),
	}

	cfg.DevServer = DevServerConfig{
		Host:              r.readOptionalString("DEV_SERVER_HOST", ""),
		Port:              int(r.readOptionalInt64("DEV_SERVER_PORT", 8080)),
		SigningKey:        r.readOptionalString("DEV_SERVER_SIGNING_KEY", DefaultDevSigningKey),
		Issuer:            r.readOptionalString("DEV_SERVER_ISSUER", "thomasai-resume-dev"),
		AccessTokenTTL:    r.readOptionalDuration("DEV_SERVER_ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:   r.readOptionalDuration("DEV_SERVER_REFRESH_TOKEN_TTL", 7*24*time.Hour),
		CookieSecure:      r.readOptionalBool("DEV_SERVER_COOKIE_SECURE", false),
		UsersFile:         r.readOptionalString("DEV_SERVER_USERS_FILE", ""),
		DemoEmail:         r.readOptionalString("DEV_SERVER_DEMO_EMAIL", "demo@thomasai.dev"),
		DemoPassword:      r.readOptionalString("DEV_SERVER_DEMO_PASSWORD", "demo-password"),
		DemoName:          r.readOptionalString("DEV_SERVER_DEMO_NAME", "Demo Visitor"),
		CORSAllowedOrigin: r.readOptionalString("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),

		ReadTimeoutSeconds:  int(r.readOptionalInt64("HTTP_READ_TIMEOUT_SECONDS", 10)),
		WriteTimeoutSeconds: int(r.readOptionalInt64("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		IdleTimeoutSeconds:  int(r.readOptionalInt64("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		MaxHeaderBytes:      int(r.readOptionalInt64("HTTP_MAX_HEADER_BYTES", 65536)), // 1024 * 64
	}

	validateAPIConfigs(cfg, r)
	validateDevServerConfigs(cfg, r)
	return cfg
}

func validateAPIConfigs(cfg *Config, r *configReader) {
	if u, err := url.ParseRequestURI(cfg.API.BaseURL); err != nil || u.Host == "" {
		r.errors = append(r.errors, fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", cfg.API.BaseURL))
	}
	if cfg.API.TimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("API_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.API.TimeoutSeconds))
	}
	if cfg.API.RetryAttemptsMax < 0 {
		r.errors = append(r.errors, fmt.Errorf("API_RETRY_ATTEMPTS_MAX must not be negative, got %d", cfg.API.RetryAttemptsMax))
	}
	if cfg.API.RetryWaitMinMillis <= 0 || cfg.API.RetryWaitMinMillis > cfg.API.RetryWaitMaxMillis {
		r.errors = append(r.errors, fmt.Errorf("API_RETRY_WAIT_MIN_MS (%d) must be > 0 and <= API_RETRY_WAIT_MAX_MS (%d)",
			cfg.API.RetryWaitMinMillis, cfg.API.RetryWaitMaxMillis))
	}
}

func validateDevServerConfigs(cfg *Config, r *configReader) {
	d := cfg.DevServer
	if d.Port < 1 || d.Port > 65535 {
		r.errors = append(r.errors, fmt.Errorf("DEV_SERVER_PORT must be between 1 and 65535, got %d", d.Port))
	}
	if d.SigningKey == "" {
		r.errors = append(r.errors, fmt.Errorf("DEV_SERVER_SIGNING_KEY must be non-empty"))
	}
	if d.AccessTokenTTL <= 0 {
		r.errors = append(r.errors, fmt.Errorf("DEV_SERVER_ACCESS_TOKEN_TTL must be positive, got %s", d.AccessTokenTTL))
	}
	if d.RefreshTokenTTL <= d.AccessTokenTTL {
		r.errors = append(r.errors, fmt.Errorf("DEV_SERVER_REFRESH_TOKEN_TTL (%s) must be longer than DEV_SERVER_ACCESS_TOKEN_TTL (%s)",
			d.RefreshTokenTTL, d.AccessTokenTTL))
	}
	if d.ReadTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_READ_TIMEOUT_SECONDS must be greater than 0, got %d", d.ReadTimeoutSeconds))
	}
	if d.WriteTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_WRITE_TIMEOUT_SECONDS must be greater than 0, got %d", d.WriteTimeoutSeconds))
	}
	if d.IdleTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_IDLE_TIMEOUT_SECONDS must be greater than 0, got %d", d.IdleTimeoutSeconds))
	}
	if d.MaxHeaderBytes < 1024 || d.MaxHeaderBytes > 1048576 { // 1KB to 1MB
		r.errors = append(r.errors, fmt.Errorf("HTTP_MAX_HEADER_BYTES must be between 1024 and 1048576, got %d", d.MaxHeaderBytes))
	}
	if d.SigningKey == DefaultDevSigningKey {
		slog.Warn("DEV_SERVER_SIGNING_KEY is using the default dev value, set it for shared environments")
	}
}
