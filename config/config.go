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

import "time"

// Config holds all configuration for the application
type Config struct {
	LogLevel            string
	AutoMaxProcsEnabled bool

	// API client configuration
	API APIConfig

	// Local development API server configuration
	DevServer DevServerConfig
}

// APIConfig configures the authenticated API client
type APIConfig struct {
	// BaseURL is the API root that request paths are relative to
	BaseURL        string
	TimeoutSeconds int
	// RetryAttemptsMax is the number of transport level retries. 0 disables retries.
	RetryAttemptsMax   int
	RetryWaitMinMillis int
	RetryWaitMaxMillis int
}

// DevServerConfig configures the local stand-in for the site backend
type DevServerConfig struct {
	Host string
	Port int

	// SigningKey signs HS256 access tokens
	SigningKey      string
	Issuer          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	CookieSecure    bool

	// UsersFile points at a YAML list of accounts. When empty the demo account is used.
	UsersFile    string
	DemoEmail    string
	DemoPassword string
	DemoName     string

	// CORSAllowedOrigin is the single allowed origin for CORS; use "*" to allow all
	CORSAllowedOrigin string

	// HTTP Server timeout configurations
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
	MaxHeaderBytes      int
}
