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
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/crypto/bcrypt"

	"github.com/thomasg208/thomasai-resume/clients/portfolioapi"
	"github.com/thomasg208/thomasai-resume/clients/requests"
	"github.com/thomasg208/thomasai-resume/config"
	"github.com/thomasg208/thomasai-resume/devserver"
)

// ClientParams contains the wired API client and its collaborators
type ClientParams struct {
	Client   *portfolioapi.Client
	Session  *portfolioapi.Session
	Metrics  *portfolioapi.Metrics
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// DevServerParams contains the wired dev API server
type DevServerParams struct {
	Server   *devserver.Server
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// ProvideConfigFromPtr dereferences the loaded configuration
func ProvideConfigFromPtr(config *config.Config) config.Config {
	return *config
}

// ProvideLogger provides the configured slog.Logger instance
func ProvideLogger() *slog.Logger {
	return slog.Default()
}

// ProvideRegistry creates a registry carrying the Go runtime and process collectors
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideSession creates an empty client session
func ProvideSession() *portfolioapi.Session {
	return portfolioapi.NewSession()
}

// ProvideClientMetrics registers the client counters
func ProvideClientMetrics(reg *prometheus.Registry) *portfolioapi.Metrics {
	return portfolioapi.NewMetrics(reg)
}

// ProvideRetryConfig maps the API settings onto the transport retry policy.
// Status based retries stay off so API failures reach the caller untouched.
func ProvideRetryConfig(cfg config.Config) requests.RequestRetryConfig {
	return requests.RequestRetryConfig{
		RetryAttemptsMax: cfg.API.RetryAttemptsMax,
		RetryWaitMin:     time.Duration(cfg.API.RetryWaitMinMillis) * time.Millisecond,
		RetryWaitMax:     time.Duration(cfg.API.RetryWaitMaxMillis) * time.Millisecond,
	}
}

// ProvideHTTPClient creates the cookie carrying transport shared by every call of the client
func ProvideHTTPClient(cfg config.Config, retryConfig requests.RequestRetryConfig) (requests.HttpClient, error) {
	jar, err := portfolioapi.NewCookieJar()
	if err != nil {
		return nil, err
	}
	return requests.NewRetryableHTTPClient(&http.Client{
		Jar:     jar,
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	}, retryConfig), nil
}

// ProvideClient creates the authenticated API client
func ProvideClient(cfg config.Config, session *portfolioapi.Session, httpClient requests.HttpClient, metrics *portfolioapi.Metrics) (*portfolioapi.Client, error) {
	return portfolioapi.NewClient(&portfolioapi.Config{
		BaseURL:    cfg.API.BaseURL,
		Session:    session,
		HTTPClient: httpClient,
		Metrics:    metrics,
	})
}

// ProvideAccountStore loads the dev accounts from the users file or the demo settings
func ProvideAccountStore(cfg config.Config) (*devserver.AccountStore, error) {
	specs, err := devserver.AccountSpecsFromConfig(&cfg.DevServer)
	if err != nil {
		return nil, err
	}
	return devserver.NewAccountStore(specs, bcrypt.DefaultCost)
}

// ProvideDevServer creates the dev API server
func ProvideDevServer(cfg config.Config, accounts *devserver.AccountStore, reg *prometheus.Registry) *devserver.Server {
	return devserver.NewServer(&cfg.DevServer, accounts, reg)
}
