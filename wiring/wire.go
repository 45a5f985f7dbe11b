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

//go:build wireinject
// +build wireinject

package wiring

import (
	"github.com/google/wire"

	"github.com/thomasg208/thomasai-resume/config"
)

var configProviderSet = wire.NewSet(
	ProvideConfigFromPtr,
)

var loggerProviderSet = wire.NewSet(
	ProvideLogger,
)

var metricsProviderSet = wire.NewSet(
	ProvideRegistry,
)

var clientProviderSet = wire.NewSet(
	ProvideSession,
	ProvideClientMetrics,
	ProvideRetryConfig,
	ProvideHTTPClient,
	ProvideClient,
)

var devServerProviderSet = wire.NewSet(
	ProvideAccountStore,
	ProvideDevServer,
)

func InitializeClient(cfg *config.Config) (*ClientParams, error) {
	wire.Build(
		configProviderSet,
		loggerProviderSet,
		metricsProviderSet,
		clientProviderSet,
		wire.Struct(new(ClientParams), "*"),
	)
	return &ClientParams{}, nil
}

func InitializeDevServer(cfg *config.Config) (*DevServerParams, error) {
	wire.Build(
		configProviderSet,
		loggerProviderSet,
		metricsProviderSet,
		devServerProviderSet,
		wire.Struct(new(DevServerParams), "*"),
	)
	return &DevServerParams{}, nil
}
