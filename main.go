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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/thomasg208/thomasai-resume/clients/portfolioapi"
	"github.com/thomasg208/thomasai-resume/config"
	"github.com/thomasg208/thomasai-resume/signals"
	"github.com/thomasg208/thomasai-resume/wiring"
)

func setupLogger(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo // default to INFO
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}
	// Logs go to stderr so response bodies printed on stdout stay pipeable
	handler := slog.NewJSONHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))

	slog.Debug("Logger configured", "level", level.String())
}

func main() {
	cfg := config.GetConfig()

	setupLogger(cfg)

	if cfg.AutoMaxProcsEnabled {
		if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			// Convert printf-style format string to plain message for structured logging
			slog.Debug(fmt.Sprintf(format, args...))
		})); err != nil {
			slog.Error("Failed to set maxprocs", "error", err)
			os.Exit(1)
		}
	}

	serveFlag := flag.Bool("serve", false, "start the local dev API server")
	loginFlag := flag.String("login", "", "log in first, as email:password")
	methodFlag := flag.String("method", http.MethodGet, "HTTP method of the API call")
	pathFlag := flag.String("path", "/me", "API path relative to API_BASE_URL")
	dataFlag := flag.String("data", "", "JSON request body")

	flag.Parse()

	if *serveFlag {
		serve(cfg)
		return
	}

	if err := call(cfg, *loginFlag, *methodFlag, *pathFlag, *dataFlag); err != nil {
		slog.Error("API call failed", "error", err)
		os.Exit(1)
	}
}

func serve(cfg *config.Config) {
	dependencies, err := wiring.InitializeDevServer(cfg)
	if err != nil {
		slog.Error("failed to initialize dev server dependencies", "error", err)
		os.Exit(1)
	}
	server := dependencies.Server

	stopCh := signals.SetupSignalHandler()

	// Setup graceful shutdown
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		<-stopCh
		slog.Info("Shutdown signal received, stopping dev server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Dev server forced shutdown after timeout", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Failed to start dev server", "error", err)
		os.Exit(1)
	}

	wg.Wait()
	slog.Info("Dev server shut down successfully")
}

func call(cfg *config.Config, login, method, path, data string) error {
	dependencies, err := wiring.InitializeClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize client dependencies: %w", err)
	}
	client := dependencies.Client
	client.SetLogoutHandler(func() {
		dependencies.Session.Clear()
		slog.Warn("Session ended, log in again to continue")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stopCh := signals.SetupSignalHandler()
	go func() {
		<-stopCh
		cancel()
	}()

	if login != "" {
		email, password, ok := strings.Cut(login, ":")
		if !ok {
			return fmt.Errorf("-login must be email:password")
		}
		if _, err := client.Login(ctx, portfolioapi.Credentials{Email: email, Password: password}); err != nil {
			var loginErr *portfolioapi.LoginError
			if errors.As(err, &loginErr) {
				return errors.New(loginErr.Message)
			}
			return err
		}
	}

	req := &portfolioapi.Request{
		Name:   "cli",
		Method: strings.ToUpper(method),
		Path:   path,
	}
	if data != "" {
		req.Body = []byte(data)
		req.Header = http.Header{}
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(ctx, req)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(resp.Body)
	return err
}
