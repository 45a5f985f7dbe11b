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

// Package devserver is a local stand-in for the site backend. It serves the login, refresh
// and logout endpoints plus a couple of bearer protected resources.
package devserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thomasg208/thomasai-resume/config"
	"github.com/thomasg208/thomasai-resume/middleware"
	"github.com/thomasg208/thomasai-resume/middleware/logger"
	"github.com/thomasg208/thomasai-resume/utils"
)

const sessionPurgeInterval = time.Minute

// Server serves the dev API.
type Server struct {
	cfg      *config.DevServerConfig
	accounts *AccountStore
	tokens   *TokenIssuer
	sessions *RefreshStore
	gatherer prometheus.Gatherer
	metrics  *serverMetrics
	now      func() time.Time

	server    *http.Server
	stopPurge chan struct{}
	stopOnce  sync.Once
}

// Option customizes a Server.
type Option func(*Server)

// WithClock replaces the clock used for token and session expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// NewServer creates a dev server. Metrics are registered on reg and served from /metrics;
// a nil reg disables both.
func NewServer(cfg *config.DevServerConfig, accounts *AccountStore, reg *prometheus.Registry, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		accounts: accounts,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tokens = NewTokenIssuer([]byte(cfg.SigningKey), cfg.Issuer, cfg.AccessTokenTTL, s.now)
	s.sessions = NewRefreshStore(cfg.RefreshTokenTTL, s.now)
	if reg != nil {
		s.gatherer = reg
		s.metrics = newServerMetrics(reg)
	}
	s.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:        s.Handler(),
		ReadTimeout:    time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:   time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:    time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}
	s.stopPurge = make(chan struct{})
	return s
}

// Sessions returns the refresh session store.
func (s *Server) Sessions() *RefreshStore {
	return s.sessions
}

// Handler builds the routes and middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteSuccessResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	requireBearer := RequireBearer(s.tokens, s.metrics)
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("POST /auth/login", s.handleLogin)
	apiMux.HandleFunc("POST /auth/refresh", s.handleRefresh)
	apiMux.HandleFunc("POST /auth/logout", s.handleLogout)
	apiMux.Handle("GET /me", requireBearer(http.HandlerFunc(s.handleMe)))
	apiMux.Handle("GET /widgets", requireBearer(http.HandlerFunc(s.handleWidgets)))

	// Apply middleware in reverse order (last middleware is applied first)
	apiHandler := http.Handler(apiMux)
	apiHandler = logger.RequestLogger()(apiHandler)
	apiHandler = middleware.AddCorrelationID()(apiHandler)
	apiHandler = middleware.CORS(s.cfg.CORSAllowedOrigin)(apiHandler)
	apiHandler = middleware.RecovererOnPanic()(apiHandler)

	mux.Handle("/api/", http.StripPrefix("/api", apiHandler))
	return mux
}

// Start listens on the configured address and blocks until the server stops.
// After Shutdown it returns http.ErrServerClosed.
func (s *Server) Start() error {
	if s.cfg.Port < 1 || s.cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", s.cfg.Port)
	}

	go s.purgeSessions(s.stopPurge)

	slog.Info("Starting dev API server",
		"address", fmt.Sprintf("http://%s/api", s.server.Addr),
		"accounts", s.accounts.Len())

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server. It is safe to call before Start,
// concurrently with it, and more than once.
func (s *Server) Shutdown(shutdownCtx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopPurge) })
	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) purgeSessions(stop <-chan struct{}) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if n := s.sessions.PurgeExpired(); n > 0 {
				slog.Debug("Purged expired refresh sessions", "count", n)
			}
		}
	}
}
