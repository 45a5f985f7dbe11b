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

package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/thomasg208/thomasai-resume/middleware/logger"
	"github.com/thomasg208/thomasai-resume/utils"
)

const (
	// RefreshCookieName is the HttpOnly cookie carrying the refresh session id.
	RefreshCookieName = "refresh_token"
	refreshCookiePath = "/api/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the body of GET /me.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Widget is one entry of GET /widgets.
type Widget struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
}

var demoWidgets = []Widget{
	{ID: "experience", Title: "Experience", Kind: "timeline"},
	{ID: "projects", Title: "Projects", Kind: "grid"},
	{ID: "skills", Title: "Skills", Kind: "tags"},
	{ID: "contact", Title: "Contact", Kind: "form"},
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.GetLogger(r.Context())

	var req loginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	account, err := s.accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			s.metrics.authFailed("credentials")
			log.Info("Login rejected", "email", req.Email)
			utils.WriteErrorResponse(w, http.StatusUnauthorized, utils.ErrInvalidCredentials.Error())
			return
		}
		log.Error("Failed to authenticate account", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		log.Error("Failed to issue access token", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	sessionID, expiresAt := s.sessions.Create(account.Email)
	s.setRefreshCookie(w, sessionID, expiresAt)
	s.metrics.tokenIssued("login")

	log.Info("Login succeeded", "email", account.Email)
	utils.WriteSuccessResponse(w, http.StatusOK, utils.TokenResponse{Token: token})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	log := logger.GetLogger(r.Context())

	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		s.metrics.authFailed("missing_refresh")
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "missing refresh token")
		return
	}

	email, sessionID, expiresAt, err := s.sessions.Rotate(cookie.Value)
	if err != nil {
		s.metrics.authFailed("refresh_rejected")
		log.Info("Refresh rejected", "error", err)
		s.clearRefreshCookie(w)
		utils.WriteErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}
	account, ok := s.accounts.Lookup(email)
	if !ok {
		s.sessions.Revoke(sessionID)
		s.clearRefreshCookie(w)
		utils.WriteErrorResponse(w, http.StatusUnauthorized, utils.ErrSessionNotFound.Error())
		return
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		log.Error("Failed to issue access token", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.setRefreshCookie(w, sessionID, expiresAt)
	s.metrics.tokenIssued("refresh")

	log.Debug("Refresh succeeded", "email", account.Email)
	utils.WriteSuccessResponse(w, http.StatusOK, utils.TokenResponse{Token: token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(RefreshCookieName); err == nil && cookie.Value != "" {
		s.sessions.Revoke(cookie.Value)
	}
	s.clearRefreshCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := GetAccessClaims(r.Context())
	if claims == nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, utils.ErrUnauthorized.Error())
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, Profile{ID: claims.Subject, Email: claims.Email, Name: claims.Name})
}

func (s *Server) handleWidgets(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, http.StatusOK, demoWidgets)
}

func (s *Server) setRefreshCookie(w http.ResponseWriter, value string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     refreshCookiePath,
		Expires:  expiresAt,
		MaxAge:   int(expiresAt.Sub(s.now()).Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: s.sameSite(),
	})
}

func (s *Server) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: s.sameSite(),
	})
}

// Cross-site cookies need SameSite=None, which browsers only accept on secure cookies.
func (s *Server) sameSite() http.SameSite {
	if s.cfg.CookieSecure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
