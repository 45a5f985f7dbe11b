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
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/thomasg208/thomasai-resume/middleware/logger"
	"github.com/thomasg208/thomasai-resume/utils"
)

const authorizationHeader = "Authorization"

type accessClaimsCtxKey struct{}

// RequireBearer rejects requests without a valid access token. Expired tokens get a
// refresh eligible 401 so clients know to call the refresh endpoint.
func RequireBearer(tokens *TokenIssuer, metrics *serverMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(authorizationHeader)
			if header == "" {
				metrics.authFailed("missing")
				utils.WriteErrorResponse(w, http.StatusUnauthorized, fmt.Sprintf("missing header: %s", authorizationHeader))
				return
			}
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				metrics.authFailed("malformed")
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			claims, err := tokens.Validate(strings.TrimSpace(tokenString))
			if err != nil {
				log := logger.GetLogger(r.Context())
				if errors.Is(err, utils.ErrTokenExpired) {
					metrics.authFailed("expired")
					log.Debug("Access token expired")
					utils.WriteRefreshableError(w, "token expired")
					return
				}
				metrics.authFailed("invalid")
				log.Warn("JWT validation failed", "error", err)
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "invalid jwt")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), accessClaimsCtxKey{}, claims)))
		})
	}
}

// GetAccessClaims returns the claims stored by RequireBearer.
func GetAccessClaims(ctx context.Context) *AccessClaims {
	claims, ok := ctx.Value(accessClaimsCtxKey{}).(*AccessClaims)
	if !ok {
		return nil
	}
	return claims
}
