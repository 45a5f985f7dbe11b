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

package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error payload shared by the API and its clients.
// Refresh marks a 401 that a credential refresh may resolve.
type ErrorResponse struct {
	Error   string `json:"error"`
	Refresh bool   `json:"refresh,omitempty"`
}

// TokenResponse is returned by the login and refresh endpoints.
type TokenResponse struct {
	Token string `json:"token,omitempty"`
}

// WriteSuccessResponse writes a successful API response
func WriteSuccessResponse[T any](w http.ResponseWriter, statusCode int, data T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if statusCode == http.StatusNoContent {
		return
	}
	_ = json.NewEncoder(w).Encode(data) // Ignore encoding errors for response
}

// WriteErrorResponse writes an error API response
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeError(w, statusCode, &ErrorResponse{Error: message})
}

// WriteRefreshableError writes a 401 telling the client that refreshing its credential may help.
func WriteRefreshableError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, &ErrorResponse{Error: message, Refresh: true})
}

func writeError(w http.ResponseWriter, statusCode int, payload *ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload) // Ignore encoding errors for response
}
