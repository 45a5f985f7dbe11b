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

package portfolioapi

import "sync"

// Session holds the bearer credential and logout handler shared by the clients
// built on it. The zero value is an empty session with a no-op logout handler.
type Session struct {
	mu         sync.RWMutex
	credential string
	onLogout   func()
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// SetCredential replaces the in-memory bearer token. An empty token clears it.
func (s *Session) SetCredential(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = token
}

// Credential returns the current bearer token, or "" when none is held.
func (s *Session) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// HasCredential reports whether a bearer token is held.
func (s *Session) HasCredential() bool {
	return s.Credential() != ""
}

// Clear drops the held credential.
func (s *Session) Clear() {
	s.SetCredential("")
}

// SetLogoutHandler replaces the callback invoked when the session is unrecoverable.
// A nil fn installs a no-op.
func (s *Session) SetLogoutHandler(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = fn
}

// logout invokes the current handler outside the lock so handlers may call back
// into the session.
func (s *Session) logout() {
	s.mu.RLock()
	fn := s.onLogout
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
