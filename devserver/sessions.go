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
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thomasg208/thomasai-resume/utils"
)

type refreshSession struct {
	email     string
	expiresAt time.Time
}

// RefreshStore keeps the refresh sessions behind the refresh cookie. Every
// successful refresh rotates the session id.
type RefreshStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]refreshSession
}

func NewRefreshStore(ttl time.Duration, now func() time.Time) *RefreshStore {
	if now == nil {
		now = time.Now
	}
	return &RefreshStore{ttl: ttl, now: now, sessions: map[string]refreshSession{}}
}

// Create starts a refresh session for email.
func (s *RefreshStore) Create(email string) (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(email)
}

func (s *RefreshStore) createLocked(email string) (string, time.Time) {
	id := uuid.NewString()
	expiresAt := s.now().Add(s.ttl)
	s.sessions[id] = refreshSession{email: email, expiresAt: expiresAt}
	return id, expiresAt
}

// Rotate consumes session id and returns its email with a replacement session.
func (s *RefreshStore) Rotate(id string) (email, newID string, expiresAt time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return "", "", time.Time{}, utils.ErrSessionNotFound
	}
	delete(s.sessions, id)
	if !s.now().Before(session.expiresAt) {
		return "", "", time.Time{}, utils.ErrSessionExpired
	}
	newID, expiresAt = s.createLocked(session.email)
	return session.email, newID, expiresAt, nil
}

// Revoke deletes session id if present.
func (s *RefreshStore) Revoke(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// PurgeExpired removes expired sessions and returns how many were dropped.
func (s *RefreshStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	purged := 0
	for id, session := range s.sessions {
		if !now.Before(session.expiresAt) {
			delete(s.sessions, id)
			purged++
		}
	}
	return purged
}

// Len returns the number of live and expired sessions held.
func (s *RefreshStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
