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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	t.Run("zero value holds no credential and tolerates logout", func(t *testing.T) {
		var s Session
		assert.False(t, s.HasCredential())
		assert.NotPanics(t, s.logout)
	})

	t.Run("credential can be replaced and cleared", func(t *testing.T) {
		s := NewSession()
		s.SetCredential("abc")
		assert.Equal(t, "abc", s.Credential())
		s.SetCredential("def")
		assert.Equal(t, "def", s.Credential())
		s.Clear()
		assert.Empty(t, s.Credential())
	})

	t.Run("logout handler is replaceable and may use the session", func(t *testing.T) {
		s := NewSession()
		s.SetCredential("abc")
		first, second := 0, 0
		s.SetLogoutHandler(func() { first++ })
		s.SetLogoutHandler(func() {
			second++
			s.Clear()
		})
		s.logout()
		assert.Equal(t, 0, first)
		assert.Equal(t, 1, second)
		assert.False(t, s.HasCredential())
	})

	t.Run("sessions are independent", func(t *testing.T) {
		a, b := NewSession(), NewSession()
		a.SetCredential("a")
		assert.Empty(t, b.Credential())
	})
}
