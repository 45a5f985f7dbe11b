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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		retried bool
		want    Decision
	}{
		{"200 succeeds", http.StatusOK, `{"ok":true}`, false, Decision{Outcome: Succeeded}},
		{"204 succeeds", http.StatusNoContent, "", false, Decision{Outcome: Succeeded}},
		{"401 refreshable", http.StatusUnauthorized, `{"refresh":true}`, false, Decision{Outcome: NeedsRefreshRetry}},
		{"401 refreshable with non-bool truthy flag", http.StatusUnauthorized, `{"refresh":1}`, false, Decision{Outcome: NeedsRefreshRetry}},
		{"401 refreshable but already retried", http.StatusUnauthorized, `{"refresh":true}`, true, Decision{Outcome: Failed, Logout: true}},
		{"401 with falsy flag", http.StatusUnauthorized, `{"refresh":false}`, false, Decision{Outcome: Failed, Logout: true}},
		{"401 with empty string flag", http.StatusUnauthorized, `{"refresh":""}`, false, Decision{Outcome: Failed, Logout: true}},
		{"401 without flag", http.StatusUnauthorized, `{"error":"nope"}`, false, Decision{Outcome: Failed, Logout: true}},
		{"401 with non-JSON body", http.StatusUnauthorized, `unauthorized`, false, Decision{Outcome: Failed, Logout: true}},
		{"401 with empty body", http.StatusUnauthorized, "", false, Decision{Outcome: Failed, Logout: true}},
		{"403 fails without logout", http.StatusForbidden, `{"refresh":true}`, false, Decision{Outcome: Failed}},
		{"500 fails without logout", http.StatusInternalServerError, "", false, Decision{Outcome: Failed}},
		{"304 is not a success", http.StatusNotModified, "", false, Decision{Outcome: Failed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.status, []byte(tt.body), tt.retried))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "succeeded", Succeeded.String())
	assert.Equal(t, "needs_refresh_retry", NeedsRefreshRetry.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
