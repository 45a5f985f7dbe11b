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
	"encoding/json"
	"net/http"

	"github.com/thomasg208/thomasai-resume/clients/requests"
)

// Outcome is the classification of a single response.
type Outcome int

const (
	// Succeeded means the response is returned to the caller as is.
	Succeeded Outcome = iota
	// NeedsRefreshRetry means the credential should be refreshed and the request re-issued once.
	NeedsRefreshRetry
	// Failed means the response is returned to the caller as an error.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case NeedsRefreshRetry:
		return "needs_refresh_retry"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Decision is the result of Decide. Logout is only set for Failed outcomes caused by a 401.
type Decision struct {
	Outcome Outcome
	Logout  bool
}

// Decide classifies a response given whether the request was already retried after a refresh.
//
//   - 2xx: Succeeded.
//   - 401 with a truthy "refresh" field in the JSON body, not yet retried: NeedsRefreshRetry.
//   - any other 401: Failed with Logout.
//   - everything else: Failed.
func Decide(statusCode int, body []byte, retried bool) Decision {
	switch {
	case requests.IsSuccessStatus(statusCode):
		return Decision{Outcome: Succeeded}
	case statusCode == http.StatusUnauthorized:
		if !retried && isRefreshEligible(body) {
			return Decision{Outcome: NeedsRefreshRetry}
		}
		return Decision{Outcome: Failed, Logout: true}
	default:
		return Decision{Outcome: Failed}
	}
}

func isRefreshEligible(body []byte) bool {
	var payload struct {
		Refresh any `json:"refresh"`
	}
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return false
	}
	return truthy(payload.Refresh)
}

// truthy follows JSON truthiness: false, 0, "" and null are false, everything else is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
