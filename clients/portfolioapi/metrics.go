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

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeSucceeded      = "succeeded"
	outcomeFailed         = "failed"
	outcomeLoggedOut      = "logged_out"
	outcomeTransportError = "transport_error"
	outcomeCancelled      = "cancelled"
)

// Metrics counts client outcomes. A nil *Metrics is valid and records nothing.
type Metrics struct {
	requests  *prometheus.CounterVec
	refreshes *prometheus.CounterVec
	logouts   prometheus.Counter
}

// NewMetrics registers the client counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_api_requests_total",
			Help: "API calls by final outcome.",
		}, []string{"outcome"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_api_refresh_total",
			Help: "Credential refresh attempts by result.",
		}, []string{"result"}),
		logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_api_logouts_total",
			Help: "Times the logout handler was invoked.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.refreshes, m.logouts)
	}
	return m
}

func (m *Metrics) observeRequest(outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeRefresh(ok bool) {
	if m == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	m.refreshes.WithLabelValues(result).Inc()
}

func (m *Metrics) observeLogout() {
	if m == nil {
		return
	}
	m.logouts.Inc()
}
