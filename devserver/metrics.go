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

import "github.com/prometheus/client_golang/prometheus"

type serverMetrics struct {
	tokensIssued *prometheus.CounterVec
	authFailures *prometheus.CounterVec
}

func newServerMetrics(reg prometheus.Registerer) *serverMetrics {
	m := &serverMetrics{
		tokensIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "devserver",
			Name:      "tokens_issued_total",
			Help:      "Access tokens issued, by grant.",
		}, []string{"grant"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "devserver",
			Name:      "auth_failures_total",
			Help:      "Rejected authentication attempts, by reason.",
		}, []string{"reason"}),
	}
	if reg != nil {
		reg.MustRegister(m.tokensIssued, m.authFailures)
	}
	return m
}

func (m *serverMetrics) tokenIssued(grant string) {
	if m == nil {
		return
	}
	m.tokensIssued.WithLabelValues(grant).Inc()
}

func (m *serverMetrics) authFailed(reason string) {
	if m == nil {
		return
	}
	m.authFailures.WithLabelValues(reason).Inc()
}
