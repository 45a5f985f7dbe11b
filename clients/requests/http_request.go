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

package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// HttpRequest describes an outgoing HTTP call. Name is used for logging only.
type HttpRequest struct {
	Name    string
	URL     string
	Method  string
	Headers http.Header
	Query   url.Values
	Body    []byte
}

// SetHeader sets a request header, replacing any existing value.
func (r *HttpRequest) SetHeader(key, value string) *HttpRequest {
	if r.Headers == nil {
		r.Headers = http.Header{}
	}
	r.Headers.Set(key, value)
	return r
}

// SetJSON marshals body as the request payload and sets the content type.
func (r *HttpRequest) SetJSON(body any) (*HttpRequest, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return r, fmt.Errorf("failed to marshal request body: %w", err)
	}
	r.Body = data
	return r.SetHeader("Content-Type", "application/json"), nil
}

func (r *HttpRequest) buildHttpRequest(ctx context.Context) (*http.Request, error) {
	target := r.URL
	if len(r.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	for key, values := range r.Headers {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	return httpReq, nil
}
