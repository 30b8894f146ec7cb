// Copyright 2019-2025 The Liqo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"encoding/json"
	"net/http"

	"k8s.io/klog/v2"

	"github.com/liqotech/cidrcalc/pkg/utils/errdefs"
)

// statusCode maps an error to the HTTP status code returned to the client.
func statusCode(err error) int {
	switch {
	case errdefs.IsInvalidInput(err):
		return http.StatusBadRequest
	case errdefs.IsNotFound(err):
		return http.StatusNotFound
	case errdefs.IsUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleError(w http.ResponseWriter, err error) {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		klog.Errorf("Request failed: %v", err)
	}
	s.sendError(w, err.Error(), code)
}

func (s *Server) sendError(w http.ResponseWriter, resp string, code int) {
	klog.V(3).Infof("%v - sending error response: %v", code, resp)
	s.sendJSON(w, &ErrorResponse{Error: resp}, code)
}

func (s *Server) sendJSON(w http.ResponseWriter, resp interface{}, code int) {
	body, err := json.Marshal(resp)
	if err != nil {
		klog.Errorf("Failed to encode the response: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		klog.Error(err)
	}
}
