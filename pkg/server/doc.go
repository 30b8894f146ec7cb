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

// Package server exposes the partitioner and the CidrCalc resources through an HTTP API.
package server

const (
	// SplitHostsURI is the URI computing a host count partition.
	SplitHostsURI = "/v1/split/hosts"
	// SplitPrefixURI is the URI computing an even split.
	SplitPrefixURI = "/v1/split/prefix"
	// CidrCalcsURI is the URI of the CidrCalc resources collection.
	CidrCalcsURI = "/v1/cidrcalcs"
	// CidrCalcURI is the URI of a single CidrCalc resource.
	CidrCalcURI = CidrCalcsURI + "/:" + uidParam
	// HealthzURI is the URI of the liveness probe.
	HealthzURI = "/healthz"
	// MetricsURI is the URI exposing the Prometheus metrics.
	MetricsURI = "/metrics"

	uidParam = "uid"

	// maxBodyBytes bounds the size of the request bodies.
	maxBodyBytes = 1 << 20
)

// SplitResponse is the body returned by the split endpoints.
type SplitResponse struct {
	CIDRs []string `json:"cidrs"`
}

// ErrorResponse is the body returned on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
