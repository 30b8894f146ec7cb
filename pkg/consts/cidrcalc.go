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

package consts

import "time"

// ResourceState is the lifecycle tag persisted alongside every CidrCalc resource.
type ResourceState string

const (
	// TypeName is the name of the resource type managed by cidrcalc.
	TypeName = "JB::VPC::CidrCalc"

	// StateCreated marks a resource which has been created and never updated.
	StateCreated ResourceState = "CREATED"
	// StateUpdated marks a resource which has been updated at least once.
	StateUpdated ResourceState = "UPDATED"
	// StateDeleted marks a deleted resource. The state key is kept as a tombstone.
	StateDeleted ResourceState = "DELETED"

	// CidrListKeySuffix is appended to the resource UID to build the key holding the computed CIDRs.
	CidrListKeySuffix = "-CidrList"
	// StateKeySuffix is appended to the resource UID to build the key holding the lifecycle state.
	StateKeySuffix = "-State"

	// DefaultRequestTimeout is the default timeout applied to every resource operation.
	DefaultRequestTimeout = 30 * time.Second
)

// IsKnownState returns whether s is one of the lifecycle tags.
func IsKnownState(s ResourceState) bool {
	switch s {
	case StateCreated, StateUpdated, StateDeleted:
		return true
	default:
		return false
	}
}
