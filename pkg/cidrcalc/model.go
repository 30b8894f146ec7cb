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

package cidrcalc

import (
	"github.com/liqotech/cidrcalc/pkg/consts"
	"github.com/liqotech/cidrcalc/pkg/partitioner"
)

// Model is a CidrCalc resource.
type Model struct {
	UID                string               `json:"uid,omitempty"`
	CidrToSplit        string               `json:"cidrToSplit,omitempty"`
	HostCounts         []int                `json:"hostCounts,omitempty"`
	PrefixForEvenSplit *int                 `json:"prefixForEvenSplit,omitempty"`
	CIDRs              []string             `json:"cidrs,omitempty"`
	State              consts.ResourceState `json:"state,omitempty"`
}

// Request returns the partitioning request described by the model.
func (m *Model) Request() *partitioner.Request {
	return &partitioner.Request{
		CidrToSplit:        m.CidrToSplit,
		HostCounts:         m.HostCounts,
		PrefixForEvenSplit: m.PrefixForEvenSplit,
	}
}

// CidrListKey returns the store key holding the CIDRs of the resource.
func CidrListKey(uid string) string {
	return uid + consts.CidrListKeySuffix
}

// StateKey returns the store key holding the lifecycle state of the resource.
func StateKey(uid string) string {
	return uid + consts.StateKeySuffix
}
