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

package partitioner

import (
	"fmt"
	"strings"
)

// Delimiter separates the blocks of a partition in its flat textual form.
const Delimiter = ","

// Request describes a partitioning request. Exactly one policy, either HostCounts
// or PrefixForEvenSplit, must be set.
type Request struct {
	// CidrToSplit is the starting address (host-count policy) or the parent network (prefix policy).
	CidrToSplit string `json:"cidrToSplit"`
	// HostCounts is the ordered list of capacities, one block per item.
	HostCounts []int `json:"hostCounts,omitempty"`
	// PrefixForEvenSplit is the prefix length of the equally sized children.
	PrefixForEvenSplit *int `json:"prefixForEvenSplit,omitempty"`
}

// Validate checks that the request selects exactly one partitioning policy and that host counts are positive.
func (r *Request) Validate() error {
	switch {
	case r.CidrToSplit == "":
		return invalidArgument("request", "", "the cidr to split must be specified")
	case len(r.HostCounts) == 0 && r.PrefixForEvenSplit == nil:
		return invalidArgument("request", "", "must pass either a host count list or a prefix to split the cidr by")
	case len(r.HostCounts) > 0 && r.PrefixForEvenSplit != nil:
		return invalidArgument("request", "", "host count list and prefix for even split are mutually exclusive")
	}

	for _, count := range r.HostCounts {
		if count <= 0 {
			return invalidArgument("host counts", fmt.Sprint(r.HostCounts), "host number list must be an array of positive integers")
		}
	}
	return nil
}

// Compute validates the request and runs the partitioning policy it selects.
func Compute(r *Request) ([]string, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if len(r.HostCounts) > 0 {
		return SplitSequence(r.CidrToSplit, r.HostCounts)
	}
	return SplitByPrefix(r.CidrToSplit, *r.PrefixForEvenSplit)
}

// JoinCIDRs flattens a partition into a single string.
func JoinCIDRs(cidrs []string) string {
	return strings.Join(cidrs, Delimiter)
}

// SplitCIDRs reverses JoinCIDRs.
func SplitCIDRs(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, Delimiter)
}
