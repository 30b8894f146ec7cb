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

// Tier associates a minimum number of hosts with the prefix length of the smallest
// standard block able to accommodate them.
type Tier struct {
	Hosts  int
	Prefix int
}

// capacityTiers is sorted by ascending host count (and descending prefix length).
// It is never modified after initialization.
var capacityTiers = [...]Tier{
	{Hosts: 16, Prefix: 28},
	{Hosts: 32, Prefix: 27},
	{Hosts: 64, Prefix: 26},
	{Hosts: 128, Prefix: 25},
	{Hosts: 256, Prefix: 24},
	{Hosts: 512, Prefix: 23},
	{Hosts: 1000, Prefix: 22},
	{Hosts: 2000, Prefix: 21},
	{Hosts: 4000, Prefix: 20},
	{Hosts: 8000, Prefix: 19},
	{Hosts: 16000, Prefix: 18},
	{Hosts: 32000, Prefix: 17},
	{Hosts: 64000, Prefix: 16},
}

// Tiers returns a copy of the capacity table.
func Tiers() []Tier {
	return append([]Tier(nil), capacityTiers[:]...)
}

// MinTierHosts returns the host count of the smallest capacity tier.
func MinTierHosts() int {
	return capacityTiers[0].Hosts
}

// MaxHostCount returns the largest host count that can be requested for a single block.
func MaxHostCount() int {
	return capacityTiers[len(capacityTiers)-1].Hosts
}

// ResolveBlockSize returns the prefix length of the smallest capacity tier holding at least hostCount hosts.
// Host counts below the smallest tier are rounded up to it, hence no block smaller than a /28 is ever returned.
func ResolveBlockSize(hostCount int) (int, error) {
	if hostCount < 1 {
		return 0, &RangeError{Value: hostCount, Bound: LowerBound, Limit: 1}
	}

	for i := range capacityTiers {
		if capacityTiers[i].Hosts >= hostCount {
			return capacityTiers[i].Prefix, nil
		}
	}

	return 0, &RangeError{Value: hostCount, Bound: UpperBound, Limit: MaxHostCount()}
}
