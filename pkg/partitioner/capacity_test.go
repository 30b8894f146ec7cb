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
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// closestTier selects the tier nearest to num by absolute distance, bumping it to the
// following one when it undershoots. Used to cross-check the ceiling lookup.
func closestTier(num int) (int, bool) {
	closest := 0
	for i := range capacityTiers {
		if abs(capacityTiers[i].Hosts-num) < abs(capacityTiers[closest].Hosts-num) {
			closest = i
		}
	}
	if capacityTiers[closest].Hosts < num {
		closest++
		if closest == len(capacityTiers) {
			return 0, false
		}
	}
	return capacityTiers[closest].Prefix, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ = Describe("Capacity table", func() {
	It("should be sorted by host count and prefix length", func() {
		tiers := Tiers()
		Expect(tiers).To(HaveLen(13))
		for i := 1; i < len(tiers); i++ {
			Expect(tiers[i].Hosts).To(BeNumerically(">", tiers[i-1].Hosts))
			Expect(tiers[i].Prefix).To(Equal(tiers[i-1].Prefix - 1))
		}
		Expect(MinTierHosts()).To(Equal(16))
		Expect(MaxHostCount()).To(Equal(64000))
	})

	It("should not be modifiable through Tiers", func() {
		tiers := Tiers()
		tiers[0].Prefix = 0
		Expect(Tiers()[0].Prefix).To(Equal(28))
	})

	DescribeTable("resolving the block size of a valid host count",
		func(hostCount, expected int) {
			prefix, err := ResolveBlockSize(hostCount)
			Expect(err).ToNot(HaveOccurred())
			Expect(prefix).To(Equal(expected))
		},
		Entry("a single host", 1, 28),
		Entry("just below the smallest tier", 15, 28),
		Entry("exactly the smallest tier", 16, 28),
		Entry("just above the smallest tier", 17, 27),
		Entry("a /24-sized request", 250, 24),
		Entry("exactly 256 hosts", 256, 24),
		Entry("just above 256 hosts", 257, 23),
		Entry("just below a non power of two tier", 999, 22),
		Entry("exactly a non power of two tier", 1000, 22),
		Entry("just above a non power of two tier", 1001, 21),
		Entry("exactly the largest tier", 64000, 16),
	)

	DescribeTable("resolving the block size of an out of range host count",
		func(hostCount int, bound Bound, limit int) {
			_, err := ResolveBlockSize(hostCount)
			Expect(err).To(HaveOccurred())

			var rangeErr *RangeError
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
			Expect(rangeErr.Value).To(Equal(hostCount))
			Expect(rangeErr.Bound).To(Equal(bound))
			Expect(rangeErr.Limit).To(Equal(limit))
			Expect(err.Error()).To(ContainSubstring("16 to 64000"))
		},
		Entry("zero hosts", 0, LowerBound, 1),
		Entry("negative hosts", -4, LowerBound, 1),
		Entry("just above the largest tier", 64001, UpperBound, 64000),
		Entry("far above the largest tier", 500000, UpperBound, 64000),
	)

	It("should return the smallest tier not less than every supported host count", func() {
		for hostCount := 1; hostCount <= MaxHostCount(); hostCount++ {
			prefix, err := ResolveBlockSize(hostCount)
			Expect(err).ToNot(HaveOccurred())

			idx := -1
			for i := range capacityTiers {
				if capacityTiers[i].Prefix == prefix {
					idx = i
				}
			}
			Expect(idx).ToNot(Equal(-1))
			Expect(capacityTiers[idx].Hosts).To(BeNumerically(">=", hostCount))
			if idx > 0 {
				Expect(capacityTiers[idx-1].Hosts).To(BeNumerically("<", hostCount))
			}
		}
	})

	It("should agree with the nearest-tier selection at every host count", func() {
		for hostCount := 1; hostCount <= MaxHostCount()+1; hostCount++ {
			expected, ok := closestTier(hostCount)
			prefix, err := ResolveBlockSize(hostCount)
			if !ok {
				Expect(IsRangeError(err)).To(BeTrue())
				continue
			}
			Expect(err).ToNot(HaveOccurred())
			Expect(prefix).To(Equal(expected), "host count %d", hostCount)
		}
	})
})
