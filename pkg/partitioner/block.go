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
	"encoding/binary"
	"math"
	"net/netip"
	"strings"
)

const ipv4BitLen = 32

// MaxSplitBlocks bounds the memory used by SplitByPrefix: about 4M children, i.e. a /8 split down to /30.
const MaxSplitBlocks = 1 << 22

// addrToUint32 converts an IPv4 address into its numeric representation.
func addrToUint32(addr netip.Addr) uint32 {
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:])
}

// uint32ToAddr converts a numeric representation back into an IPv4 address.
func uint32ToAddr(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// blockSize returns the number of addresses in a block with the given prefix length.
func blockSize(bits int) uint64 {
	return uint64(1) << uint(ipv4BitLen-bits)
}

// firstAddr returns the network address of the prefix.
func firstAddr(prefix netip.Prefix) netip.Addr {
	return prefix.Masked().Addr()
}

// lastAddr returns the broadcast address of the prefix.
func lastAddr(prefix netip.Prefix) netip.Addr {
	first := uint64(addrToUint32(firstAddr(prefix)))
	return uint32ToAddr(uint32(first + blockSize(prefix.Bits()) - 1))
}

func checkHostBitsZero(prefix netip.Prefix) bool {
	return prefix.Masked().Addr().Compare(prefix.Addr()) == 0
}

// parseStartAddress parses the starting point of a host-count sequence. Both plain
// addresses and network-aligned CIDRs are accepted, the latter meaning their first address.
func parseStartAddress(start string) (netip.Addr, error) {
	if strings.Contains(start, "/") {
		prefix, err := netip.ParsePrefix(start)
		if err != nil {
			return netip.Addr{}, invalidArgument("starting address", start, "%v", err)
		}
		if prefix.Addr().Is4In6() && prefix.Bits() >= 128-ipv4BitLen {
			prefix = netip.PrefixFrom(prefix.Addr().Unmap(), prefix.Bits()-(128-ipv4BitLen))
		}
		if !prefix.Addr().Is4() {
			return netip.Addr{}, invalidArgument("starting address", start, "only IPv4 networks are supported")
		}
		if !checkHostBitsZero(prefix) {
			return netip.Addr{}, invalidArgument("starting address", start, "host bits must be zero")
		}
		return prefix.Addr(), nil
	}

	addr, err := netip.ParseAddr(start)
	if err != nil {
		return netip.Addr{}, invalidArgument("starting address", start, "%v", err)
	}
	addr = addr.Unmap()
	if !addr.Is4() {
		return netip.Addr{}, invalidArgument("starting address", start, "only IPv4 addresses are supported")
	}
	return addr, nil
}

// NextBlockForHostCount returns the first block, starting at or after start, large enough to hold hostCount hosts.
// The block is the network containing start if start is aligned to its beginning, otherwise the following
// block of the same size, so that the result never begins before start.
func NextBlockForHostCount(start netip.Addr, hostCount int) (netip.Prefix, error) {
	start = start.Unmap()
	if !start.Is4() {
		return netip.Prefix{}, invalidArgument("starting address", start.String(), "only IPv4 addresses are supported")
	}

	bits, err := ResolveBlockSize(hostCount)
	if err != nil {
		return netip.Prefix{}, err
	}

	// Align down to the network boundary for the resolved prefix.
	candidate := netip.PrefixFrom(start, bits).Masked()
	if candidate.Addr().Compare(start) == 0 {
		return candidate, nil
	}

	// The start address falls in the middle of the candidate: move on to the next one.
	next := uint64(addrToUint32(candidate.Addr())) + blockSize(bits)
	if next > math.MaxUint32 {
		return netip.Prefix{}, invalidArgument("starting address", start.String(),
			"no /%d block fits between the address and the end of the IPv4 space", bits)
	}
	return netip.PrefixFrom(uint32ToAddr(uint32(next)), bits), nil
}

// SplitSequence lays out one block per host count, in the given order, starting from start.
// Each block begins right after the last address of the previous one. No partial result is
// returned in case of errors.
func SplitSequence(start string, hostCounts []int) ([]string, error) {
	cursor, err := parseStartAddress(start)
	if err != nil {
		return nil, err
	}

	blocks := make([]string, 0, len(hostCounts))
	for i, hostCount := range hostCounts {
		if !cursor.IsValid() {
			return nil, invalidArgument("host counts", "", "the IPv4 space is exhausted after %d blocks", i)
		}

		block, err := NextBlockForHostCount(cursor, hostCount)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block.String())

		// Next returns the zero value past 255.255.255.255.
		cursor = lastAddr(block).Next()
	}

	return blocks, nil
}

// SplitByPrefix divides parent into contiguous children of length target, in ascending address order.
// Host bits possibly set in parent are ignored.
func SplitByPrefix(parent string, target int) ([]string, error) {
	prefix, err := netip.ParsePrefix(parent)
	if err != nil {
		return nil, invalidArgument("cidr", parent, "%v", err)
	}
	if !prefix.Addr().Is4() {
		return nil, invalidArgument("cidr", parent, "only IPv4 networks are supported")
	}
	prefix = prefix.Masked()

	if target < prefix.Bits() || target > ipv4BitLen {
		return nil, invalidArgument("prefix", "", "/%d must be between /%d and /%d", target, prefix.Bits(), ipv4BitLen)
	}

	count := uint64(1) << uint(target-prefix.Bits())
	if count > MaxSplitBlocks {
		return nil, invalidArgument("prefix", "", "splitting %s into /%d would produce %d blocks, more than the maximum of %d",
			prefix, target, count, MaxSplitBlocks)
	}

	base := uint64(addrToUint32(prefix.Addr()))
	step := blockSize(target)

	blocks := make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		blocks = append(blocks, netip.PrefixFrom(uint32ToAddr(uint32(base+i*step)), target).String())
	}
	return blocks, nil
}
