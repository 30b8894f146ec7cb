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

// Package split implements the commands computing a partition without persisting it.
package split

import (
	"context"
	"fmt"

	"github.com/liqotech/cidrcalc/pkg/cidrcalcctl/factory"
	"github.com/liqotech/cidrcalc/pkg/partitioner"
	"github.com/liqotech/cidrcalc/pkg/utils/args"
)

// Options encapsulates the arguments of the split commands.
type Options struct {
	*factory.Factory

	// Start is the first address of a host count partition.
	Start args.Address
	// HostCounts is the list of capacities of a host count partition.
	HostCounts args.IntList

	// CIDR is the parent network of an even split.
	CIDR args.CIDR
	// Prefix is the prefix length of the children of an even split.
	Prefix int
}

// NewOptions returns a new Options struct.
func NewOptions(f *factory.Factory) *Options {
	return &Options{Factory: f}
}

// RunHosts computes and outputs the blocks accommodating the requested host counts.
func (o *Options) RunHosts(_ context.Context) error {
	o.Printer.Verbosef("Computing %d blocks starting from %s", len(o.HostCounts.IntList), o.Start.String())
	return o.run(&partitioner.Request{CidrToSplit: o.Start.String(), HostCounts: o.HostCounts.IntList})
}

// RunPrefix computes and outputs the children of the parent network.
func (o *Options) RunPrefix(_ context.Context) error {
	o.Printer.Verbosef("Splitting %s into /%d blocks", o.CIDR.String(), o.Prefix)
	return o.run(&partitioner.Request{CidrToSplit: o.CIDR.String(), PrefixForEvenSplit: &o.Prefix})
}

func (o *Options) run(req *partitioner.Request) error {
	cidrs, err := partitioner.Compute(req)
	if err != nil {
		return fmt.Errorf("failed to compute the partition: %w", err)
	}
	return o.Printer.PrintCIDRs(o.Format(), cidrs)
}
