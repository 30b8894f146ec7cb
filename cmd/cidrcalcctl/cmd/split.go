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

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"

	"github.com/liqotech/cidrcalc/pkg/cidrcalcctl/factory"
	"github.com/liqotech/cidrcalc/pkg/cidrcalcctl/split"
)

const splitHostsLongHelp = `Compute the subnets accommodating a list of host counts.

Each host count is mapped to the smallest block holding at least that many
hosts (between 16 and 64000), and the blocks are allocated in the given order,
starting from the given address. Every block is aligned on its natural boundary,
hence gaps are left when a bigger block follows a smaller one.

Examples:
  $ {{ .Executable }} split hosts --start 10.0.0.0 --hosts 64,128
or
  $ {{ .Executable }} split hosts --start 10.0.0.0/16 --hosts 1000 --hosts 250 -o json
`

const splitPrefixLongHelp = `Split a network into equally sized subnets.

Examples:
  $ {{ .Executable }} split prefix --cidr 10.0.0.0/24 --prefix 26
or
  $ {{ .Executable }} split prefix --cidr 192.168.0.0/16 --prefix 24 -o yaml
`

func newSplitCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Compute a partition without persisting it",
		Long:  "Compute a partition without persisting it.",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(newSplitHostsCommand(ctx, f))
	cmd.AddCommand(newSplitPrefixCommand(ctx, f))
	return cmd
}

func newSplitHostsCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	options := split.NewOptions(f)

	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "Compute the subnets accommodating a list of host counts",
		Long:  WithTemplate(splitHostsLongHelp),
		Args:  cobra.NoArgs,

		Run: func(_ *cobra.Command, _ []string) {
			f.Printer.CheckErr(options.RunHosts(ctx))
		},
	}

	cmd.Flags().Var(&options.Start, "start", "The address the partition starts from (e.g. 10.0.0.0 or 10.0.0.0/16)")
	cmd.Flags().Var(&options.HostCounts, "hosts", "The comma separated list of host counts, one subnet each (e.g. 64,128)")
	utilruntime.Must(cmd.MarkFlagRequired("start"))
	utilruntime.Must(cmd.MarkFlagRequired("hosts"))

	return cmd
}

func newSplitPrefixCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	options := split.NewOptions(f)

	cmd := &cobra.Command{
		Use:   "prefix",
		Short: "Split a network into equally sized subnets",
		Long:  WithTemplate(splitPrefixLongHelp),
		Args:  cobra.NoArgs,

		Run: func(_ *cobra.Command, _ []string) {
			f.Printer.CheckErr(options.RunPrefix(ctx))
		},
	}

	cmd.Flags().Var(&options.CIDR, "cidr", "The network to split (e.g. 10.0.0.0/24)")
	cmd.Flags().IntVar(&options.Prefix, "prefix", 0, "The prefix length of the resulting subnets (e.g. 26)")
	utilruntime.Must(cmd.MarkFlagRequired("cidr"))
	utilruntime.Must(cmd.MarkFlagRequired("prefix"))

	return cmd
}
