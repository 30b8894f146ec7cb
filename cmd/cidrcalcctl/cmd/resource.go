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
	"github.com/spf13/pflag"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"

	"github.com/liqotech/cidrcalc/pkg/cidrcalcctl/factory"
	"github.com/liqotech/cidrcalc/pkg/cidrcalcctl/resource"
)

const createLongHelp = `Create a CidrCalc resource.

The partition is computed either from a list of host counts (--hosts) or by
splitting the given network into equally sized subnets (--prefix), and it is
persisted in the selected store together with the resource state.

Examples:
  $ {{ .Executable }} create --cidr 10.0.0.0 --hosts 64,128 --store redis
or
  $ {{ .Executable }} create --cidr 10.0.0.0/24 --prefix 26 --store ssm --ssm-prefix /network/
`

const updateLongHelp = `Update a CidrCalc resource, recomputing its partition.

Examples:
  $ {{ .Executable }} update 0b9c4d5e-4a7e-4e5b-9a53-0f1c0de1a2b3 --cidr 10.1.0.0 --hosts 250 --store redis
`

func addPartitionFlags(flags *pflag.FlagSet, options *resource.Options) {
	flags.Var(&options.CidrToSplit, "cidr", "The address the partition starts from, or the network to split")
	flags.Var(&options.HostCounts, "hosts", "The comma separated list of host counts, one subnet each (e.g. 64,128)")
	flags.IntVar(&options.Prefix, "prefix", 0, "The prefix length of the equally sized subnets (e.g. 26)")
}

func newCreateCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	options := resource.NewOptions(f)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a CidrCalc resource",
		Long:  WithTemplate(createLongHelp),
		Args:  cobra.NoArgs,

		PreRun: func(cmd *cobra.Command, _ []string) {
			options.PrefixSet = cmd.Flags().Changed("prefix")
		},

		Run: func(_ *cobra.Command, _ []string) {
			f.Printer.CheckErr(options.RunCreate(ctx))
		},
	}

	addPartitionFlags(cmd.Flags(), options)
	f.AddStoreFlags(cmd.Flags())
	utilruntime.Must(cmd.MarkFlagRequired("cidr"))
	cmd.MarkFlagsMutuallyExclusive("hosts", "prefix")
	cmd.MarkFlagsOneRequired("hosts", "prefix")

	return cmd
}

func newGetCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	options := resource.NewOptions(f)

	cmd := &cobra.Command{
		Use:     "get uid",
		Aliases: []string{"read"},
		Short:   "Retrieve a CidrCalc resource",
		Long:    "Retrieve the partition and the state of a CidrCalc resource.",
		Args:    cobra.ExactArgs(1),

		Run: func(_ *cobra.Command, args []string) {
			options.UID = args[0]
			f.Printer.CheckErr(options.RunGet(ctx))
		},
	}

	f.AddStoreFlags(cmd.Flags())
	return cmd
}

func newUpdateCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	options := resource.NewOptions(f)

	cmd := &cobra.Command{
		Use:   "update uid",
		Short: "Update a CidrCalc resource",
		Long:  WithTemplate(updateLongHelp),
		Args:  cobra.ExactArgs(1),

		PreRun: func(cmd *cobra.Command, _ []string) {
			options.PrefixSet = cmd.Flags().Changed("prefix")
		},

		Run: func(_ *cobra.Command, args []string) {
			options.UID = args[0]
			f.Printer.CheckErr(options.RunUpdate(ctx))
		},
	}

	addPartitionFlags(cmd.Flags(), options)
	f.AddStoreFlags(cmd.Flags())
	utilruntime.Must(cmd.MarkFlagRequired("cidr"))
	cmd.MarkFlagsMutuallyExclusive("hosts", "prefix")
	cmd.MarkFlagsOneRequired("hosts", "prefix")

	return cmd
}

func newDeleteCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	options := resource.NewOptions(f)

	cmd := &cobra.Command{
		Use:   "delete uid",
		Short: "Delete a CidrCalc resource",
		Long:  "Delete the partition of a CidrCalc resource, marking its state as deleted.",
		Args:  cobra.ExactArgs(1),

		Run: func(_ *cobra.Command, args []string) {
			options.UID = args[0]
			f.Printer.CheckErr(options.RunDelete(ctx))
		},
	}

	f.AddStoreFlags(cmd.Flags())
	return cmd
}
