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

// Package cmd contains the cidrcalcctl commands.
package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/klog/v2"

	"github.com/liqotech/cidrcalc/pkg/cidrcalcctl/factory"
)

const cidrcalcctlLongHelp = `{{ .Executable }} partitions IPv4 networks into subnets.

Subnets are computed either from a list of host counts, each mapped to the
smallest block accommodating it and aligned on its natural boundary, or by
splitting a parent network into equally sized children.

Partitions can be computed on the fly ({{ .Executable }} split) or persisted
as CidrCalc resources in a key-value store ({{ .Executable }} create).
`

// WithTemplate renders the templated help messages, replacing the name of the executable.
func WithTemplate(str string) string {
	tmpl := template.Must(template.New("cidrcalcctl").Parse(str))
	var buf bytes.Buffer
	utilruntime.Must(tmpl.Execute(&buf, struct{ Executable string }{filepath.Base(os.Args[0])}))
	return buf.String()
}

// NewRootCommand returns the cobra command representing the base command when called without any subcommands.
func NewRootCommand(ctx context.Context) *cobra.Command {
	f := factory.New()

	rootCmd := &cobra.Command{
		Use:          "cidrcalcctl",
		Short:        "Partition IPv4 networks into subnets",
		Long:         WithTemplate(cidrcalcctlLongHelp),
		SilenceUsage: true,

		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			f.Initialize()
		},
	}

	flagset := flag.NewFlagSet("klog", flag.PanicOnError)
	klog.InitFlags(flagset)
	utilruntime.Must(flagset.Set("logtostderr", "true"))
	rootCmd.PersistentFlags().AddGoFlagSet(flagset)
	f.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newSplitCommand(ctx, f))
	rootCmd.AddCommand(newCreateCommand(ctx, f))
	rootCmd.AddCommand(newGetCommand(ctx, f))
	rootCmd.AddCommand(newUpdateCommand(ctx, f))
	rootCmd.AddCommand(newDeleteCommand(ctx, f))
	return rootCmd
}
