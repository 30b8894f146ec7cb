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

package split

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pterm/pterm"
	"k8s.io/kubectl/pkg/cmd/util"

	"github.com/liqotech/cidrcalc/pkg/cidrcalcctl/factory"
	"github.com/liqotech/cidrcalc/pkg/cidrcalcctl/output"
	"github.com/liqotech/cidrcalc/pkg/partitioner"
)

var _ = Describe("Split", func() {
	var (
		ctx     context.Context
		buffer  *bytes.Buffer
		out     *bytes.Buffer
		options *Options
	)

	BeforeEach(func() {
		pterm.DisableStyling()
		ctx = context.Background()
		buffer = &bytes.Buffer{}
		out = &bytes.Buffer{}

		f := factory.New()
		f.Printer = output.NewFakePrinter(buffer)
		f.Printer.Out = out
		options = NewOptions(f)
	})

	Describe("RunHosts", func() {
		It("should output the blocks in request order", func() {
			Expect(options.Start.Set("10.0.0.0")).To(Succeed())
			Expect(options.HostCounts.Set("64,128")).To(Succeed())
			Expect(options.OutputFormat.Set("json")).To(Succeed())

			Expect(options.RunHosts(ctx)).To(Succeed())
			Expect(out.String()).To(MatchJSON(`{"cidrs": ["10.0.0.0/26", "10.0.0.128/25"]}`))
			Expect(buffer.String()).To(ContainSubstring("Computing 2 blocks starting from 10.0.0.0"))
		})

		It("should report host counts out of range", func() {
			Expect(options.Start.Set("10.0.0.0")).To(Succeed())
			Expect(options.HostCounts.Set("100000")).To(Succeed())

			err := options.RunHosts(ctx)
			Expect(partitioner.IsRangeError(err)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("failed to compute the partition")))

			DeferCleanup(util.DefaultBehaviorOnFatal)
			options.Printer.CheckErr(err)
			Expect(buffer.String()).To(ContainSubstring("error: failed to compute the partition"))
			Expect(out.String()).To(BeEmpty())
		})
	})

	Describe("RunPrefix", func() {
		It("should output the children in ascending order", func() {
			Expect(options.CIDR.Set("10.0.0.0/24")).To(Succeed())
			options.Prefix = 26

			Expect(options.RunPrefix(ctx)).To(Succeed())
			Expect(buffer.String()).To(ContainSubstring("10.0.0.0/26"))
			Expect(buffer.String()).To(ContainSubstring("10.0.0.192/26"))
		})

		It("should output YAML when requested", func() {
			Expect(options.CIDR.Set("10.0.0.0/31")).To(Succeed())
			options.Prefix = 32
			Expect(options.OutputFormat.Set("yaml")).To(Succeed())

			Expect(options.RunPrefix(ctx)).To(Succeed())
			Expect(out.String()).To(MatchYAML("cidrs:\n- 10.0.0.0/32\n- 10.0.0.1/32\n"))
		})

		It("should reject a prefix shorter than the parent", func() {
			Expect(options.CIDR.Set("10.0.0.0/24")).To(Succeed())
			options.Prefix = 8

			Expect(partitioner.IsInvalidArgument(options.RunPrefix(ctx))).To(BeTrue())
		})
	})
})
