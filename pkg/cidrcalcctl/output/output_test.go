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

package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pterm/pterm"
	"k8s.io/kubectl/pkg/cmd/util"
	"k8s.io/utils/ptr"

	"github.com/liqotech/cidrcalc/pkg/cidrcalc"
	"github.com/liqotech/cidrcalc/pkg/consts"
	"github.com/liqotech/cidrcalc/pkg/utils/testutil"
)

var _ = Describe("Printer", func() {
	var (
		buffer  *bytes.Buffer
		printer *Printer
		model   *cidrcalc.Model
	)

	BeforeEach(func() {
		pterm.DisableStyling()
		buffer = &bytes.Buffer{}
		printer = NewFakePrinter(buffer)
		model = &cidrcalc.Model{
			UID:                "uid-1",
			CidrToSplit:        "10.0.0.0/24",
			PrefixForEvenSplit: ptr.To(25),
			CIDRs:              []string{"10.0.0.0/25", "10.0.0.128/25"},
			State:              consts.StateCreated,
		}
	})

	Describe("PrintCIDRs", func() {
		It("should output a bullet list in text format", func() {
			Expect(printer.PrintCIDRs(Text, []string{"10.0.0.0/26", "10.0.0.128/25"})).To(Succeed())
			out := testutil.SqueezeWhitespaces(buffer.String())
			Expect(out).To(ContainSubstring("Partition"))
			Expect(out).To(ContainSubstring("• 10.0.0.0/26 • 10.0.0.128/25"))
		})

		It("should output a JSON document", func() {
			Expect(printer.PrintCIDRs(JSON, []string{"10.0.0.0/26"})).To(Succeed())
			Expect(buffer.String()).To(MatchJSON(`{"cidrs": ["10.0.0.0/26"]}`))
		})

		It("should output a YAML document", func() {
			Expect(printer.PrintCIDRs(YAML, []string{"10.0.0.0/26"})).To(Succeed())
			Expect(buffer.String()).To(MatchYAML("cidrs:\n- 10.0.0.0/26\n"))
		})

		It("should reject unknown formats", func() {
			Expect(printer.PrintCIDRs(Format("xml"), nil)).ToNot(Succeed())
		})
	})

	Describe("PrintResource", func() {
		It("should output the resource details in text format", func() {
			Expect(printer.PrintResource(Text, model)).To(Succeed())
			out := testutil.SqueezeWhitespaces(buffer.String())
			Expect(out).To(ContainSubstring("CidrCalc uid-1"))
			Expect(out).To(ContainSubstring("State: CREATED"))
			Expect(out).To(ContainSubstring("Prefix for even split: /25"))
			Expect(out).To(ContainSubstring("10.0.0.128/25"))
			Expect(out).ToNot(ContainSubstring("Host counts"))
		})

		It("should output a JSON document", func() {
			Expect(printer.PrintResource(JSON, model)).To(Succeed())
			Expect(buffer.String()).To(MatchJSON(`{"uid": "uid-1", "cidrToSplit": "10.0.0.0/24", "prefixForEvenSplit": 25,
				"cidrs": ["10.0.0.0/25", "10.0.0.128/25"], "state": "CREATED"}`))
		})

		It("should output a YAML document", func() {
			Expect(printer.PrintResource(YAML, model)).To(Succeed())
			Expect(buffer.String()).To(ContainSubstring("uid: uid-1"))
			Expect(buffer.String()).To(ContainSubstring("state: CREATED"))
		})

		It("should not reuse the items of a previous list", func() {
			Expect(printer.PrintCIDRs(Text, []string{"192.168.0.0/28"})).To(Succeed())
			buffer.Reset()
			Expect(printer.PrintResource(Text, model)).To(Succeed())
			Expect(buffer.String()).ToNot(ContainSubstring("192.168.0.0/28"))
		})
	})

	Describe("Verbosef", func() {
		It("should print messages when verbose", func() {
			printer.Verbosef("computing %d blocks\n", 4)
			Expect(buffer.String()).To(ContainSubstring("computing 4 blocks"))
		})

		It("should not print messages otherwise", func() {
			printer.verbose = false
			printer.Verbosef("computing %d blocks", 4)
			Expect(buffer.String()).To(BeEmpty())
		})
	})

	Describe("CheckErr", func() {
		var codes []int

		BeforeEach(func() {
			codes = nil
			printer.exit = func(code int) { codes = append(codes, code) }
			DeferCleanup(util.DefaultBehaviorOnFatal)
		})

		It("should do nothing without an error", func() {
			printer.CheckErr(nil)
			Expect(codes).To(BeEmpty())
			Expect(buffer.String()).To(BeEmpty())
		})

		It("should print the error and exit with a non-zero code", func() {
			printer.CheckErr(errors.New("failed to compute the partition: invalid prefix"))
			Expect(codes).To(Equal([]int{util.DefaultErrorExitCode}))
			Expect(buffer.String()).To(ContainSubstring("error: failed to compute the partition: invalid prefix"))
		})

		It("should report the error through the active spinner", func() {
			spinner := printer.StartSpinner("Creating the CidrCalc resource")
			printer.CheckErr(errors.New("store unreachable"))
			Expect(spinner.IsActive).To(BeFalse())
			Expect(codes).To(Equal([]int{util.DefaultErrorExitCode}))
			Expect(buffer.String()).To(ContainSubstring("error: store unreachable"))
		})

		It("should prettify timeouts", func() {
			printer.CheckErr(fmt.Errorf("failed to create the CidrCalc resource: %w", context.DeadlineExceeded))
			Expect(buffer.String()).To(ContainSubstring("timed out waiting for the operation"))
		})
	})

	Describe("PrettyErr", func() {
		It("should return the error message", func() {
			Expect(PrettyErr(errors.New("invalid prefix"))).To(Equal("invalid prefix"))
		})
	})
})
