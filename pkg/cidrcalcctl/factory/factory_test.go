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

package factory

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/liqotech/cidrcalc/pkg/cidrcalcctl/output"
	"github.com/liqotech/cidrcalc/pkg/consts"
	"github.com/liqotech/cidrcalc/pkg/store"
)

var _ = Describe("Factory", func() {
	var (
		f       *Factory
		flagset *pflag.FlagSet
		buffer  *bytes.Buffer
	)

	BeforeEach(func() {
		f = New()
		flagset = pflag.NewFlagSet("test", pflag.ContinueOnError)
		f.AddFlags(flagset)
		f.AddStoreFlags(flagset)
		buffer = &bytes.Buffer{}
	})

	It("should default to the text format and the memory store", func() {
		Expect(flagset.Parse(nil)).To(Succeed())
		f.Initialize()
		f.Printer = output.NewFakePrinter(buffer)

		Expect(f.Format()).To(Equal(output.Text))
		Expect(f.Timeout).To(Equal(consts.DefaultRequestTimeout))

		st, err := f.StoreOrError(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(st).To(BeAssignableToTypeOf(&store.Memory{}))
		Expect(buffer.String()).To(ContainSubstring("does not outlive the command"))
	})

	It("should parse the output format", func() {
		Expect(flagset.Parse([]string{"-o", "yaml"})).To(Succeed())
		Expect(f.Format()).To(Equal(output.YAML))
	})

	It("should reject unknown output formats", func() {
		Expect(flagset.Parse([]string{"--output=xml"})).ToNot(Succeed())
	})

	It("should return the forced store, and build handlers on top of it", func() {
		st := store.NewMemory()
		f.SetStore(st)

		got, err := f.StoreOrError(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(BeIdenticalTo(st))

		handler, err := f.HandlerOrError(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(handler).ToNot(BeNil())
	})
})
