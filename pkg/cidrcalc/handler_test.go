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

package cidrcalc_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"k8s.io/utils/ptr"

	"github.com/liqotech/cidrcalc/pkg/cidrcalc"
	"github.com/liqotech/cidrcalc/pkg/consts"
	"github.com/liqotech/cidrcalc/pkg/store"
	"github.com/liqotech/cidrcalc/pkg/utils/errdefs"
)

// brokenStore is a store whose every operation fails.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, error) {
	return "", errdefs.AsUnavailable(errors.New("connection refused"))
}

func (brokenStore) Put(context.Context, string, string) error {
	return errdefs.AsUnavailable(errors.New("connection refused"))
}

func (brokenStore) Delete(context.Context, string) error {
	return errdefs.AsUnavailable(errors.New("connection refused"))
}

// stateWriteFailingStore fails every write of a resource state.
type stateWriteFailingStore struct {
	store.Store
}

func (s stateWriteFailingStore) Put(ctx context.Context, key, value string) error {
	if strings.HasSuffix(key, consts.StateKeySuffix) {
		return errdefs.AsUnavailable(errors.New("connection reset"))
	}
	return s.Store.Put(ctx, key, value)
}

var _ = Describe("Handler", func() {
	var (
		ctx      context.Context
		st       *store.Memory
		registry *prometheus.Registry
		handler  *cidrcalc.Handler
		counter  int
	)

	operations := func(verb, result string) float64 {
		return promtestutil.ToFloat64(handler.Metrics().Operations.WithLabelValues(verb, result))
	}

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		st = store.NewMemory()
		registry = prometheus.NewRegistry()
		counter = 0

		handler, err = cidrcalc.NewHandler(st, cidrcalc.Options{
			Registerer: registry,
			NewUID: func() string {
				counter++
				return fmt.Sprintf("uid-%d", counter)
			},
		})
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Create", func() {
		It("should compute and persist a host count partition", func() {
			created, err := handler.Create(ctx, &cidrcalc.Model{CidrToSplit: "10.0.0.0", HostCounts: []int{64, 128, 16}})
			Expect(err).ToNot(HaveOccurred())
			Expect(created.UID).To(Equal("uid-1"))
			Expect(created.State).To(Equal(consts.StateCreated))
			Expect(created.CIDRs).To(Equal([]string{"10.0.0.0/26", "10.0.0.128/25", "10.0.1.0/28"}))

			Expect(st.Get(ctx, "uid-1-CidrList")).To(Equal("10.0.0.0/26,10.0.0.128/25,10.0.1.0/28"))
			Expect(st.Get(ctx, "uid-1-State")).To(Equal("CREATED"))
			Expect(operations("create", cidrcalc.ResultSuccess)).To(BeNumerically("==", 1))
		})

		It("should compute and persist an even split", func() {
			created, err := handler.Create(ctx, &cidrcalc.Model{CidrToSplit: "10.0.0.0/24", PrefixForEvenSplit: ptr.To(26)})
			Expect(err).ToNot(HaveOccurred())
			Expect(created.CIDRs).To(Equal([]string{"10.0.0.0/26", "10.0.0.64/26", "10.0.0.128/26", "10.0.0.192/26"}))
			Expect(promtestutil.GatherAndCount(registry, "cidrcalc_partition_blocks")).To(Equal(1))
		})

		It("should generate random identifiers by default", func() {
			h, err := cidrcalc.NewHandler(st, cidrcalc.Options{})
			Expect(err).ToNot(HaveOccurred())

			first, err := h.Create(ctx, &cidrcalc.Model{CidrToSplit: "10.0.0.0/24", PrefixForEvenSplit: ptr.To(25)})
			Expect(err).ToNot(HaveOccurred())
			second, err := h.Create(ctx, &cidrcalc.Model{CidrToSplit: "10.0.0.0/24", PrefixForEvenSplit: ptr.To(25)})
			Expect(err).ToNot(HaveOccurred())
			Expect(first.UID).ToNot(BeEmpty())
			Expect(first.UID).ToNot(Equal(second.UID))
		})

		DescribeTable("should reject invalid requests without writing anything",
			func(model *cidrcalc.Model) {
				_, err := handler.Create(ctx, model)
				Expect(err).To(HaveOccurred())
				Expect(errdefs.IsInvalidInput(err)).To(BeTrue())

				_, err = st.Get(ctx, "uid-1-State")
				Expect(errdefs.IsNotFound(err)).To(BeTrue())
				Expect(operations("create", cidrcalc.ResultInvalid)).To(BeNumerically("==", 1))
			},
			Entry("no policy", &cidrcalc.Model{CidrToSplit: "10.0.0.0"}),
			Entry("both policies", &cidrcalc.Model{CidrToSplit: "10.0.0.0/24", HostCounts: []int{16}, PrefixForEvenSplit: ptr.To(26)}),
			Entry("non positive host count", &cidrcalc.Model{CidrToSplit: "10.0.0.0", HostCounts: []int{16, 0}}),
			Entry("host count out of range", &cidrcalc.Model{CidrToSplit: "10.0.0.0", HostCounts: []int{64001}}),
			Entry("malformed start", &cidrcalc.Model{CidrToSplit: "10.0.0", HostCounts: []int{16}}),
			Entry("prefix shorter than the parent", &cidrcalc.Model{CidrToSplit: "10.0.0.0/24", PrefixForEvenSplit: ptr.To(16)}),
		)

		It("should report store failures as unavailable", func() {
			h, err := cidrcalc.NewHandler(brokenStore{}, cidrcalc.Options{})
			Expect(err).ToNot(HaveOccurred())

			_, err = h.Create(ctx, &cidrcalc.Model{CidrToSplit: "10.0.0.0", HostCounts: []int{16}})
			Expect(errdefs.IsUnavailable(err)).To(BeTrue())
			Expect(errdefs.IsInvalidInput(err)).To(BeFalse())
		})

		It("should not leave the CIDRs behind when the state cannot be written", func() {
			h, err := cidrcalc.NewHandler(stateWriteFailingStore{Store: st}, cidrcalc.Options{NewUID: func() string { return "partial" }})
			Expect(err).ToNot(HaveOccurred())

			_, err = h.Create(ctx, &cidrcalc.Model{CidrToSplit: "10.0.0.0", HostCounts: []int{16}})
			Expect(errdefs.IsUnavailable(err)).To(BeTrue())

			_, err = st.Get(ctx, cidrcalc.CidrListKey("partial"))
			Expect(errdefs.IsNotFound(err)).To(BeTrue())
			_, err = st.Get(ctx, cidrcalc.StateKey("partial"))
			Expect(errdefs.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("Read", func() {
		It("should return the persisted CIDRs and state", func() {
			_, err := handler.Create(ctx, &cidrcalc.Model{CidrToSplit: "10.0.0.0", HostCounts: []int{16, 16}})
			Expect(err).ToNot(HaveOccurred())

			read, err := handler.Read(ctx, "uid-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(read).To(Equal(&cidrcalc.Model{
				UID:   "uid-1",
				CIDRs: []string{"10.0.0.0/28", "10.0.0.16/28"},
				State: consts.StateCreated,
			}))
			Expect(operations("read", cidrcalc.ResultSuccess)).To(BeNumerically("==", 1))
		})

		It("should report a missing resource as not found", func() {
			_, err := handler.Read(ctx, "missing")
			Expect(errdefs.IsNotFound(err)).To(BeTrue())
			Expect(err).To(MatchError(fmt.Sprintf("%s %q not found", consts.TypeName, "missing")))
			Expect(operations("read", cidrcalc.ResultNotFound)).To(BeNumerically("==", 1))
		})

		It("should report a resource with an unknown state as not found", func() {
			Expect(st.Put(ctx, "weird-State", "PENDING")).To(Succeed())
			_, err := handler.Read(ctx, "weird")
			Expect(errdefs.IsNotFound(err)).To(BeTrue())
		})

		It("should report an empty identifier as not found", func() {
			_, err := handler.Read(ctx, "")
			Expect(errdefs.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			_, err := handler.Create(ctx, &cidrcalc.Model{CidrToSplit: "10.0.0.0", HostCounts: []int{16}})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should recompute the partition and mark the resource as updated", func() {
			updated, err := handler.Update(ctx, &cidrcalc.Model{UID: "uid-1", CidrToSplit: "192.168.0.0/23", PrefixForEvenSplit: ptr.To(24)})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.State).To(Equal(consts.StateUpdated))
			Expect(updated.CIDRs).To(Equal([]string{"192.168.0.0/24", "192.168.1.0/24"}))

			read, err := handler.Read(ctx, "uid-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(read.CIDRs).To(Equal(updated.CIDRs))
			Expect(read.State).To(Equal(consts.StateUpdated))
		})

		It("should not touch the resource when the request is invalid", func() {
			_, err := handler.Update(ctx, &cidrcalc.Model{UID: "uid-1", CidrToSplit: "10.0.0.0"})
			Expect(errdefs.IsInvalidInput(err)).To(BeTrue())
			Expect(st.Get(ctx, "uid-1-State")).To(Equal("CREATED"))
		})

		DescribeTable("should report missing resources as not found",
			func(uid string) {
				_, err := handler.Update(ctx, &cidrcalc.Model{UID: uid, CidrToSplit: "10.0.0.0", HostCounts: []int{16}})
				Expect(errdefs.IsNotFound(err)).To(BeTrue())
			},
			Entry("empty identifier", ""),
			Entry("unknown identifier", "uid-42"),
		)

		It("should report a deleted resource as not found", func() {
			Expect(handler.Delete(ctx, "uid-1")).To(Succeed())
			_, err := handler.Update(ctx, &cidrcalc.Model{UID: "uid-1", CidrToSplit: "10.0.0.0", HostCounts: []int{16}})
			Expect(errdefs.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			_, err := handler.Create(ctx, &cidrcalc.Model{CidrToSplit: "10.0.0.0", HostCounts: []int{16}})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should remove the CIDRs and leave a tombstone", func() {
			Expect(handler.Delete(ctx, "uid-1")).To(Succeed())

			_, err := st.Get(ctx, "uid-1-CidrList")
			Expect(errdefs.IsNotFound(err)).To(BeTrue())
			Expect(st.Get(ctx, "uid-1-State")).To(Equal("DELETED"))

			_, err = handler.Read(ctx, "uid-1")
			Expect(errdefs.IsNotFound(err)).To(BeTrue())
		})

		It("should report a second deletion as not found", func() {
			Expect(handler.Delete(ctx, "uid-1")).To(Succeed())
			err := handler.Delete(ctx, "uid-1")
			Expect(errdefs.IsNotFound(err)).To(BeTrue())
			Expect(operations("delete", cidrcalc.ResultSuccess)).To(BeNumerically("==", 1))
			Expect(operations("delete", cidrcalc.ResultNotFound)).To(BeNumerically("==", 1))
		})

		It("should report a resource with an unknown state as not found", func() {
			Expect(st.Put(ctx, "uid-1-State", "PENDING")).To(Succeed())
			Expect(errdefs.IsNotFound(handler.Delete(ctx, "uid-1"))).To(BeTrue())
		})
	})

	Describe("Timeout", func() {
		It("should abort the operations whose context is already expired", func() {
			expired, cancel := context.WithCancel(ctx)
			cancel()

			h, err := cidrcalc.NewHandler(contextAwareStore{Store: st}, cidrcalc.Options{})
			Expect(err).ToNot(HaveOccurred())
			_, err = h.Create(expired, &cidrcalc.Model{CidrToSplit: "10.0.0.0", HostCounts: []int{16}})
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("Metrics registration", func() {
		It("should reuse the collectors already registered", func() {
			other, err := cidrcalc.NewHandler(st, cidrcalc.Options{Registerer: registry})
			Expect(err).ToNot(HaveOccurred())
			Expect(other.Metrics().Operations).To(BeIdenticalTo(handler.Metrics().Operations))
		})
	})
})

// contextAwareStore fails the operations whose context is done.
type contextAwareStore struct {
	store.Store
}

func (s contextAwareStore) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Store.Put(ctx, key, value)
}
