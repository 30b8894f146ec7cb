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

package cidrcalc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog/v2"
	utiltrace "k8s.io/utils/trace"

	"github.com/liqotech/cidrcalc/pkg/consts"
	"github.com/liqotech/cidrcalc/pkg/partitioner"
	"github.com/liqotech/cidrcalc/pkg/store"
	"github.com/liqotech/cidrcalc/pkg/utils/errdefs"
	"github.com/liqotech/cidrcalc/pkg/utils/trace"
)

// Options configures the Handler.
type Options struct {
	// Timeout bounds every operation. Defaults to consts.DefaultRequestTimeout.
	Timeout time.Duration
	// Registerer is where the metrics are registered. Metrics are not exported if nil.
	Registerer prometheus.Registerer
	// NewUID generates the identifiers of the created resources. Defaults to random UUIDs.
	NewUID func() string
}

// Handler implements the lifecycle of CidrCalc resources on top of a Store.
type Handler struct {
	store   store.Store
	timeout time.Duration
	newUID  func() string
	metrics *Metrics
}

// NewHandler returns a new Handler persisting the resources in st.
func NewHandler(st store.Store, opts Options) (*Handler, error) {
	metrics, err := NewMetrics(opts.Registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register the metrics: %w", err)
	}

	h := &Handler{store: st, timeout: opts.Timeout, newUID: opts.NewUID, metrics: metrics}
	if h.timeout <= 0 {
		h.timeout = consts.DefaultRequestTimeout
	}
	if h.newUID == nil {
		h.newUID = uuid.NewString
	}
	return h, nil
}

// Create computes the partition described by m and persists it under a new UID.
func (h *Handler) Create(ctx context.Context, m *Model) (_ *Model, err error) {
	defer func() { h.metrics.observe("create", err) }()
	tracer, done := trace.Start("CidrCalc create", utiltrace.Field{Key: "cidr", Value: m.CidrToSplit})
	defer done()
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	cidrs, err := h.compute(m)
	if err != nil {
		return nil, err
	}
	tracer.Step("Partition computed")

	created := *m
	created.UID = h.newUID()
	created.CIDRs = cidrs
	created.State = consts.StateCreated

	if err := h.persist(ctx, &created); err != nil {
		if cleanupErr := h.store.Delete(ctx, CidrListKey(created.UID)); cleanupErr != nil && !errdefs.IsNotFound(cleanupErr) {
			klog.Warningf("Failed to remove the CIDRs of the partially created cidrcalc %q: %v", created.UID, cleanupErr)
		}
		return nil, err
	}

	klog.Infof("CidrCalc %q created (%d blocks from %q)", created.UID, len(cidrs), m.CidrToSplit)
	return &created, nil
}

// Read returns the CIDRs and the state of the resource identified by uid.
// Deleted resources are reported as not found.
func (h *Handler) Read(ctx context.Context, uid string) (_ *Model, err error) {
	defer func() { h.metrics.observe("read", err) }()
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	state, err := h.state(ctx, uid)
	if err != nil {
		return nil, err
	}

	joined, err := h.store.Get(ctx, CidrListKey(uid))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve the CIDRs of cidrcalc %q: %w", uid, err)
	}

	klog.V(4).Infof("CidrCalc %q read (state %s)", uid, state)
	return &Model{UID: uid, CIDRs: partitioner.SplitCIDRs(joined), State: state}, nil
}

// Update recomputes the partition of an existing resource.
func (h *Handler) Update(ctx context.Context, m *Model) (_ *Model, err error) {
	defer func() { h.metrics.observe("update", err) }()
	tracer, done := trace.Start("CidrCalc update", utiltrace.Field{Key: "uid", Value: m.UID})
	defer done()
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if _, err := h.state(ctx, m.UID); err != nil {
		return nil, err
	}
	tracer.Step("State retrieved")

	cidrs, err := h.compute(m)
	if err != nil {
		return nil, err
	}
	tracer.Step("Partition computed")

	updated := *m
	updated.CIDRs = cidrs
	updated.State = consts.StateUpdated

	if err := h.persist(ctx, &updated); err != nil {
		return nil, err
	}

	klog.Infof("CidrCalc %q updated (%d blocks from %q)", updated.UID, len(cidrs), m.CidrToSplit)
	return &updated, nil
}

// Delete removes the CIDRs of the resource identified by uid, leaving a DELETED state as tombstone.
func (h *Handler) Delete(ctx context.Context, uid string) (err error) {
	defer func() { h.metrics.observe("delete", err) }()
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if _, err := h.state(ctx, uid); err != nil {
		return err
	}

	if err := h.store.Delete(ctx, CidrListKey(uid)); err != nil && !errdefs.IsNotFound(err) {
		return fmt.Errorf("failed to delete the CIDRs of cidrcalc %q: %w", uid, err)
	}
	if err := h.store.Put(ctx, StateKey(uid), string(consts.StateDeleted)); err != nil {
		return fmt.Errorf("failed to write the state of cidrcalc %q: %w", uid, err)
	}

	klog.Infof("CidrCalc %q deleted", uid)
	return nil
}

func (h *Handler) compute(m *Model) ([]string, error) {
	cidrs, err := partitioner.Compute(m.Request())
	if err != nil {
		return nil, errdefs.AsInvalidInput(err)
	}
	h.metrics.PartitionBlocks.Observe(float64(len(cidrs)))
	return cidrs, nil
}

// persist writes the CIDR list first, so that a readable state always refers to existing CIDRs.
func (h *Handler) persist(ctx context.Context, m *Model) error {
	if err := h.store.Put(ctx, CidrListKey(m.UID), partitioner.JoinCIDRs(m.CIDRs)); err != nil {
		return fmt.Errorf("failed to write the CIDRs of cidrcalc %q: %w", m.UID, err)
	}
	if err := h.store.Put(ctx, StateKey(m.UID), string(m.State)); err != nil {
		return fmt.Errorf("failed to write the state of cidrcalc %q: %w", m.UID, err)
	}
	return nil
}

// state returns the lifecycle state of a live resource.
func (h *Handler) state(ctx context.Context, uid string) (consts.ResourceState, error) {
	if uid == "" {
		return "", errdefs.NotFoundf("the %s uid must be specified", consts.TypeName)
	}

	raw, err := h.store.Get(ctx, StateKey(uid))
	if err != nil {
		if errdefs.IsNotFound(err) {
			return "", errdefs.NotFoundf("%s %q not found", consts.TypeName, uid)
		}
		return "", fmt.Errorf("failed to retrieve the state of cidrcalc %q: %w", uid, err)
	}

	switch state := consts.ResourceState(raw); {
	case state == consts.StateDeleted:
		return "", errdefs.NotFoundf("%s %q has been deleted", consts.TypeName, uid)
	case !consts.IsKnownState(state):
		return "", errdefs.NotFoundf("%s %q has unknown state %q", consts.TypeName, uid, raw)
	default:
		return state, nil
	}
}

// Metrics returns the collectors updated by the handler.
func (h *Handler) Metrics() *Metrics {
	return h.metrics
}
