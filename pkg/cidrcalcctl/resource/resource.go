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

// Package resource implements the commands managing the lifecycle of CidrCalc resources.
package resource

import (
	"context"
	"fmt"

	"github.com/liqotech/cidrcalc/pkg/cidrcalc"
	"github.com/liqotech/cidrcalc/pkg/cidrcalcctl/factory"
	"github.com/liqotech/cidrcalc/pkg/utils/args"
)

// Options encapsulates the arguments of the resource commands.
type Options struct {
	*factory.Factory

	// UID identifies the target resource (get, update and delete).
	UID string
	// CidrToSplit is the starting address or the parent network of the partition.
	CidrToSplit args.Address
	// HostCounts is the list of capacities of a host count partition.
	HostCounts args.IntList
	// Prefix is the prefix length of the children of an even split, meaningful only if PrefixSet.
	Prefix    int
	PrefixSet bool
}

// NewOptions returns a new Options struct.
func NewOptions(f *factory.Factory) *Options {
	return &Options{Factory: f}
}

func (o *Options) model() *cidrcalc.Model {
	model := &cidrcalc.Model{
		UID:         o.UID,
		CidrToSplit: o.CidrToSplit.String(),
		HostCounts:  o.HostCounts.IntList,
	}
	if o.PrefixSet {
		prefix := o.Prefix
		model.PrefixForEvenSplit = &prefix
	}
	return model
}

// RunCreate creates a new resource and outputs it.
// On failure, the spinner is left active for the Printer to report the error.
func (o *Options) RunCreate(ctx context.Context) error {
	handler, err := o.HandlerOrError(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize the store: %w", err)
	}

	s := o.Printer.StartSpinner("Creating the CidrCalc resource")
	created, err := handler.Create(ctx, o.model())
	if err != nil {
		return fmt.Errorf("failed to create the CidrCalc resource: %w", err)
	}
	s.Success("CidrCalc resource created: ", created.UID)

	return o.Printer.PrintResource(o.Format(), created)
}

// RunGet retrieves a resource and outputs it.
func (o *Options) RunGet(ctx context.Context) error {
	handler, err := o.HandlerOrError(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize the store: %w", err)
	}

	model, err := handler.Read(ctx, o.UID)
	if err != nil {
		return fmt.Errorf("failed to retrieve the CidrCalc resource: %w", err)
	}
	return o.Printer.PrintResource(o.Format(), model)
}

// RunUpdate recomputes the partition of an existing resource and outputs it.
func (o *Options) RunUpdate(ctx context.Context) error {
	handler, err := o.HandlerOrError(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize the store: %w", err)
	}

	s := o.Printer.StartSpinner("Updating the CidrCalc resource ", o.UID)
	updated, err := handler.Update(ctx, o.model())
	if err != nil {
		return fmt.Errorf("failed to update the CidrCalc resource: %w", err)
	}
	s.Success("CidrCalc resource updated: ", updated.UID)

	return o.Printer.PrintResource(o.Format(), updated)
}

// RunDelete deletes a resource.
func (o *Options) RunDelete(ctx context.Context) error {
	handler, err := o.HandlerOrError(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize the store: %w", err)
	}

	s := o.Printer.StartSpinner("Deleting the CidrCalc resource ", o.UID)
	if err := handler.Delete(ctx, o.UID); err != nil {
		return fmt.Errorf("failed to delete the CidrCalc resource: %w", err)
	}
	s.Success("CidrCalc resource deleted: ", o.UID)
	return nil
}
