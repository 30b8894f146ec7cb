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
	"context"
	"time"

	"github.com/spf13/pflag"

	"github.com/liqotech/cidrcalc/pkg/cidrcalc"
	"github.com/liqotech/cidrcalc/pkg/cidrcalcctl/output"
	"github.com/liqotech/cidrcalc/pkg/consts"
	"github.com/liqotech/cidrcalc/pkg/store"
	"github.com/liqotech/cidrcalc/pkg/utils/args"
)

// FlagTimeout -> the name of the timeout flag.
const FlagTimeout = "timeout"

// Factory provides the objects shared by the commands: the printer and the lazily initialized store.
// Factory ensures that its fields are populated and valid during command execution.
type Factory struct {
	storeOptions *store.Options
	store        store.Store
	verbose      bool

	// Printer is the object used to output messages in the appropriate format.
	Printer *output.Printer
	// OutputFormat is the format requested through the "--output" / "-o" flag.
	OutputFormat *args.Enum
	// Timeout bounds every resource operation.
	Timeout time.Duration
}

// New returns a new Factory.
func New() *Factory {
	return &Factory{
		storeOptions: store.NewOptions(),
		OutputFormat: args.NewEnum(output.Formats, string(output.Text)),
	}
}

// AddFlags registers the flags shared by all the commands.
func (f *Factory) AddFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&f.verbose, "verbose", false, "Enable verbose output (default false)")
	flags.VarP(f.OutputFormat, "output", "o", "Output format. Supported formats: text, json, yaml")
}

// AddStoreFlags registers the flags selecting and configuring the store, for the commands interacting with it.
func (f *Factory) AddStoreFlags(flags *pflag.FlagSet) {
	store.InitFlags(flags, f.storeOptions)
	flags.DurationVar(&f.Timeout, FlagTimeout, consts.DefaultRequestTimeout, "The timeout of every store operation")
}

// Initialize populates the object based on the provided flags.
func (f *Factory) Initialize() {
	f.Printer = output.NewPrinter(f.verbose)
}

// Format returns the output format requested by the user.
func (f *Factory) Format() output.Format {
	return output.Format(f.OutputFormat.Value)
}

// StoreOrError returns the configured store, initializing it if necessary.
func (f *Factory) StoreOrError(ctx context.Context) (store.Store, error) {
	if f.store != nil {
		return f.store, nil
	}

	if consts.StoreBackend(f.storeOptions.Backend.Value) == consts.StoreBackendMemory {
		f.Printer.Warning.Println("The memory store does not outlive the command, use --store to select a persistent one")
	}
	f.Printer.Verbosef("Initializing the %q store", f.storeOptions.Backend.Value)

	var err error
	f.store, err = store.New(ctx, f.storeOptions)
	return f.store, err
}

// SetStore forces the store returned by the factory.
func (f *Factory) SetStore(st store.Store) {
	f.store = st
}

// HandlerOrError returns a CidrCalc handler operating on the configured store.
func (f *Factory) HandlerOrError(ctx context.Context) (*cidrcalc.Handler, error) {
	st, err := f.StoreOrError(ctx)
	if err != nil {
		return nil, err
	}
	return cidrcalc.NewHandler(st, cidrcalc.Options{Timeout: f.Timeout})
}
