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

package server

import (
	"time"

	"github.com/spf13/pflag"
)

// FlagName is the type for the name of the flags.
type FlagName string

func (fn FlagName) String() string {
	return string(fn)
}

const (
	// FlagNameListenAddress is the address the server listens on.
	FlagNameListenAddress FlagName = "listen-address"
	// FlagNameReadHeaderTimeout is the time allowed to read the request headers.
	FlagNameReadHeaderTimeout FlagName = "read-header-timeout"
	// FlagNameShutdownTimeout is the time granted to the in-flight requests at shutdown.
	FlagNameShutdownTimeout FlagName = "shutdown-timeout"
)

// Options contains the options to configure the server.
type Options struct {
	ListenAddress     string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// InitFlags initializes the flags for the Options struct.
func InitFlags(flagset *pflag.FlagSet, o *Options) {
	flagset.StringVar(&o.ListenAddress, FlagNameListenAddress.String(), ":8080", "The address the server listens on")
	flagset.DurationVar(&o.ReadHeaderTimeout, FlagNameReadHeaderTimeout.String(), 10*time.Second,
		"The time allowed to read the request headers")
	flagset.DurationVar(&o.ShutdownTimeout, FlagNameShutdownTimeout.String(), 15*time.Second,
		"The time granted to the in-flight requests at shutdown")
}
