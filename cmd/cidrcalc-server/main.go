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

// Package main is the entrypoint of the cidrcalc HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/liqotech/cidrcalc/pkg/cidrcalc"
	"github.com/liqotech/cidrcalc/pkg/consts"
	"github.com/liqotech/cidrcalc/pkg/server"
	"github.com/liqotech/cidrcalc/pkg/store"
)

func main() {
	var envFile string
	var requestTimeout = consts.DefaultRequestTimeout
	storeOptions := store.NewOptions()
	serverOptions := server.Options{}

	pflag.StringVar(&envFile, "env-file", ".env", "The file the environment variables are loaded from, if present")
	pflag.DurationVar(&requestTimeout, "request-timeout", requestTimeout, "The timeout of every resource operation")
	store.InitFlags(pflag.CommandLine, storeOptions)
	server.InitFlags(pflag.CommandLine, &serverOptions)

	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			klog.Fatalf("Failed to load the environment from %q: %v", envFile, err)
		}
		klog.V(2).Infof("No environment file %q found, using the process environment", envFile)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, storeOptions, &serverOptions, requestTimeout); err != nil {
		klog.Errorf("cidrcalc server terminated with error: %v", err)
		os.Exit(1)
	}
	klog.Info("cidrcalc server terminated")
}

func run(ctx context.Context, storeOptions *store.Options, serverOptions *server.Options, timeout time.Duration) error {
	st, err := store.New(ctx, storeOptions)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler, err := cidrcalc.NewHandler(st, cidrcalc.Options{Timeout: timeout, Registerer: registry})
	if err != nil {
		return err
	}

	return server.New(handler, registry, *serverOptions).Run(ctx)
}
