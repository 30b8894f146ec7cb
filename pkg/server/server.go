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
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/liqotech/cidrcalc/pkg/cidrcalc"
)

// Server serves the HTTP API.
type Server struct {
	handler *cidrcalc.Handler
	options Options
	router  *httprouter.Router
}

// New returns a new Server backed by handler, exposing the metrics collected by gatherer.
func New(handler *cidrcalc.Handler, gatherer prometheus.Gatherer, options Options) *Server {
	s := &Server{handler: handler, options: options, router: httprouter.New()}

	s.router.POST(SplitHostsURI, s.splitHosts)
	s.router.POST(SplitPrefixURI, s.splitPrefix)

	s.router.POST(CidrCalcsURI, s.create)
	s.router.GET(CidrCalcURI, s.read)
	s.router.PUT(CidrCalcURI, s.update)
	s.router.DELETE(CidrCalcURI, s.delete)

	s.router.GET(HealthzURI, s.healthz)
	s.router.Handler(http.MethodGet, MetricsURI, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves the API on the configured address until ctx is canceled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.options.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", s.options.ListenAddress, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves the API on listener until ctx is canceled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.options.ReadHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		klog.Infof("Serving the cidrcalc API on %q", listener.Addr())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve the API: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		klog.Info("Shutting down the cidrcalc API server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.options.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
