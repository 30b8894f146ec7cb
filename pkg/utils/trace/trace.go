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

// Package trace provides helpers to log the operations taking longer than expected.
package trace

import (
	"time"

	"k8s.io/klog/v2"
	utiltrace "k8s.io/utils/trace"
)

// LongThreshold returns the latency above which a trace is logged, which decreases as the klog verbosity increases.
func LongThreshold() time.Duration {
	switch {
	case klog.V(5).Enabled():
		return 10 * time.Millisecond
	case klog.V(4).Enabled():
		return 50 * time.Millisecond
	case klog.V(2).Enabled():
		return 250 * time.Millisecond
	default:
		return time.Second
	}
}

// Start starts a new trace, and returns it together with the function to be deferred
// to log it in case the operation lasted longer than LongThreshold.
func Start(name string, fields ...utiltrace.Field) (tracer *utiltrace.Trace, done func()) {
	tracer = utiltrace.New(name, fields...)
	return tracer, func() { tracer.LogIfLong(LongThreshold()) }
}
