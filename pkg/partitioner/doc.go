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

// Package partitioner lays out IPv4 address blocks.
//
// Two policies are supported. A host-count sequence maps every requested
// capacity to the smallest standard block able to hold it and places the
// blocks one after the other, starting from a given address. A prefix split
// cuts a parent network into equally sized children.
//
// Every function in this package is pure: it performs no I/O and holds no
// state across calls, so it can be invoked concurrently without coordination.
package partitioner
