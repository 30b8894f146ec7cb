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

// Package errdefs defines the classes of errors returned by the orchestration layer,
// independently of the component (partitioner, store backend) which originated them.
package errdefs

import (
	stderrors "errors"
)

type causal interface {
	Cause() error
	error
}

// matches walks the chain of err, following both Cause() and Unwrap(), until check returns true.
func matches(err error, check func(error) bool) bool {
	for err != nil {
		if check(err) {
			return true
		}
		if e, ok := err.(causal); ok {
			err = e.Cause()
			continue
		}
		err = stderrors.Unwrap(err)
	}
	return false
}
