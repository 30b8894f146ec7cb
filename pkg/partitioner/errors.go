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

package partitioner

import (
	"errors"
	"fmt"
)

// Bound identifies which side of the supported host-count domain was violated.
type Bound string

const (
	// LowerBound is reported for host counts smaller than one.
	LowerBound Bound = "lower"
	// UpperBound is reported for host counts larger than the biggest capacity tier.
	UpperBound Bound = "upper"
)

// RangeError is returned when a host count cannot be mapped to any capacity tier.
type RangeError struct {
	// Value is the offending host count.
	Value int
	// Bound is the side of the domain which has been violated.
	Bound Bound
	// Limit is the value of the violated bound.
	Limit int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("subnets must be in range of %d to %d hosts, %d is outside the %s bound",
		MinTierHosts(), MaxHostCount(), e.Value, e.Bound)
}

// InvalidArgumentError is returned when an address, a CIDR or a prefix length is malformed or out of range.
type InvalidArgumentError struct {
	// Argument is the name of the offending argument.
	Argument string
	// Value is the textual representation of the offending value.
	Value string
	// Reason describes why the value has been rejected.
	Reason string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Argument, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Argument, e.Value, e.Reason)
}

func invalidArgument(argument, value, format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Value: value, Reason: fmt.Sprintf(format, args...)}
}

// IsRangeError returns whether err, or any error it wraps, is a RangeError.
func IsRangeError(err error) bool {
	var rangeErr *RangeError
	return errors.As(err, &rangeErr)
}

// IsInvalidArgument returns whether err, or any error it wraps, is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var invalidErr *InvalidArgumentError
	return errors.As(err, &invalidErr)
}
