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

package args

import (
	"fmt"
	"slices"
	"strings"
)

// Enum implements the flag.Value interface and restricts the value to a fixed set of alternatives.
type Enum struct {
	Allowed []string
	Value   string
}

// NewEnum returns an Enum accepting the given values, initialized to d.
func NewEnum(allowed []string, d string) *Enum {
	return &Enum{
		Allowed: allowed,
		Value:   d,
	}
}

// String returns the current value.
func (e *Enum) String() string {
	return e.Value
}

// Set checks the provided string against the allowed values.
func (e *Enum) Set(str string) error {
	if !slices.Contains(e.Allowed, str) {
		return fmt.Errorf("%q is not included in %s", str, strings.Join(e.Allowed, ","))
	}
	e.Value = str
	return nil
}

// Type returns the enum type.
func (e *Enum) Type() string {
	return "string"
}
