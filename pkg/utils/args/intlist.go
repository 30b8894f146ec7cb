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
	"strconv"
)

// IntList implements the flag.Value interface and allows to parse lists of positive integers
// in the form: "64,128,250". Multiple occurrences of the flag are appended.
type IntList struct {
	StringList StringList
	IntList    []int
}

// String returns the stringified list.
func (il *IntList) String() string {
	return il.StringList.String()
}

// Set parses the provided string into the list of integers.
func (il *IntList) Set(str string) error {
	var chunks StringList
	if err := chunks.Set(str); err != nil {
		return err
	}

	vals := make([]int, 0, len(chunks.StringList))
	for _, chunk := range chunks.StringList {
		val, err := strconv.Atoi(chunk)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", chunk, err)
		}
		if val <= 0 {
			return fmt.Errorf("invalid value %q: must be a positive integer", chunk)
		}
		vals = append(vals, val)
	}

	il.IntList = append(il.IntList, vals...)
	return il.StringList.Set(str)
}

// Type returns the intList type.
func (il *IntList) Type() string {
	return "intList"
}
