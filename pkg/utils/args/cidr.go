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

	netutils "k8s.io/utils/net"
)

// CIDR implements the flag.Value interface and allows to parse IPv4 networks
// in the form: "x.x.x.x/y".
type CIDR struct {
	Value string
}

// String returns the stringified network.
func (c *CIDR) String() string {
	return c.Value
}

// Set checks that the provided string is an IPv4 network.
func (c *CIDR) Set(str string) error {
	if !netutils.IsIPv4CIDRString(str) {
		return fmt.Errorf("%q is not a valid IPv4 CIDR", str)
	}
	c.Value = str
	return nil
}

// Type returns the cidr type.
func (c *CIDR) Type() string {
	return "cidr"
}

// Address implements the flag.Value interface and allows to parse the starting point
// of a partition, either an IPv4 address ("x.x.x.x") or an IPv4 network ("x.x.x.x/y").
type Address struct {
	Value string
}

// String returns the stringified address.
func (a *Address) String() string {
	return a.Value
}

// Set checks that the provided string is an IPv4 address or network.
func (a *Address) Set(str string) error {
	if !netutils.IsIPv4String(str) && !netutils.IsIPv4CIDRString(str) {
		return fmt.Errorf("%q is neither a valid IPv4 address nor a valid IPv4 CIDR", str)
	}
	a.Value = str
	return nil
}

// Type returns the address type.
func (a *Address) Type() string {
	return "address"
}
