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

package output

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/liqotech/cidrcalc/pkg/cidrcalc"
)

// Format is the format of the command output.
type Format string

const (
	// Text is the human readable format.
	Text Format = "text"
	// JSON is the JSON format.
	JSON Format = "json"
	// YAML is the YAML format.
	YAML Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{string(Text), string(JSON), string(YAML)}

// partition is the machine readable representation of a partition.
type partition struct {
	CIDRs []string `json:"cidrs"`
}

// PrintCIDRs outputs the blocks of a partition.
func (p *Printer) PrintCIDRs(format Format, cidrs []string) error {
	if format != Text {
		return p.printMachineReadable(format, &partition{CIDRs: cidrs})
	}

	p.Section.Println("Partition")
	for _, cidr := range cidrs {
		p.BulletListAddItem(DataStyle.Sprint(cidr), 0)
	}
	return p.BulletListRender()
}

// PrintResource outputs a CidrCalc resource.
func (p *Printer) PrintResource(format Format, model *cidrcalc.Model) error {
	if format != Text {
		return p.printMachineReadable(format, model)
	}

	p.Section.Printfln("CidrCalc %s", DataStyle.Sprint(model.UID))
	if model.State != "" {
		p.BulletListAddItem(fmt.Sprintf("State: %s", model.State), 0)
	}
	if model.CidrToSplit != "" {
		p.BulletListAddItem(fmt.Sprintf("CIDR to split: %s", model.CidrToSplit), 0)
	}
	if len(model.HostCounts) > 0 {
		p.BulletListAddItem(fmt.Sprintf("Host counts: %v", model.HostCounts), 0)
	}
	if model.PrefixForEvenSplit != nil {
		p.BulletListAddItem(fmt.Sprintf("Prefix for even split: /%d", *model.PrefixForEvenSplit), 0)
	}
	p.BulletListAddItem("CIDRs:", 0)
	for _, cidr := range model.CIDRs {
		p.BulletListAddItem(DataStyle.Sprint(cidr), 1)
	}
	return p.BulletListRender()
}

func (p *Printer) printMachineReadable(format Format, data interface{}) error {
	out, err := sPrintOutput(format, data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.Out, out)
	return err
}

// sPrintOutput formats the data according to the output format.
func sPrintOutput(format Format, data interface{}) (string, error) {
	switch format {
	case JSON:
		res, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", err
		}
		return string(res), nil
	case YAML:
		res, err := yaml.Marshal(data)
		if err != nil {
			return "", err
		}
		return string(res), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}
