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
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/kubectl/pkg/cmd/util"
)

func init() {
	// Control sequences would not work outside a terminal.
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		pterm.DisableStyling()
	}
}

const levelMultiplier = 4

var (
	// SectionStyle is the style of the section titles.
	SectionStyle = pterm.NewStyle(pterm.FgMagenta, pterm.Bold)
	// DataStyle is the style of the highlighted data.
	DataStyle = pterm.NewStyle(pterm.FgLightYellow, pterm.Bold)
)

var spinnerCharset = []string{"⠈⠁", "⠈⠑", "⠈⠱", "⠈⡱", "⢀⡱", "⢄⡱", "⢄⡱", "⢆⡱", "⢎⡱", "⢎⡰", "⢎⡠", "⢎⡀", "⢎⠁", "⠎⠁", "⠊⠁"}

// Printer manages all kinds of outputs.
type Printer struct {
	Info    *pterm.PrefixPrinter
	Success *pterm.PrefixPrinter
	Warning *pterm.PrefixPrinter
	Error   *pterm.PrefixPrinter

	// Out receives the machine readable output.
	Out io.Writer

	spinner    *pterm.SpinnerPrinter
	active     *pterm.SpinnerPrinter
	BulletList *pterm.BulletListPrinter
	Section    *pterm.SectionPrinter
	verbose    bool

	exit func(code int)
}

// BulletListAddItem adds a new message to the BulletListPrinter, at the given nesting level.
func (p *Printer) BulletListAddItem(msg string, level int) {
	p.BulletList.Items = append(p.BulletList.Items, pterm.BulletListItem{
		Text:   msg,
		Level:  level * levelMultiplier,
		Bullet: " " + pterm.DefaultBulletList.Bullet,
	})
}

// BulletListRender outputs the accumulated bullet list and resets it.
func (p *Printer) BulletListRender() error {
	defer func() { p.BulletList.Items = nil }()
	return p.BulletList.Render()
}

// StartSpinner starts a new spinner.
func (p *Printer) StartSpinner(text ...interface{}) *pterm.SpinnerPrinter {
	spinner, err := p.spinner.Start(text...)
	utilruntime.Must(err)
	p.active = spinner
	return spinner
}

// Verbosef outputs verbose messages guarded by the corresponding flag.
func (p *Printer) Verbosef(format string, args ...interface{}) {
	if p.verbose {
		p.Info.Printfln(strings.TrimRight(format, "\n"), args...)
	}
}

// CheckErr prints a user friendly error and exits with a non-zero exit code.
// The last started spinner, if still active, is leveraged to print the message,
// then the printer or, if nil, STDERR.
func (p *Printer) CheckErr(err error) {
	switch {
	case err == nil:
		return

	case p != nil && p.active != nil && p.active.IsActive:
		util.BehaviorOnFatal(func(msg string, code int) {
			p.active.Fail(strings.TrimRight(msg, "\n"))
			p.exit(code)
		})

	case p != nil:
		util.BehaviorOnFatal(func(msg string, code int) {
			p.Error.Println(strings.TrimRight(msg, "\n"))
			p.exit(code)
		})

	default:
		util.DefaultBehaviorOnFatal()
	}

	util.CheckErr(errors.New(PrettyErr(err)))
}

// PrettyErr returns a prettified error message, according to standard kubectl style.
func PrettyErr(err error) string {
	urlErr := &url.Error{}
	if errors.As(err, &urlErr) {
		err = urlErr
	}

	if msg, ok := util.StandardErrorMessage(err); ok {
		return msg
	}

	return strings.Replace(err.Error(), context.DeadlineExceeded.Error(), "timed out waiting for the operation", 1)
}

// NewPrinter returns a new printer writing to the standard streams.
func NewPrinter(verbose bool) *Printer {
	generic := &pterm.PrefixPrinter{MessageStyle: pterm.NewStyle(pterm.FgDefault)}

	printer := &Printer{
		verbose: verbose,
		Out:     os.Stdout,
		exit:    os.Exit,
		Info: generic.WithPrefix(pterm.Prefix{
			Text:  "INFO",
			Style: pterm.NewStyle(pterm.FgDarkGray),
		}),
		Success: generic.WithPrefix(pterm.Prefix{
			Text:  "INFO",
			Style: pterm.NewStyle(pterm.FgGreen),
		}),
		Warning: generic.WithPrefix(pterm.Prefix{
			Text:  "WARN",
			Style: pterm.NewStyle(pterm.FgYellow),
		}),
		Error: generic.WithPrefix(pterm.Prefix{
			Text:  "ERRO",
			Style: pterm.NewStyle(pterm.FgRed),
		}),
	}

	printer.spinner = &pterm.SpinnerPrinter{
		Sequence:            spinnerCharset,
		Style:               pterm.NewStyle(pterm.FgLightBlue),
		Delay:               time.Millisecond * 100,
		MessageStyle:        pterm.NewStyle(pterm.FgLightBlue),
		SuccessPrinter:      printer.Success,
		WarningPrinter:      printer.Warning,
		FailPrinter:         printer.Error,
		ShowTimer:           true,
		TimerRoundingFactor: time.Second,
		TimerStyle:          &pterm.ThemeDefault.TimerStyle,
	}

	printer.BulletList = &pterm.BulletListPrinter{}
	printer.Section = &pterm.SectionPrinter{
		Style: SectionStyle,
		Level: 1,
	}

	return printer
}

// NewFakePrinter returns a new printer to be used in tests.
// Fatal errors are printed without terminating the process.
func NewFakePrinter(writer io.Writer) *Printer {
	printer := NewPrinter(true)
	printer.exit = func(int) {}
	printer.Out = writer
	printer.spinner.Writer = writer
	printer.Info.Writer = writer
	printer.Success.Writer = writer
	printer.Warning.Writer = writer
	printer.Error.Writer = writer
	printer.BulletList.Writer = writer
	printer.Section.Writer = writer
	return printer
}
