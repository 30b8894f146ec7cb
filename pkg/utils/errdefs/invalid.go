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

package errdefs

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidInput is an error interface which denotes whether the operation failed due
// to an invalid input.
type ErrInvalidInput interface {
	InvalidInput() bool
	error
}

type invalidInputError struct {
	error
}

func (e *invalidInputError) InvalidInput() bool {
	return true
}

func (e *invalidInputError) Cause() error {
	return e.error
}

func (e *invalidInputError) Unwrap() error {
	return e.error
}

// AsInvalidInput wraps the passed in error to make it of type ErrInvalidInput.
func AsInvalidInput(err error) error {
	if err == nil {
		return nil
	}
	return &invalidInputError{err}
}

// InvalidInput makes an ErrInvalidInput from the provided error message.
func InvalidInput(msg string) error {
	return &invalidInputError{errors.New(msg)}
}

// InvalidInputf makes an ErrInvalidInput from the provided error format and args.
func InvalidInputf(format string, args ...interface{}) error {
	return &invalidInputError{fmt.Errorf(format, args...)}
}

// IsInvalidInput determines if the passed in error is of type ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return matches(err, func(e error) bool {
		ii, ok := e.(ErrInvalidInput)
		return ok && ii.InvalidInput()
	})
}
