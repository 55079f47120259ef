// SPDX-License-Identifier: MIT
// Package: moddecomp/cmd/moddecomp
//
// errors.go — sentinel errors for the CLI driver.

package main

import (
	"errors"
	"fmt"
)

// ErrBadConfig indicates --config pointed at a file that could not be
// read or did not parse as TOML.
var ErrBadConfig = errors.New("moddecomp: invalid config file")

// ErrBadInput indicates --input pointed at a file that could not be
// opened, or stdin could not be read.
var ErrBadInput = errors.New("moddecomp: invalid input")

func errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
