// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the utilities and the CLI
// layer. It is a leaf dependency: it imports only the standard library.
package types

import (
	"errors"
	"fmt"
)

// ErrInvalidOperand is the sentinel error wrapped by InvalidOperandError.
var ErrInvalidOperand = errors.New("invalid operand")

type (
	// Operand is a path argument exactly as it was typed on the command line.
	// Operands are never cleaned or made absolute so that diagnostics echo
	// what the user wrote. The zero value ("") is invalid.
	Operand string

	// InvalidOperandError is returned when an Operand is empty.
	InvalidOperandError struct {
		Value Operand
	}
)

// String returns the string representation of the Operand.
func (o Operand) String() string { return string(o) }

// Validate returns an error if the Operand cannot name a filesystem object.
func (o Operand) Validate() error {
	if o == "" {
		return &InvalidOperandError{Value: o}
	}
	return nil
}

// Error implements the error interface for InvalidOperandError.
func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("invalid operand %q: No such file or directory", e.Value)
}

// Unwrap returns ErrInvalidOperand for errors.Is() compatibility.
func (e *InvalidOperandError) Unwrap() error { return ErrInvalidOperand }

// Operands converts raw arguments into Operands. No arguments yield nil, so
// the caller's own default applies.
func Operands(args []string) []Operand {
	if len(args) == 0 {
		return nil
	}
	ops := make([]Operand, len(args))
	for i, a := range args {
		ops[i] = Operand(a)
	}
	return ops
}
