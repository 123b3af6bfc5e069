// SPDX-License-Identifier: MIT
// Package solve: sentinel error set.

package solve

import (
	"errors"
	"fmt"
)

var (
	// ErrConvergence is returned when an iterative method exhausts its
	// iteration cap with the error metric still above eps. It is distinct
	// from every validation error so callers can retry with a larger cap,
	// a looser eps or a different method.
	ErrConvergence = errors.New("solve: iterative solver failed to converge")

	// ErrZeroDiagonal is returned when a splitting method needs to divide
	// by a diagonal entry that is zero or absent. For a Laplacian system
	// this happens exactly on graphs with isolated vertices.
	ErrZeroDiagonal = errors.New("solve: zero diagonal entry")
)

// solveErrorf wraps a sentinel with operation context.
func solveErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("solve.%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
