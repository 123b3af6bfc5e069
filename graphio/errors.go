// SPDX-License-Identifier: MIT
// Package graphio: sentinel error set.

package graphio

import (
	"errors"
	"fmt"
)

// ErrBadFormat is returned when a line of a graph file cannot be parsed.
// The wrapping error carries the file name and line number.
var ErrBadFormat = errors.New("graphio: malformed graph file")

// graphioErrorf wraps a sentinel with operation context.
func graphioErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("graphio.%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
