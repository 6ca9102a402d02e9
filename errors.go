package gatelog

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNoTransport is returned by Build when remote logging is configured for
	// the default adapter but no Transport is available.
	ErrNoTransport = errors.New("gatelog: no transport configured for remote logging")

	// ErrInvalidLevel is wrapped by ParseLevel and Build for out-of-range levels.
	ErrInvalidLevel = errors.New("gatelog: invalid level")
)

// ErrorHandler receives failures that cannot be surfaced to the caller of a
// leveled entry point, such as a panicking adapter or console.
type ErrorHandler func(error)

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "gatelog error: %v\n", err) }
