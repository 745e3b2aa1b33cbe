package cli

import "fmt"

// Process exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// UsageError is returned when the command line has the wrong shape:
// too few or too many positional arguments, or an unknown flag.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// ParseError is returned when a positional argument is not a number
// or is outside the range the calculation accepts. Name is the
// argument's name as shown in the usage text.
type ParseError struct {
	Name  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
