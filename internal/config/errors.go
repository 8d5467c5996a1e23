package config

import "fmt"

// Error reports a configuration that cannot start a session: a missing or
// unreadable file, bad YAML, out-of-range values or a grid smaller than the
// declared board. It is fatal to the session attempt but not to the process.
type Error struct {
	Source string // file path, or "embedded" for the built-in default
	Err    error
}

func (e *Error) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds a config error without a source.
func Errorf(format string, args ...any) error {
	return &Error{Err: fmt.Errorf(format, args...)}
}

// withSource attaches a source to err, keeping an existing one.
func withSource(source string, err error) error {
	if ce, ok := err.(*Error); ok {
		if ce.Source == "" {
			return &Error{Source: source, Err: ce.Err}
		}
		return ce
	}
	return &Error{Source: source, Err: err}
}
