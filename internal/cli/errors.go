package cli

import "fmt"

// ArgumentError reports command-line arguments that cannot form a Config.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

// IOError reports a target file that could not be read as text.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
