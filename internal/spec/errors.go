package spec

import "fmt"

// NotFoundError is returned when the spec file does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("spec file %s not found", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError is returned when the spec document is not valid YAML or does not
// have the expected shape.
type ParseError struct {
	Path string
	Line int // 0 when unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing spec %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parsing spec %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
