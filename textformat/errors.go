package textformat

import "fmt"

// The input could not be opened or read.
type InputAccessError struct {
	Path string
	Err  error
}

func (e *InputAccessError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unable to read input: %v", e.Err)
	}
	return fmt.Sprintf("unable to open file: %s: %v", e.Path, e.Err)
}

func (e *InputAccessError) Unwrap() error {
	return e.Err
}

// An unknown header, or a data line before any header.
type MalformedSectionError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedSectionError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// A data line with the wrong number of fields, or a field that doesn't parse.
type MalformedRecordError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}
