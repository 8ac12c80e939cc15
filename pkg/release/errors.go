package release

import "fmt"

// ParsingError reports a release name that could not be parsed into
// structured form.
type ParsingError struct {
	Input string
	Msg   string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("parse release name %q: %s", e.Input, e.Msg)
}
