package bedpe

import "fmt"

// ParseError reports a malformed BEDPE line. The whole conversion aborts on
// the first ParseError; partial cluster sets would corrupt downstream
// analysis.
type ParseError struct {
	Line int    // 1-based line number within the file
	Text string // the offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bedpe: line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func errColumnCount(n int) error {
	return fmt.Errorf("expected at least 6 tab-separated columns, got %d", n)
}

// EncodingError reports a value the numeric-aware JSON encoder cannot
// represent. This is a programming or schema error, not a data error.
type EncodingError struct {
	Type string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("bedpe: cannot encode value of type %s as JSON", e.Type)
}
