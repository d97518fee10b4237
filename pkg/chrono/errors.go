package chrono

import "fmt"

// FieldError reports a constructor argument that is out of range or
// otherwise unusable. Field names the offending argument.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("chrono: %s %s", e.Field, e.Msg)
}

// OverflowError reports a result whose magnitude exceeds the representable
// range (span day counts beyond ±999,999,999 or ordinals outside
// [1, 3652059]).
type OverflowError struct {
	Msg string
}

func (e *OverflowError) Error() string {
	return "chrono: " + e.Msg
}

// ParseError reports text that does not match the ISO 8601 grammar. Input
// preserves the original offending string.
type ParseError struct {
	Input string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chrono: invalid ISO 8601 string: %q", e.Input)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ComparisonError reports an ordering or subtraction attempted between a
// naive and an aware value. Equality never produces it; equality between
// incomparable values is simply false.
type ComparisonError struct {
	Msg string
}

func (e *ComparisonError) Error() string {
	return "chrono: " + e.Msg
}
