package numeric

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDivisionByZero is returned by any division whose divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ArgumentError is an error indicating a value that cannot be used as a
// decimal operand.
type ArgumentError struct {
	// Value is the rejected value.
	Value any
}

func (err *ArgumentError) Error() string {
	switch v := err.Value.(type) {
	case float64, float32:
		return fmt.Sprintf("invalid argument: %v is not a finite number", v)
	default:
		return fmt.Sprintf("invalid argument type %T", v)
	}
}

// FormatError is an error indicating text that does not describe a decimal
// number.
type FormatError struct {
	// Text is the text that failed to parse, after whitespace and radix
	// separators were removed.
	Text string
	// Reason describes the problem.
	Reason string
}

// Reasons used in FormatError.
const (
	ReasonMultipleSeparators = "multiple decimal separators"
	ReasonNonDigits          = "non-digit characters"
)

func (err *FormatError) Error() string {
	return "invalid number " + strconv.Quote(err.Text) + ": " + err.Reason
}

// ParseError is an error indicating that the expression did not match the
// grammar where a token was required. It implements InputError.
type ParseError struct {
	// Col is the position of the offending token.
	Col int
	// Want is what the parser expected, e.g. ")" or "number".
	Want string
	// Got is the offending token. It is empty at the end of input.
	Got string
	// Err is the underlying error, if the token was a literal that is not a
	// valid number.
	Err error
}

func (err *ParseError) Error() string {
	got := "end of input"
	if err.Got != "" {
		got = strconv.Quote(err.Got)
	}
	msg := "expected " + err.Want + ", got " + got
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return errpos(err.Col, msg)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

func (err *ParseError) Pos() int {
	return err.Col
}

// ConfigError is an error indicating an invalid configuration value.
type ConfigError struct {
	// Key is the configuration key.
	Key string
	// Reason describes the problem.
	Reason string
}

func (err *ConfigError) Error() string {
	return "invalid " + err.Key + ": " + err.Reason
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// an expression that does not parse implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*ParseError)(nil)
