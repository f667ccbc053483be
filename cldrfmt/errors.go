package cldrfmt

import (
	"errors"
	"fmt"
)

// Sentinel error kinds a Format call can fail with. Test with errors.Is
// against these, not against the wrapping FormatError's message.
var (
	// ErrUnknownLocale means the requested locale has no entry in the
	// context's bundle, even after BCP-47 ancestor fallback.
	ErrUnknownLocale = errors.New("cldrfmt: locale not configured")
	// ErrUnknownNumberSystem means the requested numbering system has no
	// digit table for the resolved locale.
	ErrUnknownNumberSystem = errors.New("cldrfmt: number system has no digit table for locale")
	// ErrUnknownCurrency means the requested ISO 4217 code is not in the
	// currency table.
	ErrUnknownCurrency = errors.New("cldrfmt: currency code not recognized")
	// ErrUnknownFormat means patternOrName was a named style with no
	// pattern defined for the resolved locale.
	ErrUnknownFormat = errors.New("cldrfmt: named style not defined for locale")
	// ErrPatternCompile means patternOrName, taken as a literal pattern
	// string (or a named style's bundle-supplied override), failed to
	// parse. Wraps the underlying internal/number.ParsePattern error.
	ErrPatternCompile = errors.New("cldrfmt: pattern failed to compile")
)

// FormatError wraps a failure from Format, recording which stage of the
// pipeline produced it. Unwrap returns the stage's underlying error, which
// wraps one of the sentinels above (for ErrPatternCompile, together with the
// pattern compiler's own error), so errors.Is matches the sentinel.
type FormatError struct {
	Op  string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cldrfmt: %s: %v", e.Op, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &FormatError{Op: op, Err: err}
}
