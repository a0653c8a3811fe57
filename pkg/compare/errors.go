package compare

import "fmt"

// InvalidModeError reports a comparison request that cannot be dispatched:
// block mode without a search-start pattern, or an unrecognized search mode
// or compare method. It is a caller configuration error, never silently
// defaulted.
type InvalidModeError struct {
	Reason string
}

func (e *InvalidModeError) Error() string {
	return "invalid compare request: " + e.Reason
}

// PatternError reports a search or ignore pattern that failed to compile.
// The comparison is aborted; no partial result is produced.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
