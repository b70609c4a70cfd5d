package bemu

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTypeMismatch = "type_mismatch"
	CodeOutOfRange   = "out_of_range"
	CodeNotFound     = "not_found"
	CodeOverflow     = "overflow"
	CodeUnsupported  = "unsupported"
	CodeInvalidValue = "invalid_value"
	// Decoding passes (codec package)
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTruncated    = "truncated"
)

// Sentinel errors matched by errors.Is against Issues carrying the
// corresponding code.
var (
	ErrTypeMismatch = errors.New("bemu: type mismatch")
	ErrOutOfRange   = errors.New("bemu: index out of range")
	ErrNotFound     = errors.New("bemu: element not found")
	ErrOverflow     = errors.New("bemu: value overflows requested type")
	ErrUnsupported  = errors.New("bemu: unsupported operation")
)

var sentinels = map[string]error{
	CodeTypeMismatch: ErrTypeMismatch,
	CodeOutOfRange:   ErrOutOfRange,
	CodeNotFound:     ErrNotFound,
	CodeOverflow:     ErrOverflow,
	CodeUnsupported:  ErrUnsupported,
}

// Issue represents a single failed access or decode entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /securityData/fieldExceptions/0).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"index":5, "len":1})
	// for i18n and diagnostics.
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. not_found at /securityData/fieldData
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue carries the code behind the target sentinel.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if s, ok := sentinels[it.Code]; ok && s == target {
			return true
		}
	}
	return false
}

// Unwrap exposes the underlying causes so errors.Is/As can reach them.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
