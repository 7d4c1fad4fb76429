package mcgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeInvalidArity reports a wrong number of positional arguments, or a
	// wrong-length sequence where a fixed arity is required.
	CodeInvalidArity = "invalid_arity"
	// CodeUnknownShape reports an input whose runtime shape matches none of a
	// normalizer's accepted forms.
	CodeUnknownShape = "unknown_shape"
	// CodeAbsentValue reports an absent marker reaching a context that
	// structurally forbids it (e.g. a top-level document that is itself nil).
	CodeAbsentValue = "absent_value"
	// CodeParseError reports undecodable source input (manifest layer).
	CodeParseError = "parse_error"
	// CodeUnknownKind reports a manifest document with an unrecognized kind.
	CodeUnknownKind = "unknown_kind"
)

// Issue represents a single normalization failure.
type Issue struct {
	Path    string // Normalizer that rejected the input (for example: expand.ItemStack).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// InputFragment is a printable rendering of the offending value. Produced
	// best-effort; may be empty for arity errors.
	InputFragment string
}

// Issues is a collection of normalization errors that implements error.
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
		// e.g. unknown_shape at expand.ItemStack
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
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

// UnknownShapeAt builds the canonical unrecognized-input error for a
// normalizer. The offending value is rendered with spew so nested maps and
// sequences stay readable.
func UnknownShapeAt(at string, v any) Issues {
	return Issues{{
		Path:          at,
		Code:          CodeUnknownShape,
		Message:       fmt.Sprintf("unknown object at %s", at),
		InputFragment: spew.Sprintf("%#v", v),
	}}
}

// InvalidArityAt builds an arity error for a normalizer.
func InvalidArityAt(at, msg string) Issues {
	return Issues{{Path: at, Code: CodeInvalidArity, Message: msg}}
}

// AbsentValueAt builds an invariant-violation error for an absent marker in a
// forbidden position.
func AbsentValueAt(at, msg string) Issues {
	return Issues{{Path: at, Code: CodeAbsentValue, Message: msg}}
}
