package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlast/pkg/utils"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// UnexpectedToken means a token matched no grammar alternative at its position.
	UnexpectedToken ErrorKind = iota + 1
	// UnexpectedEndOfInput means the input ended inside a construct.
	UnexpectedEndOfInput
	// InvalidLiteralFormat means a literal had a valid shape but no valid value, such as
	// an integer that overflows 64 bits or a negative LIMIT.
	InvalidLiteralFormat
	// ReservedWordUsedAsIdentifier means a reserved word appeared as a bare identifier.
	ReservedWordUsedAsIdentifier
	// NestingTooDeep means parentheses and prefix operators nest beyond the configured limit.
	NestingTooDeep
	// ColumnCountMismatch means an INSERT row does not match its column list.
	ColumnCountMismatch
	// DuplicateAssignment means an UPDATE assigns the same column twice.
	DuplicateAssignment
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case InvalidLiteralFormat:
		return "invalid literal format"
	case ReservedWordUsedAsIdentifier:
		return "reserved word used as identifier"
	case NestingTooDeep:
		return "nesting too deep"
	case ColumnCountMismatch:
		return "column count mismatch"
	case DuplicateAssignment:
		return "duplicate assignment"
	default:
		return "unknown"
	}
}

// Error is a parse failure at a position in the input. Offset is in bytes; Line and
// Column are 1-based.
type Error struct {
	Kind    ErrorKind
	Message string
	Offset  int
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// IsKind reports whether err is, or wraps, a parse Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Kind == kind
}

func newError(kind ErrorKind, pos lexer.Position, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Offset:  pos.Offset,
		Line:    pos.Line,
		Column:  pos.Column,
	}
}

func reservedWordError(pos lexer.Position, word string) *Error {
	return newError(ReservedWordUsedAsIdentifier, pos,
		"reserved word %q cannot be used as an identifier; quote it as %s", word, utils.Backtick(word))
}

// classify converts lexer and grammar failures into an *Error.
func classify(err error) error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}

	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return newError(UnexpectedToken, lexErr.Pos, "%s", lexErr.Msg)
	}

	var tokErr *participle.UnexpectedTokenError
	if errors.As(err, &tokErr) {
		if tokErr.Unexpected.EOF() {
			return newError(UnexpectedEndOfInput, tokErr.Unexpected.Pos, "%s", eofMessage(tokErr))
		}

		return newError(UnexpectedToken, tokErr.Unexpected.Pos, "%s", tokErr.Message())
	}

	var grammarErr participle.Error
	if errors.As(err, &grammarErr) {
		return newError(UnexpectedToken, grammarErr.Position(), "%s", grammarErr.Message())
	}

	return errors.Wrap(err, "failed to parse SQL")
}

func eofMessage(err *participle.UnexpectedTokenError) string {
	msg := err.Message()
	if i := strings.Index(msg, " (expected "); i >= 0 {
		return "unexpected end of input" + msg[i:]
	}

	return "unexpected end of input"
}
