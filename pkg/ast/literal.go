package ast

import (
	"strconv"
	"strings"
)

type (
	// Literal is a constant value whose variant is chosen by its lexical shape.
	Literal interface {
		Expression
		literalNode()
	}

	// NullLiteral is the NULL keyword.
	NullLiteral struct{}

	// StringLiteral is a quoted string with its delimiters removed and escapes resolved.
	StringLiteral struct {
		Value string
	}

	// IntegerLiteral is an unsigned integer. Digit separators ("1_000") are not kept.
	IntegerLiteral struct {
		Value uint64
	}

	// FloatLiteral is an unsigned floating point number.
	FloatLiteral struct {
		Value float64
	}

	// DateLiteral is a YYYY-MM-DD date kept exactly as written. It is not validated as a
	// calendar date.
	DateLiteral struct {
		Value string
	}
)

func (*NullLiteral) node()           {}
func (*NullLiteral) expressionNode() {}
func (*NullLiteral) literalNode()    {}

func (*StringLiteral) node()           {}
func (*StringLiteral) expressionNode() {}
func (*StringLiteral) literalNode()    {}

func (*IntegerLiteral) node()           {}
func (*IntegerLiteral) expressionNode() {}
func (*IntegerLiteral) literalNode()    {}

func (*FloatLiteral) node()           {}
func (*FloatLiteral) expressionNode() {}
func (*FloatLiteral) literalNode()    {}

func (*DateLiteral) node()           {}
func (*DateLiteral) expressionNode() {}
func (*DateLiteral) literalNode()    {}

func (*NullLiteral) String() string { return "NULL" }

var stringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func (s *StringLiteral) String() string {
	return "'" + stringEscaper.Replace(s.Value) + "'"
}

func (i *IntegerLiteral) String() string { return strconv.FormatUint(i.Value, 10) }

func (f *FloatLiteral) String() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		// keep it a float when read back
		s += ".0"
	}

	return s
}

func (d *DateLiteral) String() string { return d.Value }
