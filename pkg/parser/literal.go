package parser

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/sqlast/pkg/ast"
)

// parseNumber classifies a numeric token. Digit separators are removed first; text
// without a fraction or exponent must fit in an unsigned 64-bit integer.
func parseNumber(text string, pos lexer.Position) (ast.Literal, error) {
	clean := strings.ReplaceAll(text, "_", "")

	if !strings.ContainsAny(clean, ".eE") {
		v, err := strconv.ParseUint(clean, 10, 64)
		if err != nil {
			return nil, newError(InvalidLiteralFormat, pos, "integer literal %q out of range", text)
		}

		return &ast.IntegerLiteral{Value: v}, nil
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil, newError(InvalidLiteralFormat, pos, "invalid numeric literal %q", text)
	}

	return &ast.FloatLiteral{Value: v}, nil
}

// unquoteString strips the delimiters of a string token and resolves backslash escapes:
// a backslash followed by any character stands for that character.
func unquoteString(text string) string {
	inner := text[1 : len(text)-1]
	if !strings.Contains(inner, `\`) {
		return inner
	}

	var sb strings.Builder
	sb.Grow(len(inner))

	escaped := false
	for _, r := range inner {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		sb.WriteRune(r)
	}

	return sb.String()
}

// parseCount reads a LIMIT or OFFSET value.
func parseCount(clause string, c *count) (uint64, error) {
	if c.Negative {
		return 0, newError(InvalidLiteralFormat, c.Pos, "%s must be a non-negative integer, got -%s", clause, c.Value)
	}

	v, err := strconv.ParseUint(strings.ReplaceAll(c.Value, "_", ""), 10, 64)
	if err != nil {
		return 0, newError(InvalidLiteralFormat, c.Pos, "%s must be a non-negative integer, got %s", clause, c.Value)
	}

	return v, nil
}
