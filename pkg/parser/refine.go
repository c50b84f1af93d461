package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlast/pkg/keywords"
	"github.com/pseudomuto/sqlast/pkg/utils"
)

var (
	keywordType = sqlLexer.Symbols()["Keyword"]

	// operandTypes are the token types that are complete operands on their own.
	operandTypes = map[lexer.TokenType]bool{
		sqlLexer.Symbols()["Ident"]:       true,
		sqlLexer.Symbols()["QuotedIdent"]: true,
		sqlLexer.Symbols()["Number"]:      true,
		sqlLexer.Symbols()["Date"]:        true,
		sqlLexer.Symbols()["String"]:      true,
	}
)

// refine sharpens a grammar error using the significant tokens of the input.
//
// An operator suffix that fails ("a = )", "a IN ()") is backtracked out of by the
// grammar, which then reports an earlier token. Such errors are moved to the token where
// the operand was expected. A reserved keyword that the grammar rejected is reported as
// ReservedWordUsedAsIdentifier when an identifier is accepted in its place.
//
// Both rewrites are confirmed by parsing a patched copy of the input: the operand is
// filled in, or the keyword quoted, and the patched parse must get past that point.
func refine[P any](p *participle.Parser[P], input string, tokens []lexer.Token, err error) error {
	var perr *Error
	if !errors.As(err, &perr) {
		return err
	}

	for _, g := range gaps(tokens) {
		if g.next.Pos.Offset <= perr.Offset {
			continue
		}

		at := g.next.Pos.Offset
		fill := " " + g.filler + " "
		if parsesPast(p, input[:at]+fill+input[at:], at+len(fill)-1) {
			return unexpected(g.next, g.expected)
		}
	}

	for _, t := range tokens {
		if t.Pos.Offset < perr.Offset || t.Type != keywordType || !keywords.IsReserved(t.Value) {
			continue
		}

		at := t.Pos.Offset
		if parsesPast(p, input[:at]+utils.Backtick(t.Value)+input[at+len(t.Value):], at) {
			return reservedWordError(t.Pos, t.Value)
		}

		break
	}

	return err
}

// gap is a place where an operator suffix is missing its operand.
type gap struct {
	// next is the token found where the operand should start.
	next     lexer.Token
	expected string
	// filler completes the suffix when inserted before next.
	filler string
}

// gaps finds every binary operator and IN list in tokens that is missing its operand.
func gaps(tokens []lexer.Token) []gap {
	var out []gap

	afterOperand := false
	for i, t := range tokens {
		if t.EOF() {
			break
		}

		switch {
		case isKeyword(t, "IN"):
			if next := tokens[i+1]; !isPunct(next, "(") {
				out = append(out, gap{next: next, expected: `"("`, filler: "(0)"})
			} else if list := tokens[i+2]; !startsOperand(list) {
				out = append(out, gap{next: list, expected: "operand", filler: "0"})
			}

			afterOperand = false
		case afterOperand && isBinaryOp(t):
			if next := tokens[i+1]; !startsOperand(next) {
				out = append(out, gap{next: next, expected: "operand", filler: "0"})
			}

			afterOperand = false
		default:
			afterOperand = endsOperand(t)
		}
	}

	return out
}

// parsesPast reports whether input parses, or fails only beyond offset.
func parsesPast[P any](p *participle.Parser[P], input string, offset int) bool {
	_, err := p.ParseString("", input)
	if err == nil {
		return true
	}

	var perr *Error
	return errors.As(classify(err), &perr) && perr.Offset > offset
}

func unexpected(t lexer.Token, expected string) *Error {
	if t.EOF() {
		return newError(UnexpectedEndOfInput, t.Pos, "unexpected end of input (expected %s)", expected)
	}

	return newError(UnexpectedToken, t.Pos, "unexpected token %q (expected %s)", t.Value, expected)
}

func isKeyword(t lexer.Token, word string) bool {
	return t.Type == keywordType && strings.EqualFold(t.Value, word)
}

func isPunct(t lexer.Token, value string) bool {
	return t.Type == punctType && t.Value == value
}

func isBinaryOp(t lexer.Token) bool {
	if t.Type != punctType {
		return false
	}

	switch t.Value {
	case "+", "*", ">", "<", "=":
		return true
	default:
		return false
	}
}

// startsOperand reports whether an operand can begin with t.
func startsOperand(t lexer.Token) bool {
	if operandTypes[t.Type] || isKeyword(t, "NULL") {
		return true
	}

	if t.Type != punctType {
		return false
	}

	switch t.Value {
	case "(", "!", "-", "*":
		return true
	default:
		return false
	}
}

// endsOperand reports whether t completes an operand. It is only consulted for tokens
// that are not binary operators, so a "*" seen here is a wildcard.
func endsOperand(t lexer.Token) bool {
	return operandTypes[t.Type] || isKeyword(t, "NULL") || isPunct(t, ")") || isPunct(t, "*")
}
