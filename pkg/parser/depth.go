package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/sqlast/pkg/consts"
)

var (
	punctType = sqlLexer.Symbols()["Punct"]
	elideSet  = elidedTypes()
)

func elidedTypes() map[lexer.TokenType]bool {
	symbols := sqlLexer.Symbols()
	out := make(map[lexer.TokenType]bool, len(elided))
	for _, name := range elided {
		out[symbols[name]] = true
	}

	return out
}

// significant drops whitespace and comments, keeping the trailing EOF token.
func significant(tokens []lexer.Token) []lexer.Token {
	out := make([]lexer.Token, 0, len(tokens))
	for _, t := range tokens {
		if !elideSet[t.Type] {
			out = append(out, t)
		}
	}

	return out
}

// checkDepth bounds how deeply the grammar can recurse before it starts. Each open
// parenthesis adds a level, as does each prefix operator in a consecutive run ("- - !a").
// A limit of zero or less uses consts.DefaultMaxDepth.
func checkDepth(tokens []lexer.Token, limit int) error {
	if limit <= 0 {
		limit = consts.DefaultMaxDepth
	}

	parens, run := 0, 0
	for _, t := range tokens {
		if t.Type != punctType {
			run = 0
			continue
		}

		switch t.Value {
		case "(":
			parens++
			run = 0
		case ")":
			if parens > 0 {
				parens--
			}
			run = 0
		case "!", "-":
			run++
		default:
			run = 0
		}

		if parens+run > limit {
			return newError(NestingTooDeep, t.Pos, "maximum nesting depth of %d exceeded", limit)
		}
	}

	return nil
}
