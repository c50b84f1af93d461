// Package parser turns SQL statement text into the typed syntax tree of package ast.
//
// It is built on github.com/alecthomas/participle/v2. Parsing happens in three steps:
//
//   - the lexer splits the input into tokens, discarding whitespace and comments and
//     recognizing keywords case-insensitively
//   - a depth guard scans the tokens and rejects input whose parentheses and prefix
//     operators nest beyond the configured limit, so the grammar never recurses without
//     bound
//   - the participle grammar parses the tokens, and the result is converted into ast
//     nodes, enforcing the rules a grammar cannot express (reserved words, literal
//     ranges, required join conditions, INSERT row widths, UPDATE assignments)
//
// The grammar avoids ordered choice between overlapping alternatives. An expression is
// always an operand followed by optional IN, operator and alias suffixes, so "a + b"
// can never be truncated to "a":
//
//	expression = operand (inRest | binaryRest)? ("AS" ident)?
//	operand    = aggregate | ("!" | "-") operand | "(" expression ")" | literal | columnRef
//
// Basic usage:
//
//	stmt, err := parser.ParseString("SELECT a, b FROM t JOIN u ON a = b")
//	if err != nil {
//		var perr *parser.Error
//		if errors.As(err, &perr) {
//			fmt.Printf("%d:%d: %s\n", perr.Line, perr.Column, perr.Message)
//		}
//		return err
//	}
//
//	// Parse individual productions
//	expr, err := parser.ParseExpression("COUNT(a) AS n")
//	col, err := parser.ParseColumn("users.id")
//
// All functions are safe for concurrent use. The participle parsers and keyword tables
// are built once at package initialization and never modified.
package parser
