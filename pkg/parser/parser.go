package parser

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlast/pkg/ast"
	"github.com/pseudomuto/sqlast/pkg/consts"
)

var (
	// statementParser is the participle parser for a complete statement. It is built once
	// and is safe for concurrent use.
	statementParser = participle.MustBuild[root](
		participle.Lexer(sqlLexer),
		participle.Elide(elided...),
		participle.CaseInsensitive("Keyword", "Ident"),
		participle.UseLookahead(4),
	)

	selectParser     = mustProduction[selectStatement]()
	expressionParser = mustProduction[expression]()
	identParser      = mustProduction[ident]()
	literalParser    = mustProduction[literal]()
	columnParser     = mustProduction[columnName]()
	tableParser      = mustProduction[tableName]()
)

func mustProduction[P any]() *participle.Parser[P] {
	p, err := participle.ParserForProduction[P](statementParser)
	if err != nil {
		panic(err)
	}

	return p
}

type (
	// Option configures a parse call.
	Option func(*options)

	options struct {
		maxDepth int
	}
)

// WithMaxDepth limits how deeply parentheses and prefix operators may nest. Input that
// exceeds the limit fails with NestingTooDeep before any grammar rule runs. Values of
// zero or less select the default of consts.DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// Parse reads a single SQL statement from r and returns its syntax tree.
//
// Example usage:
//
//	f, err := os.Open("query.sql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	stmt, err := parser.Parse(f)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	if sel, ok := stmt.(*ast.SelectStatement); ok {
//		fmt.Println(len(sel.Body.Projection), "columns")
//	}
//
// Parse errors are returned as *Error; failures reading r are wrapped.
func Parse(r io.Reader, opts ...Option) (ast.Statement, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SQL")
	}

	return ParseString(string(data), opts...)
}

// ParseString parses a single SQL statement, optionally terminated by a semicolon.
//
// Supported statements are SELECT, INSERT INTO ... VALUES, UPDATE ... SET, DELETE FROM
// and DROP TABLE. Keywords are case-insensitive, comments may appear anywhere
// whitespace can, and identifiers that collide with keywords or reserved words can be
// written in backticks:
//
//	stmt, err := parser.ParseString(`
//		SELECT users.name, COUNT(*) AS total   -- per user
//		FROM users
//		LEFT JOIN orders USING (user_id)
//		WHERE users.active = 1
//		GROUP BY users.name
//		ORDER BY total DESC
//		LIMIT 10
//	`)
//
// On failure the returned error is an *Error whose Kind classifies the problem and
// whose position points at the furthest point the parser reached. A failed parse never
// returns a partial tree.
func ParseString(sql string, opts ...Option) (ast.Statement, error) {
	return run(statementParser, sql, opts, func(b *builder, tree *root) ast.Statement {
		return b.statement(tree.Statement)
	})
}

// ParseSelect parses a single SELECT statement with no terminator.
func ParseSelect(sql string, opts ...Option) (*ast.SelectStatement, error) {
	return run(selectParser, sql, opts, (*builder).selectStatement)
}

// ParseExpression parses a single expression such as "COUNT(a) AS n" or "a NOT IN (1, 2)".
func ParseExpression(sql string, opts ...Option) (ast.Expression, error) {
	return run(expressionParser, sql, opts, (*builder).expression)
}

// ParseIdentifier parses a bare or backticked identifier.
func ParseIdentifier(sql string) (ast.Identifier, error) {
	return run(identParser, sql, nil, (*builder).identifier)
}

// ParseLiteral parses a NULL, date, number or string literal.
func ParseLiteral(sql string) (ast.Literal, error) {
	return run(literalParser, sql, nil, (*builder).literal)
}

// ParseColumn parses a column name, "col" or "tbl.col".
func ParseColumn(sql string) (ast.Column, error) {
	return run(columnParser, sql, nil, (*builder).column)
}

// ParseTable parses a table name, "tbl" or "db.tbl".
func ParseTable(sql string) (ast.Table, error) {
	return run(tableParser, sql, nil, (*builder).table)
}

// run lexes input, applies the depth guard, parses it with p, and builds the result.
// Grammar errors are refined against the tokens. The zero value of T is returned with
// any error.
func run[P, T any](p *participle.Parser[P], input string, opts []Option, build func(*builder, *P) T) (T, error) {
	var zero T

	o := options{maxDepth: consts.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}

	tokens, err := p.Lex("", strings.NewReader(input))
	if err != nil {
		return zero, classify(err)
	}

	tokens = significant(tokens)
	if err := checkDepth(tokens, o.maxDepth); err != nil {
		return zero, err
	}

	tree, err := p.ParseString("", input)
	if err != nil {
		return zero, refine(p, input, tokens, classify(err))
	}

	b := &builder{tokens: tokens}
	out := build(b, tree)
	if b.err != nil {
		return zero, b.err
	}

	return out, nil
}
