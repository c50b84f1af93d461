package parser

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/sqlast/pkg/keywords"
)

var (
	// sqlLexer tokenizes SQL text. Rule order matters: dates must be tried before
	// numbers, and keywords before identifiers.
	sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `'([^'\\]|\\.)*'|"([^"\\]|\\.)*"`},
		{Name: "QuotedIdent", Pattern: "`([^`]|``)*`"},
		{Name: "Date", Pattern: `\d{4}-\d{2}-\d{2}`},
		{Name: "Number", Pattern: `\d+(_\d+)*(\.\d+(_\d+)*)?([eE][+-]?\d+)?`},
		{Name: "Keyword", Pattern: keywordPattern()},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[(),.;=+*<>!\-]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	elided = []string{"Comment", "MultilineComment", "Whitespace"}
)

// keywordPattern matches any grammar keyword as a whole word, ignoring case.
func keywordPattern() string {
	words := keywords.Grammar()
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}

	return `(?i)\b(?:` + strings.Join(words, "|") + `)\b`
}
