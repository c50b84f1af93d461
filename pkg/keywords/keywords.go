// Package keywords holds the static keyword and reserved-word tables shared by the
// lexer, the AST renderer, and the formatter.
//
// Both tables are built once at package initialization and never modified, so they
// are safe for concurrent use without locking.
package keywords

import (
	"regexp"
	"strings"
)

var (
	// grammar lists the words the lexer recognizes as keywords rather than identifiers.
	// They are matched case-insensitively.
	grammar = []string{
		"SELECT", "DISTINCT", "FROM", "WHERE", "GROUP", "BY", "HAVING", "ORDER", "ASC",
		"DESC", "LIMIT", "OFFSET", "AS", "JOIN", "INNER", "LEFT", "RIGHT", "FULL", "OUTER",
		"CROSS", "ON", "USING", "IN", "NOT", "OR", "NULL", "INSERT", "INTO", "VALUES",
		"UPDATE", "SET", "DELETE", "DROP", "TABLE", "IF", "EXISTS",
	}

	// reserved words can never be used as a bare identifier.
	reserved = []string{
		"create", "select", "drop", "rename", "case", "else", "if", "instanceof", "where",
		"truncate", "merge", "new", "escape", "raw", "fetch", "insert", "while", "const",
		"alter", "exists", "with", "for", "switch", "yield", "throw", "delete", "index",
		"true", "false", "let",
	}

	grammarSet  = toSet(grammar, strings.ToUpper)
	reservedSet = toSet(reserved, strings.ToLower)

	bareIdent = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// Grammar returns a copy of the grammar keyword list in upper case.
func Grammar() []string {
	out := make([]string, len(grammar))
	copy(out, grammar)
	return out
}

// IsKeyword reports whether word is a grammar keyword, ignoring case.
func IsKeyword(word string) bool {
	_, ok := grammarSet[strings.ToUpper(word)]
	return ok
}

// IsReserved reports whether word is a reserved word, ignoring case.
func IsReserved(word string) bool {
	_, ok := reservedSet[strings.ToLower(word)]
	return ok
}

// NeedsQuoting reports whether name must be backtick-quoted to be read back as the
// same identifier: it is not a valid bare identifier, or it collides with a keyword or
// reserved word.
func NeedsQuoting(name string) bool {
	return !bareIdent.MatchString(name) || IsKeyword(name) || IsReserved(name)
}

func toSet(words []string, fold func(string) string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[fold(w)] = struct{}{}
	}
	return set
}
