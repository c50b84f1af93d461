package utils

import (
	"strings"

	"github.com/pseudomuto/sqlast/pkg/keywords"
)

// Backtick wraps an identifier in backticks, doubling any backtick it contains.
//
// Examples:
//   - "users" -> "`users`"
//   - "first name" -> "`first name`"
//   - "a`b" -> "`a``b`"
func Backtick(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// BacktickIfNeeded quotes name only when it would not otherwise read back as the same
// identifier: it is not a bare identifier, or it is a keyword or reserved word.
//
// Examples:
//   - "users" -> "users"
//   - "order" -> "`order`"
//   - "create" -> "`create`"
func BacktickIfNeeded(name string) string {
	if keywords.NeedsQuoting(name) {
		return Backtick(name)
	}

	return name
}

// IsBackticked checks if a string is a single backtick-quoted identifier.
//
// Examples:
//   - "`table`" -> true
//   - "`a``b`" -> true
//   - "table" -> false
//   - "`db`.`table`" -> false (qualified name, not a single backticked identifier)
func IsBackticked(s string) bool {
	if len(s) < 2 || s[0] != '`' || s[len(s)-1] != '`' {
		return false
	}

	inner := strings.ReplaceAll(s[1:len(s)-1], "``", "")
	return !strings.Contains(inner, "`")
}

// StripBackticks removes the delimiters of a backticked identifier and collapses doubled
// backticks. Strings that are not backticked are returned unchanged.
//
// Examples:
//   - "`table`" -> "table"
//   - "`a``b`" -> "a`b"
//   - "table" -> "table"
func StripBackticks(s string) string {
	if !IsBackticked(s) {
		return s
	}

	return strings.ReplaceAll(s[1:len(s)-1], "``", "`")
}
