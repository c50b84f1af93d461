package parser_test

import (
	"errors"
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlast/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		kind ErrorKind
	}{
		{name: "missing projection", sql: "SELECT FROM", kind: UnexpectedToken},
		{name: "empty input", sql: "", kind: UnexpectedEndOfInput},
		{name: "select only", sql: "SELECT", kind: UnexpectedEndOfInput},
		{name: "dangling where", sql: "SELECT a FROM t WHERE", kind: UnexpectedEndOfInput},
		{name: "dangling operator", sql: "SELECT a + FROM t", kind: UnexpectedToken},
		{name: "unclosed paren", sql: "SELECT (a FROM t", kind: UnexpectedToken},
		{name: "keyword as identifier", sql: "SELECT select FROM t", kind: ReservedWordUsedAsIdentifier},
		{name: "keyword as table", sql: "SELECT a FROM delete", kind: ReservedWordUsedAsIdentifier},
		{name: "keyword as alias", sql: "SELECT a AS exists FROM t", kind: ReservedWordUsedAsIdentifier},
		{name: "reserved keyword out of place", sql: "INSERT INTO t VALUES (1) WHERE", kind: UnexpectedToken},
		{name: "trailing digit separator", sql: "SELECT 1_ FROM t", kind: UnexpectedToken},
		{name: "doubled digit separator", sql: "SELECT 1__0 FROM t", kind: UnexpectedToken},
		{name: "fraction with trailing separator", sql: "SELECT 1.5_ FROM t", kind: UnexpectedToken},
		{name: "reserved word as column", sql: "SELECT rename FROM t", kind: ReservedWordUsedAsIdentifier},
		{name: "reserved word as table", sql: "SELECT a FROM truncate", kind: ReservedWordUsedAsIdentifier},
		{name: "reserved word as alias", sql: "SELECT a AS true FROM t", kind: ReservedWordUsedAsIdentifier},
		{name: "empty quoted identifier", sql: "SELECT `` FROM t", kind: UnexpectedToken},
		{name: "integer overflow", sql: "SELECT 18446744073709551616", kind: InvalidLiteralFormat},
		{name: "negative limit", sql: "SELECT a FROM t LIMIT -1", kind: InvalidLiteralFormat},
		{name: "fractional offset", sql: "SELECT a FROM t LIMIT 1 OFFSET 1.5", kind: InvalidLiteralFormat},
		{name: "join without condition", sql: "SELECT a FROM t JOIN u", kind: UnexpectedEndOfInput},
		{name: "join with misplaced clause", sql: "SELECT a FROM t LEFT JOIN u WHERE a = 1", kind: UnexpectedToken},
		{name: "trailing statement", sql: "SELECT a FROM t; SELECT b FROM u", kind: UnexpectedToken},
		{name: "unknown character", sql: "SELECT # FROM t", kind: UnexpectedToken},
		{name: "chained binary operators", sql: "SELECT a + b + c", kind: UnexpectedToken},
		{name: "insert row too short", sql: "INSERT INTO t (a, b) VALUES (1)", kind: ColumnCountMismatch},
		{name: "insert rows differ", sql: "INSERT INTO t VALUES (1, 2), (3)", kind: ColumnCountMismatch},
		{name: "update assigns twice", sql: "UPDATE t SET a = 1, b = 2, a = 3", kind: DuplicateAssignment},
		{name: "drop without table keyword", sql: "DROP t", kind: UnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stmt, err := ParseString(tt.sql)
			require.Error(t, err)
			require.Nil(t, stmt, "no partial tree on failure")

			var perr *Error
			require.True(t, errors.As(err, &perr), "%T: %v", err, err)
			require.Equal(t, tt.kind, perr.Kind, perr.Error())
			require.True(t, IsKind(err, tt.kind))
		})
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := ParseString("SELECT a,\n  rename FROM t")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, ReservedWordUsedAsIdentifier, perr.Kind)
	require.Equal(t, 2, perr.Line)
	require.Equal(t, 3, perr.Column)
	require.Equal(t, 12, perr.Offset)
	require.Equal(t, "2:3: reserved word \"rename\" cannot be used as an identifier; quote it as `rename`", perr.Error())
}

func TestErrorAtEndOfInput(t *testing.T) {
	sql := "SELECT a FROM t WHERE"
	_, err := ParseString(sql)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnexpectedEndOfInput, perr.Kind)
	require.Equal(t, len(sql), perr.Offset)
	require.True(t, strings.HasPrefix(perr.Message, "unexpected end of input"), perr.Message)
}

func TestErrorPointsInsideNestedConstruct(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		at   string
		kind ErrorKind
	}{
		{
			name: "in list inside subquery",
			sql:  "SELECT a FROM (SELECT b FROM t WHERE a IN (1, 2, 3 4)) AS s",
			at:   "4",
			kind: UnexpectedToken,
		},
		{name: "operator missing operand in parens", sql: "SELECT (a = )", at: ")", kind: UnexpectedToken},
		{name: "operator missing operand deeply nested", sql: "SELECT ((((a + )))) FROM t", at: ")", kind: UnexpectedToken},
		{name: "operator missing operand at top level", sql: "SELECT a + FROM t", at: "FROM", kind: UnexpectedToken},
		{name: "operator missing operand in where", sql: "SELECT a FROM t WHERE (b < )", at: ")", kind: UnexpectedToken},
		{name: "empty in list", sql: "SELECT a FROM t WHERE a IN ()", at: ")", kind: UnexpectedToken},
		{name: "in without list", sql: "SELECT a FROM t WHERE a NOT IN b", at: "b", kind: UnexpectedToken},
		{name: "operator at end of input", sql: "SELECT (a =", at: "", kind: UnexpectedEndOfInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseString(tt.sql)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tt.kind, perr.Kind, perr.Error())

			want := len(tt.sql)
			if tt.at != "" {
				want = strings.Index(tt.sql, tt.at)
			}
			require.Equal(t, want, perr.Offset, perr.Error())
		})
	}
}

func TestMaxDepth(t *testing.T) {
	deep := "SELECT " + strings.Repeat("(", 200) + "1" + strings.Repeat(")", 200)
	_, err := ParseString(deep)
	require.True(t, IsKind(err, NestingTooDeep), "%v", err)

	_, err = ParseString(deep, WithMaxDepth(500))
	require.NoError(t, err)

	_, err = ParseString("SELECT ((1))", WithMaxDepth(2))
	require.NoError(t, err)

	_, err = ParseString("SELECT (((1)))", WithMaxDepth(2))
	require.True(t, IsKind(err, NestingTooDeep), "%v", err)

	_, err = ParseString("SELECT "+strings.Repeat("- ", 10)+"a", WithMaxDepth(5))
	require.True(t, IsKind(err, NestingTooDeep), "%v", err)

	nested := "SELECT a FROM " + strings.Repeat("(SELECT a FROM ", 10) + "t" + strings.Repeat(")", 10)
	_, err = ParseString(nested, WithMaxDepth(5))
	require.True(t, IsKind(err, NestingTooDeep), "%v", err)

	_, err = ParseString(nested)
	require.NoError(t, err)
}

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "unexpected token", UnexpectedToken.String())
	require.Equal(t, "nesting too deep", NestingTooDeep.String())
	require.Equal(t, "unknown", ErrorKind(0).String())
}
