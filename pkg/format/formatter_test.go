package format_test

import (
	"bytes"
	"testing"

	"github.com/pseudomuto/sqlast/pkg/ast"
	. "github.com/pseudomuto/sqlast/pkg/format"
	"github.com/pseudomuto/sqlast/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Options(t *testing.T) {
	stmt, err := parser.ParseString("SELECT a, COUNT(*) AS n FROM db.t JOIN u USING (id) WHERE a > 1 ORDER BY n DESC")
	require.NoError(t, err)

	t.Run("lowercase keywords", func(t *testing.T) {
		options := FormatterOptions{
			IndentSize:        4,
			UppercaseKeywords: false,
		}

		var buf bytes.Buffer
		require.NoError(t, Format(&buf, options, stmt))
		expected := "select\n" +
			"    a,\n" +
			"    count(*) as n\n" +
			"from db.t\n" +
			"inner join u using (id)\n" +
			"where a > 1\n" +
			"order by n desc;"
		require.Equal(t, expected, buf.String())
	})

	t.Run("custom indent with backticks", func(t *testing.T) {
		options := FormatterOptions{
			IndentSize:          2,
			UppercaseKeywords:   true,
			BacktickIdentifiers: true,
		}

		var buf bytes.Buffer
		require.NoError(t, New(options).Format(&buf, stmt))
		expected := "SELECT\n" +
			"  `a`,\n" +
			"  COUNT(*) AS `n`\n" +
			"FROM `db`.`t`\n" +
			"INNER JOIN `u` USING (`id`)\n" +
			"WHERE `a` > 1\n" +
			"ORDER BY `n` DESC;"
		require.Equal(t, expected, buf.String())
	})

	t.Run("zero indent uses default", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Format(&buf, FormatterOptions{UppercaseKeywords: true}, stmt))
		require.Contains(t, buf.String(), "\n    a,\n")
	})
}

func TestFormatter_MultipleStatements(t *testing.T) {
	drop, err := parser.ParseString("drop table t")
	require.NoError(t, err)

	del, err := parser.ParseString("delete from u")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, Defaults, drop, nil, del))
	require.Equal(t, "DROP TABLE t;\n\nDELETE FROM u;", buf.String())
}

func TestFormatter_EmptyInput(t *testing.T) {
	var buf1 bytes.Buffer
	require.NoError(t, Format(&buf1, Defaults))
	require.Empty(t, buf1.String())

	var buf2 bytes.Buffer
	require.NoError(t, Format(&buf2, Defaults, nil))
	require.Empty(t, buf2.String())
}

type unsupported struct{ ast.Statement }

func TestFormatter_UnsupportedStatement(t *testing.T) {
	var buf bytes.Buffer
	err := Format(&buf, Defaults, unsupported{})
	require.ErrorContains(t, err, "unsupported statement type")
	require.Empty(t, buf.String())
}

func TestFormatter_RoundTrip(t *testing.T) {
	queries := []string{
		"SELECT * FROM t",
		"SELECT DISTINCT a, COUNT(*) AS n FROM db.t WHERE a NOT IN (1, 2.5, 'x', NULL, 2024-01-13) GROUP BY a HAVING COUNT(*) > 1",
		"SELECT -a + b, !(a = 1), -(-a), (a + b) * 2 FROM t",
		"SELECT a FROM t ORDER BY a, b ASC, c LIMIT 1 OFFSET 2",
		"SELECT a FROM (SELECT b FROM (SELECT c FROM t) AS inner_q) AS sub LEFT JOIN (u CROSS JOIN v) USING (id)",
		"SELECT * FROM (a JOIN b ON a.id = b.id) JOIN c ON b.id = c.id",
		"SELECT `select`, `a``b` FROM `order`",
		"INSERT INTO t VALUES (1)",
		"UPDATE t SET a = 1",
		"DELETE FROM t WHERE a OR IN (1)",
	}

	variants := map[string]FormatterOptions{
		"defaults":  Defaults,
		"lowercase": {IndentSize: 2},
		"backticks": {IndentSize: 4, UppercaseKeywords: true, BacktickIdentifiers: true},
	}

	for name, options := range variants {
		t.Run(name, func(t *testing.T) {
			for _, sql := range queries {
				stmt, err := parser.ParseString(sql)
				require.NoError(t, err, sql)

				var buf bytes.Buffer
				require.NoError(t, Format(&buf, options, stmt))

				reparsed, err := parser.ParseString(buf.String())
				require.NoError(t, err, buf.String())
				require.True(t, ast.EqualStatements(stmt, reparsed), "%s\n%s", sql, buf.String())
			}
		})
	}
}
