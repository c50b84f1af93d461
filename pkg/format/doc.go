// Package format provides well-formatted SQL output for parsed statements.
//
// This package takes ast statements and generates clean, readable SQL with consistent
// formatting, proper indentation, and standardized styling. It separates formatting
// concerns from parsing.
//
// Key features:
//   - One clause per line
//   - Multi-column projections, SET lists and VALUES rows indented one per line
//   - Joins on their own line, subqueries indented inside their parentheses
//   - Configurable keyword casing and identifier quoting
//   - Output always parses back to an equal syntax tree
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//
//	// Object-oriented API with custom options
//	formatter := format.New(format.FormatterOptions{
//		IndentSize:          2,
//		UppercaseKeywords:   false,
//		BacktickIdentifiers: true,
//	})
//
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, statements...)
//
//	// Functional API
//	stmt, _ := parser.ParseString("select a, count(b) from t group by a")
//	err := format.Format(os.Stdout, format.Defaults, stmt)
//
// Output:
//
//	SELECT
//	    a,
//	    COUNT(b)
//	FROM t
//	GROUP BY a;
package format
