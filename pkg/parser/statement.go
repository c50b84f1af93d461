package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// root is the top-level production: exactly one statement with an optional terminator.
	root struct {
		Statement *statement `parser:"@@ ';'?"`
	}

	statement struct {
		Select *selectStatement `parser:"  @@"`
		Insert *insertStatement `parser:"| @@"`
		Update *updateStatement `parser:"| @@"`
		Delete *deleteStatement `parser:"| @@"`
		Drop   *dropStatement   `parser:"| @@"`
	}

	insertStatement struct {
		Table   *tableName    `parser:"'INSERT' 'INTO' @@"`
		Columns []*columnName `parser:"('(' @@ (',' @@)* ')')?"`
		Rows    []*row        `parser:"'VALUES' @@ (',' @@)*"`
	}

	row struct {
		Pos    lexer.Position
		Values []*literal `parser:"'(' @@ (',' @@)* ')'"`
	}

	updateStatement struct {
		Table  *tableName    `parser:"'UPDATE' @@ 'SET'"`
		Fields []*assignment `parser:"@@ (',' @@)*"`
		Where  *expression   `parser:"('WHERE' @@)?"`
	}

	assignment struct {
		Pos    lexer.Position
		Column *columnName `parser:"@@ '='"`
		Value  *expression `parser:"@@"`
	}

	deleteStatement struct {
		Table *tableName  `parser:"'DELETE' 'FROM' @@"`
		Where *expression `parser:"('WHERE' @@)?"`
	}

	dropStatement struct {
		IfExists bool       `parser:"'DROP' 'TABLE' @('IF' 'EXISTS')?"`
		Table    *tableName `parser:"@@"`
	}
)
