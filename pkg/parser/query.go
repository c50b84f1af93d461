package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// selectStatement is a SELECT query, possibly nested inside a FROM clause.
	selectStatement struct {
		Distinct   bool          `parser:"'SELECT' @'DISTINCT'?"`
		Projection []*expression `parser:"@@ (',' @@)*"`
		From       *tableRef     `parser:"('FROM' @@)?"`
		Where      *expression   `parser:"('WHERE' @@)?"`
		GroupBy    []*expression `parser:"('GROUP' 'BY' @@ (',' @@)*)?"`
		Having     *expression   `parser:"('HAVING' @@)?"`
		OrderBy    []*orderBy    `parser:"('ORDER' 'BY' @@ (',' @@)*)?"`
		Limit      *count        `parser:"('LIMIT' @@)?"`
		Offset     *count        `parser:"('OFFSET' @@)?"`
	}

	// orderBy is one ORDER BY group. The expression list is greedy, so "a, b DESC" is a
	// single group.
	orderBy struct {
		Exprs     []*expression `parser:"@@ (',' @@)*"`
		Direction string        `parser:"@('ASC' | 'DESC')?"`
	}

	// count is a LIMIT or OFFSET operand. Anything other than a non-negative integer is
	// rejected when the tree is built so the error names the literal.
	count struct {
		Pos      lexer.Position
		Negative bool   `parser:"@'-'?"`
		Value    string `parser:"@(Number | Date | String)"`
	}

	// tableRef is a primary table reference followed by any number of joins, folded
	// left-deep when the tree is built.
	tableRef struct {
		Primary *tablePrimary `parser:"@@"`
		Joins   []*join       `parser:"@@*"`
	}

	tablePrimary struct {
		Subquery *subquery  `parser:"  @@"`
		Nested   *tableRef  `parser:"| '(' @@ ')'"`
		Table    *tableName `parser:"| @@"`
	}

	subquery struct {
		Select *selectStatement `parser:"'(' @@ ')'"`
		Alias  *ident           `parser:"('AS'? @@)?"`
	}

	// join is "[INNER|CROSS|LEFT|RIGHT|FULL [OUTER]] JOIN primary [USING ... | ON ...]".
	// EndPos locates a missing condition.
	join struct {
		EndPos lexer.Position
		Kind   string        `parser:"(@('INNER' | 'CROSS') | @('LEFT' | 'RIGHT' | 'FULL') 'OUTER'?)? 'JOIN'"`
		Right  *tablePrimary `parser:"@@"`
		Using  []*ident      `parser:"( 'USING' ( '(' @@ (',' @@)* ')' | @@ (',' @@)* )"`
		On     []*expression `parser:"| 'ON' @@ (',' @@)* )?"`
	}

	tableName struct {
		First  *ident `parser:"@@"`
		Second *ident `parser:"('.' @@)?"`
	}
)
