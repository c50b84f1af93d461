package parser

import "github.com/alecthomas/participle/v2/lexer"

// Expressions are parsed as a mandatory operand followed by optional suffixes. There is
// no ordered choice between "bare atom" and "atom with operator": the operator, if any,
// is always consumed.
//
//	expression = operand (inRest | binaryRest)? ("AS" ident)?
//	operand    = function | unary | "(" expression ")" | literal | columnRef
type (
	expression struct {
		Operand *operand    `parser:"@@"`
		In      *inRest     `parser:"( @@"`
		Binary  *binaryRest `parser:"| @@ )?"`
		Alias   *ident      `parser:"('AS' @@)?"`
	}

	operand struct {
		Function *function   `parser:"  @@"`
		Unary    *unary      `parser:"| @@"`
		Paren    *expression `parser:"| '(' @@ ')'"`
		Literal  *literal    `parser:"| @@"`
		Column   *columnRef  `parser:"| @@"`
	}

	// inRest is "[NOT|OR] IN (list)". OR is accepted as a synonym for NOT here.
	inRest struct {
		Not  bool          `parser:"@('NOT' | 'OR')? 'IN'"`
		List []*expression `parser:"'(' @@ (',' @@)* ')'"`
	}

	binaryRest struct {
		Op    string   `parser:"@('+' | '*' | '>' | '<' | '=')"`
		Right *operand `parser:"@@"`
	}

	unary struct {
		Op      string   `parser:"@('!' | '-')"`
		Operand *operand `parser:"@@"`
	}

	function struct {
		Name string        `parser:"@('COUNT' | 'SUM' | 'AVG' | 'MAX' | 'MIN') '('"`
		Args []*expression `parser:"(@@ (',' @@)*)? ')'"`
	}

	literal struct {
		Pos    lexer.Position
		Null   bool    `parser:"  @'NULL'"`
		Date   *string `parser:"| @Date"`
		Number *string `parser:"| @Number"`
		String *string `parser:"| @String"`
	}

	// columnRef is "*", "t.*", "c" or "t.c".
	columnRef struct {
		Wildcard bool   `parser:"  @'*'"`
		First    *ident `parser:"| @@"`
		Star     bool   `parser:"  ('.' ( @'*'"`
		Second   *ident `parser:"       | @@ ) )?"`
	}

	// columnName is "c" or "t.c". Unlike columnRef it never matches a wildcard.
	columnName struct {
		First  *ident `parser:"@@"`
		Second *ident `parser:"('.' @@)?"`
	}

	ident struct {
		Pos  lexer.Position
		Name string `parser:"@(Ident | QuotedIdent)"`
	}
)
