package ast

import "strings"

type (
	// InsertStatement is "INSERT INTO t [(cols)] VALUES (row), ...". Columns is empty when
	// no column list was written; otherwise every row has exactly len(Columns) values.
	InsertStatement struct {
		Table   Table
		Columns []Column
		Rows    [][]Literal
	}

	// UpdateStatement is "UPDATE t SET col = expr, ... [WHERE expr]". No column is
	// assigned twice.
	UpdateStatement struct {
		Table  Table
		Fields []SetField
		Where  Expression
	}

	// SetField is a single assignment in an UPDATE.
	SetField struct {
		Column Column
		Value  Expression
	}

	// DeleteStatement is "DELETE FROM t [WHERE expr]".
	DeleteStatement struct {
		Table Table
		Where Expression
	}

	// DropStatement is "DROP TABLE [IF EXISTS] t".
	DropStatement struct {
		Table    Table
		IfExists bool
	}
)

func (*InsertStatement) node()          {}
func (*InsertStatement) statementNode() {}
func (*UpdateStatement) node()          {}
func (*UpdateStatement) statementNode() {}
func (*DeleteStatement) node()          {}
func (*DeleteStatement) statementNode() {}
func (*DropStatement) node()            {}
func (*DropStatement) statementNode()   {}

func (s *InsertStatement) String() string {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(s.Table.String())

	if len(s.Columns) > 0 {
		cols := make([]string, len(s.Columns))
		for i, c := range s.Columns {
			cols[i] = c.String()
		}
		sb.WriteString(" (" + strings.Join(cols, ", ") + ")")
	}

	sb.WriteString(" VALUES ")
	for i, row := range s.Rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(" + joinNodes(row, ", ") + ")")
	}

	return sb.String()
}

func (f SetField) String() string { return f.Column.String() + " = " + f.Value.String() }

func (s *UpdateStatement) String() string {
	fields := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = f.String()
	}

	out := "UPDATE " + s.Table.String() + " SET " + strings.Join(fields, ", ")
	if s.Where != nil {
		out += " WHERE " + s.Where.String()
	}

	return out
}

func (s *DeleteStatement) String() string {
	out := "DELETE FROM " + s.Table.String()
	if s.Where != nil {
		out += " WHERE " + s.Where.String()
	}

	return out
}

func (s *DropStatement) String() string {
	if s.IfExists {
		return "DROP TABLE IF EXISTS " + s.Table.String()
	}

	return "DROP TABLE " + s.Table.String()
}
