package cmd

import (
	"strconv"

	"github.com/pseudomuto/sqlast/pkg/ast"
	"gopkg.in/yaml.v3"
)

// statementTree converts a statement into a YAML document. Every node becomes a
// mapping keyed by its kind, with fields in source order and absent clauses omitted.
func statementTree(stmt ast.Statement) *yaml.Node {
	switch stmt := stmt.(type) {
	case *ast.SelectStatement:
		return mapping("select", selectTree(stmt))
	case *ast.InsertStatement:
		rows := make([]*yaml.Node, len(stmt.Rows))
		for i, row := range stmt.Rows {
			values := make([]*yaml.Node, len(row))
			for j, v := range row {
				values[j] = expressionTree(v)
			}
			rows[i] = sequence(values...)
		}

		var columns *yaml.Node
		if len(stmt.Columns) > 0 {
			names := make([]*yaml.Node, len(stmt.Columns))
			for i, c := range stmt.Columns {
				names[i] = str(c.String())
			}
			columns = sequence(names...)
		}

		return mapping("insert", mapping(
			"table", str(stmt.Table.String()),
			"columns", columns,
			"rows", sequence(rows...),
		))
	case *ast.UpdateStatement:
		fields := make([]*yaml.Node, len(stmt.Fields))
		for i, f := range stmt.Fields {
			fields[i] = mapping("column", str(f.Column.String()), "value", expressionTree(f.Value))
		}

		return mapping("update", mapping(
			"table", str(stmt.Table.String()),
			"set", sequence(fields...),
			"where", optionalExpression(stmt.Where),
		))
	case *ast.DeleteStatement:
		return mapping("delete", mapping(
			"table", str(stmt.Table.String()),
			"where", optionalExpression(stmt.Where),
		))
	case *ast.DropStatement:
		return mapping("drop", mapping(
			"table", str(stmt.Table.String()),
			"if_exists", flag(stmt.IfExists),
		))
	default:
		return str(stmt.String())
	}
}

func selectTree(stmt *ast.SelectStatement) *yaml.Node {
	body := stmt.Body

	var orderBy *yaml.Node
	if len(stmt.OrderBy) > 0 {
		groups := make([]*yaml.Node, len(stmt.OrderBy))
		for i, g := range stmt.OrderBy {
			groups[i] = mapping("exprs", expressionList(g.Exprs), "direction", str(g.Order().String()))
		}
		orderBy = sequence(groups...)
	}

	var from *yaml.Node
	if body.From != nil {
		from = tableTree(body.From)
	}

	var groupBy *yaml.Node
	if len(body.GroupBy) > 0 {
		groupBy = expressionList(body.GroupBy)
	}

	return mapping(
		"distinct", flag(body.Distinct),
		"projection", expressionList(body.Projection),
		"from", from,
		"where", optionalExpression(body.Where),
		"group_by", groupBy,
		"having", optionalExpression(body.Having),
		"order_by", orderBy,
		"limit", count(stmt.Limit),
		"offset", count(stmt.Offset),
	)
}

func tableTree(ref ast.TableReference) *yaml.Node {
	switch ref := ref.(type) {
	case *ast.BaseRelation:
		return mapping("table", str(ref.Table.String()))
	case *ast.SubQuery:
		var alias *yaml.Node
		if ref.Alias != "" {
			alias = str(ref.Alias.String())
		}
		return mapping("subquery", mapping("select", selectTree(ref.Select), "alias", alias))
	case *ast.Join:
		var using, on *yaml.Node
		switch cond := ref.Condition.(type) {
		case *ast.Using:
			cols := make([]*yaml.Node, len(cond.Columns))
			for i, c := range cond.Columns {
				cols[i] = str(c.String())
			}
			using = sequence(cols...)
		case *ast.On:
			on = expressionList(cond.Exprs)
		}

		return mapping("join", mapping(
			"type", str(ref.Type.String()),
			"left", tableTree(ref.Left),
			"right", tableTree(ref.Right),
			"using", using,
			"on", on,
		))
	default:
		return str(ref.String())
	}
}

func expressionTree(e ast.Expression) *yaml.Node {
	switch e := e.(type) {
	case *ast.Column:
		return mapping("column", str(e.String()))
	case *ast.Wildcard:
		return mapping("wildcard", str("*"))
	case *ast.QualifiedWildcard:
		return mapping("wildcard", str(e.String()))
	case *ast.Alias:
		return mapping("alias", mapping("expr", expressionTree(e.Expr), "name", str(e.Name.String())))
	case *ast.UnaryExpr:
		return mapping("unary", mapping("op", str(e.Op.String()), "expr", expressionTree(e.Expr)))
	case *ast.BinaryExpr:
		return mapping("binary", mapping(
			"op", str(e.Op.String()),
			"left", expressionTree(e.Left),
			"right", expressionTree(e.Right),
		))
	case *ast.InExpr:
		return mapping("in", mapping(
			"expr", expressionTree(e.Expr),
			"not", flag(e.Not),
			"list", expressionList(e.List),
		))
	case *ast.FunctionExpr:
		return mapping("function", mapping("name", str(e.Func.String()), "args", expressionList(e.Args)))
	case *ast.NullLiteral:
		return mapping("null", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"})
	case *ast.StringLiteral:
		return mapping("string", str(e.Value))
	case *ast.IntegerLiteral:
		return mapping("integer", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(e.Value, 10)})
	case *ast.FloatLiteral:
		return mapping("float", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: e.String()})
	case *ast.DateLiteral:
		return mapping("date", str(e.Value))
	default:
		return str(e.String())
	}
}

func expressionList(exprs []ast.Expression) *yaml.Node {
	items := make([]*yaml.Node, len(exprs))
	for i, e := range exprs {
		items[i] = expressionTree(e)
	}

	return sequence(items...)
}

func optionalExpression(e ast.Expression) *yaml.Node {
	if e == nil {
		return nil
	}

	return expressionTree(e)
}

// mapping builds a mapping node from alternating keys and values. Pairs with a nil
// value are skipped.
func mapping(pairs ...any) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(pairs); i += 2 {
		value, _ := pairs[i+1].(*yaml.Node)
		if value == nil {
			continue
		}

		node.Content = append(node.Content, str(pairs[i].(string)), value)
	}

	return node
}

func sequence(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// flag returns a boolean node for set flags and nil otherwise.
func flag(b bool) *yaml.Node {
	if !b {
		return nil
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"}
}

func count(n *uint64) *yaml.Node {
	if n == nil {
		return nil
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(*n, 10)}
}
