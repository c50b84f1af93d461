package ast

import (
	"strconv"
	"strings"
)

type (
	// JoinType is the kind of a Join.
	JoinType int

	// Order is a sort direction.
	Order int
)

const (
	InnerJoin JoinType = iota + 1
	LeftJoin
	RightJoin
	FullOuterJoin
	CrossJoin
)

const (
	Asc Order = iota + 1
	Desc
)

type (
	// SelectStatement is a complete SELECT query.
	SelectStatement struct {
		Body    SelectClause
		OrderBy []OrderBy
		Limit   *uint64
		Offset  *uint64
	}

	// SelectClause holds everything between SELECT and ORDER BY.
	//
	// GroupBy is never nil on a parsed tree: a query without GROUP BY has an empty list.
	SelectClause struct {
		Distinct   bool
		Projection []Expression
		From       TableReference
		Where      Expression
		GroupBy    []Expression
		Having     Expression
	}

	// OrderBy is one ORDER BY group: one or more expressions sharing a direction.
	OrderBy struct {
		Exprs     []Expression
		Direction *Order
	}

	// BaseRelation is a plain table in a FROM clause.
	BaseRelation struct {
		Table Table
	}

	// SubQuery is a parenthesized SELECT used as a table, with an optional alias.
	SubQuery struct {
		Select *SelectStatement
		Alias  Identifier
	}

	// Join combines two table references. Condition is nil only for a CROSS JOIN written
	// without one.
	Join struct {
		Left      TableReference
		Type      JoinType
		Right     TableReference
		Condition JoinCondition
	}

	// Using is a "USING (a, b)" join condition.
	Using struct {
		Columns []Identifier
	}

	// On is an "ON expr, ..." join condition. The expressions are a conjunction.
	On struct {
		Exprs []Expression
	}
)

func (*SelectStatement) node()          {}
func (*SelectStatement) statementNode() {}

func (*BaseRelation) node()               {}
func (*BaseRelation) tableReferenceNode() {}
func (*SubQuery) node()                   {}
func (*SubQuery) tableReferenceNode()     {}
func (*Join) node()                       {}
func (*Join) tableReferenceNode()         {}

func (*Using) node()              {}
func (*Using) joinConditionNode() {}
func (*On) node()                 {}
func (*On) joinConditionNode()    {}

func (t JoinType) String() string {
	switch t {
	case InnerJoin:
		return "INNER JOIN"
	case LeftJoin:
		return "LEFT JOIN"
	case RightJoin:
		return "RIGHT JOIN"
	case FullOuterJoin:
		return "FULL OUTER JOIN"
	case CrossJoin:
		return "CROSS JOIN"
	default:
		return "JOIN"
	}
}

func (o Order) String() string {
	if o == Desc {
		return "DESC"
	}

	return "ASC"
}

// Order returns the group's direction, defaulting to Asc when none was written.
func (o OrderBy) Order() Order {
	if o.Direction == nil {
		return Asc
	}

	return *o.Direction
}

func (o OrderBy) String() string {
	s := joinNodes(o.Exprs, ", ")
	if o.Direction != nil {
		s += " " + o.Direction.String()
	}

	return s
}

func (s *SelectStatement) String() string {
	var sb strings.Builder
	sb.WriteString(s.Body.String())

	if len(s.OrderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(OrderByList(s.OrderBy))
	}

	if s.Limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.FormatUint(*s.Limit, 10))
	}

	if s.Offset != nil {
		sb.WriteString(" OFFSET ")
		sb.WriteString(strconv.FormatUint(*s.Offset, 10))
	}

	return sb.String()
}

// OrderByList renders ORDER BY groups separated by commas. Every group but the last is
// given an explicit direction, since "a, b DESC" would otherwise read back as a single
// group.
func OrderByList(groups []OrderBy) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		if i < len(groups)-1 && g.Direction == nil {
			parts[i] = joinNodes(g.Exprs, ", ") + " " + g.Order().String()
			continue
		}
		parts[i] = g.String()
	}

	return strings.Join(parts, ", ")
}

func (c SelectClause) String() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	if c.Distinct {
		sb.WriteString("DISTINCT ")
	}
	sb.WriteString(joinNodes(c.Projection, ", "))

	if c.From != nil {
		sb.WriteString(" FROM ")
		sb.WriteString(c.From.String())
	}

	if c.Where != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(c.Where.String())
	}

	if len(c.GroupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(joinNodes(c.GroupBy, ", "))
	}

	if c.Having != nil {
		sb.WriteString(" HAVING ")
		sb.WriteString(c.Having.String())
	}

	return sb.String()
}

func (r *BaseRelation) String() string { return r.Table.String() }

func (q *SubQuery) String() string {
	s := "(" + q.Select.String() + ")"
	if q.Alias != "" {
		s += " AS " + q.Alias.SQL()
	}

	return s
}

func (j *Join) String() string {
	right := j.Right.String()
	if _, nested := j.Right.(*Join); nested {
		right = "(" + right + ")"
	}

	s := j.Left.String() + " " + j.Type.String() + " " + right
	if j.Condition != nil {
		s += " " + j.Condition.String()
	}

	return s
}

func (u *Using) String() string {
	names := make([]string, len(u.Columns))
	for i, c := range u.Columns {
		names[i] = c.SQL()
	}

	return "USING (" + strings.Join(names, ", ") + ")"
}

func (o *On) String() string { return "ON " + joinNodes(o.Exprs, ", ") }
