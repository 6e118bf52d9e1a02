// Package predicate holds a small expression tree for WHERE conditions.
// The same tree renders to parameterised postgres SQL and evaluates against
// in-memory rows, so both storage adapters filter with one definition.
package predicate

import (
	"fmt"
	"strings"
)

// Operator is a comparison applied by a Condition.
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "<>"
	OpGreaterThan  Operator = ">"
	OpLessThan     Operator = "<"
	OpContainsFold Operator = "ILIKE"
)

// Logic joins the terms of a Group.
type Logic string

const (
	LogicAnd Logic = "AND"
	LogicOr  Logic = "OR"
)

// Expr is either a Condition or a Group.
type Expr interface {
	isExpr()
}

// Condition compares one column against one value.
// For OpContainsFold the value is the raw substring, not a LIKE pattern.
type Condition struct {
	Column   string
	Operator Operator
	Value    interface{}
}

// Group combines terms with a single logic operator.
// An empty group is vacuous and matches every row.
type Group struct {
	Logic Logic
	Terms []Expr
}

func (Condition) isExpr() {}
func (Group) isExpr()     {}

func Equal(column string, value interface{}) Condition {
	return Condition{Column: column, Operator: OpEqual, Value: value}
}

func NotEqual(column string, value interface{}) Condition {
	return Condition{Column: column, Operator: OpNotEqual, Value: value}
}

func GreaterThan(column string, value interface{}) Condition {
	return Condition{Column: column, Operator: OpGreaterThan, Value: value}
}

func LessThan(column string, value interface{}) Condition {
	return Condition{Column: column, Operator: OpLessThan, Value: value}
}

// ContainsFold matches when the column contains substr, ignoring case.
func ContainsFold(column string, substr string) Condition {
	return Condition{Column: column, Operator: OpContainsFold, Value: substr}
}

// And joins terms with AND, dropping nil and empty terms.
func And(terms ...Expr) Group {
	return group(LogicAnd, terms)
}

// Or joins terms with OR, dropping nil and empty terms.
func Or(terms ...Expr) Group {
	return group(LogicOr, terms)
}

func group(logic Logic, terms []Expr) Group {
	g := Group{Logic: logic}
	for _, t := range terms {
		if IsEmpty(t) {
			continue
		}
		g.Terms = append(g.Terms, t)
	}
	return g
}

// IsEmpty reports whether e contributes no condition at all.
func IsEmpty(e Expr) bool {
	switch v := e.(type) {
	case nil:
		return true
	case Group:
		for _, t := range v.Terms {
			if !IsEmpty(t) {
				return false
			}
		}
		return true
	case *Group:
		return v == nil || IsEmpty(*v)
	default:
		return false
	}
}

// Render turns e into a SQL boolean expression using $n placeholders.
// Numbering starts after offset existing arguments. An empty expression
// renders as "" with no arguments.
func Render(e Expr, offset int) (string, []interface{}) {
	r := renderer{offset: offset}
	sql := r.render(e, true)
	return sql, r.args
}

// Where renders e prefixed with WHERE, or "" when e is empty.
func Where(e Expr) (string, []interface{}) {
	sql, args := Render(e, 0)
	if sql == "" {
		return "", nil
	}
	return "WHERE " + sql, args
}

type renderer struct {
	offset int
	args   []interface{}
}

func (r *renderer) placeholder(value interface{}) string {
	r.args = append(r.args, value)
	return fmt.Sprintf("$%d", r.offset+len(r.args))
}

func (r *renderer) render(e Expr, top bool) string {
	switch v := e.(type) {
	case Condition:
		if v.Operator == OpContainsFold {
			pattern := "%" + EscapeLike(fmt.Sprint(v.Value)) + "%"
			return fmt.Sprintf("%s ILIKE %s", v.Column, r.placeholder(pattern))
		}
		return fmt.Sprintf("%s %s %s", v.Column, v.Operator, r.placeholder(v.Value))
	case *Group:
		if v == nil {
			return ""
		}
		return r.render(*v, top)
	case Group:
		parts := make([]string, 0, len(v.Terms))
		for _, t := range v.Terms {
			if IsEmpty(t) {
				continue
			}
			parts = append(parts, r.render(t, false))
		}
		switch len(parts) {
		case 0:
			return ""
		case 1:
			return parts[0]
		}
		joined := strings.Join(parts, " "+string(v.Logic)+" ")
		if top {
			return joined
		}
		return "(" + joined + ")"
	default:
		return ""
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
