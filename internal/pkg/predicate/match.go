package predicate

import (
	"fmt"
	"strings"
)

// Row exposes column values to Match. A missing column or a nil value
// behaves like SQL NULL and never satisfies a comparison.
type Row map[string]interface{}

// Match evaluates e against row with the same semantics Render produces.
func Match(e Expr, row Row) bool {
	switch v := e.(type) {
	case nil:
		return true
	case Condition:
		return matchCondition(v, row)
	case *Group:
		if v == nil {
			return true
		}
		return Match(*v, row)
	case Group:
		terms := 0
		for _, t := range v.Terms {
			if IsEmpty(t) {
				continue
			}
			terms++
			ok := Match(t, row)
			if v.Logic == LogicOr && ok {
				return true
			}
			if v.Logic != LogicOr && !ok {
				return false
			}
		}
		if terms == 0 {
			return true
		}
		return v.Logic != LogicOr
	default:
		return false
	}
}

func matchCondition(c Condition, row Row) bool {
	got, ok := row[c.Column]
	if !ok || isNil(got) || isNil(c.Value) {
		return false
	}

	if c.Operator == OpContainsFold {
		s, ok := got.(string)
		if !ok {
			s = fmt.Sprint(got)
		}
		return strings.Contains(strings.ToLower(s), strings.ToLower(fmt.Sprint(c.Value)))
	}

	a, aok := toInt64(got)
	b, bok := toInt64(c.Value)
	if aok && bok {
		switch c.Operator {
		case OpEqual:
			return a == b
		case OpNotEqual:
			return a != b
		case OpGreaterThan:
			return a > b
		case OpLessThan:
			return a < b
		}
		return false
	}

	as, bs := fmt.Sprint(got), fmt.Sprint(c.Value)
	switch c.Operator {
	case OpEqual:
		return as == bs
	case OpNotEqual:
		return as != bs
	case OpGreaterThan:
		return as > bs
	case OpLessThan:
		return as < bs
	}
	return false
}

func isNil(v interface{}) bool {
	switch p := v.(type) {
	case nil:
		return true
	case *int64:
		return p == nil
	case *int:
		return p == nil
	}
	return false
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case *int64:
		return *n, true
	case *int:
		return int64(*n), true
	}
	return 0, false
}
