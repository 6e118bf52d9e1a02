package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Empty(t *testing.T) {
	cases := []Expr{nil, Group{}, And(), And(Or(), And()), (*Group)(nil)}
	for _, c := range cases {
		sql, args := Render(c, 0)
		assert.Equal(t, "", sql)
		assert.Empty(t, args)

		where, args := Where(c)
		assert.Equal(t, "", where)
		assert.Nil(t, args)
	}
}

func TestRender_SingleCondition(t *testing.T) {
	sql, args := Render(Equal("b.id", int64(3)), 0)
	assert.Equal(t, "b.id = $1", sql)
	assert.Equal(t, []interface{}{int64(3)}, args)
}

func TestRender_NestedGroups(t *testing.T) {
	e := And(
		Or(ContainsFold("e.given_name", "jo"), ContainsFold("e.family_name", "jo")),
		Equal("e.branch_id", int64(3)),
		GreaterThan("e.gross_salary", int64(60000)),
	)

	sql, args := Render(e, 0)
	assert.Equal(t, "(e.given_name ILIKE $1 OR e.family_name ILIKE $2) AND e.branch_id = $3 AND e.gross_salary > $4", sql)
	assert.Equal(t, []interface{}{"%jo%", "%jo%", int64(3), int64(60000)}, args)
}

func TestRender_Offset(t *testing.T) {
	sql, args := Render(And(LessThan("e.gross_salary", 10), Equal("e.id", 1)), 2)
	assert.Equal(t, "e.gross_salary < $3 AND e.id = $4", sql)
	assert.Len(t, args, 2)
}

func TestRender_EscapesLikePattern(t *testing.T) {
	_, args := Render(ContainsFold("e.given_name", `50%_off\`), 0)
	assert.Equal(t, []interface{}{`%50\%\_off\\%`}, args)
}

func TestWhere(t *testing.T) {
	where, args := Where(And(Equal("ww.employee_id", int64(7))))
	assert.Equal(t, "WHERE ww.employee_id = $1", where)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestAnd_DropsEmptyTerms(t *testing.T) {
	g := And(nil, Or(), Equal("a", 1))
	assert.Len(t, g.Terms, 1)
	assert.False(t, IsEmpty(g))
}

func TestMatch(t *testing.T) {
	row := Row{
		"e.given_name":   "John",
		"e.family_name":  "Smith",
		"e.branch_id":    int64(3),
		"e.gross_salary": int64(65000),
		"e.supervisor":   nil,
	}

	cases := []struct {
		name string
		expr Expr
		want bool
	}{
		{"empty matches all", And(), true},
		{"nil matches all", nil, true},
		{"contains fold", ContainsFold("e.given_name", "jO"), true},
		{"contains fold miss", ContainsFold("e.given_name", "x"), false},
		{"equal int types", Equal("e.branch_id", 3), true},
		{"greater than strict", GreaterThan("e.gross_salary", int64(65000)), false},
		{"less than", LessThan("e.gross_salary", int64(70000)), true},
		{"null never matches", Equal("e.supervisor", int64(1)), false},
		{"missing column", Equal("e.nope", int64(1)), false},
		{"or", Or(Equal("e.branch_id", 4), ContainsFold("e.family_name", "smi")), true},
		{"and", And(Equal("e.branch_id", 3), GreaterThan("e.gross_salary", 70000)), false},
		{"literal percent", ContainsFold("e.given_name", "%"), false},
		{"not equal", NotEqual("e.branch_id", int64(4)), true},
		{"not equal same", NotEqual("e.branch_id", int64(3)), false},
		{"not equal null", NotEqual("e.supervisor", int64(3)), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Match(c.expr, row))
		})
	}
}
