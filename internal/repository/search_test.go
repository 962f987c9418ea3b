package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhereAnd(t *testing.T) {
	args := []any{}
	clause, err := BuildWhere(CombinatorAnd, []Predicate{
		Eq("status", "AVAILABLE"),
		Gte("total_amount", 1000),
	}, &args)
	require.NoError(t, err)
	assert.Equal(t, "(status = $1 AND total_amount >= $2)", clause)
	assert.Equal(t, []any{"AVAILABLE", 1000}, args)
}

func TestBuildWhereOr(t *testing.T) {
	args := []any{}
	clause, err := BuildWhere(CombinatorOr, []Predicate{
		Eq("brand", "TOYOTA"),
		Eq("color", "red"),
	}, &args)
	require.NoError(t, err)
	assert.Equal(t, "(brand = $1 OR color = $2)", clause)
}

func TestBuildWhereNotNegatesConjunction(t *testing.T) {
	// NOT applies to the conjunction of all predicates as a whole:
	// NOT (p1 AND p2), never (NOT p1) AND (NOT p2).
	args := []any{}
	clause, err := BuildWhere(CombinatorNot, []Predicate{
		Eq("status", "RENTED"),
		Eq("color", "red"),
	}, &args)
	require.NoError(t, err)
	assert.Equal(t, "NOT (status = $1 AND color = $2)", clause)
	assert.Equal(t, []any{"RENTED", "red"}, args)
}

func TestBuildWhereRespectsExistingArgs(t *testing.T) {
	// Ownership narrowing prepends its own bind value; predicate
	// placeholders must continue from there.
	args := []any{"customer-id"}
	clause, err := BuildWhere(CombinatorAnd, []Predicate{Eq("vehicle_id", "v1")}, &args)
	require.NoError(t, err)
	assert.Equal(t, "(vehicle_id = $2)", clause)
	assert.Len(t, args, 2)
}

func TestBuildWhereNoPredicates(t *testing.T) {
	args := []any{}
	_, err := BuildWhere(CombinatorAnd, nil, &args)
	assert.Error(t, err)
}

func TestParseCombinator(t *testing.T) {
	for _, raw := range []string{"and", "or", "not", "AND", "Not"} {
		_, err := ParseCombinator(raw)
		assert.NoError(t, err, raw)
	}

	_, err := ParseCombinator("xor")
	assert.Error(t, err)
	_, err = ParseCombinator("")
	assert.Error(t, err)
}

func TestClampPage(t *testing.T) {
	offset, limit := ClampPage(-5, 0)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 100, limit)

	offset, limit = ClampPage(10, 500)
	assert.Equal(t, 10, offset)
	assert.Equal(t, 100, limit)

	offset, limit = ClampPage(20, 50)
	assert.Equal(t, 20, offset)
	assert.Equal(t, 50, limit)
}
