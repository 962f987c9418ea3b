package repository

import (
	"fmt"
	"strings"

	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// Combinator is the logical operator applied uniformly across all supplied
// search predicates.
type Combinator string

const (
	CombinatorAnd Combinator = "and"
	CombinatorOr  Combinator = "or"
	CombinatorNot Combinator = "not"
)

// ParseCombinator validates the operator query parameter.
func ParseCombinator(raw string) (Combinator, error) {
	switch Combinator(strings.ToLower(raw)) {
	case CombinatorAnd:
		return CombinatorAnd, nil
	case CombinatorOr:
		return CombinatorOr, nil
	case CombinatorNot:
		return CombinatorNot, nil
	}
	return "", apperrors.NewValidationError("invalid search operator", map[string]any{"operator": raw})
}

// Predicate is a single field condition in a search request.
type Predicate struct {
	Column string
	Op     string
	Value  any
}

// Eq builds an equality predicate.
func Eq(column string, value any) Predicate {
	return Predicate{Column: column, Op: "=", Value: value}
}

// Gte builds a greater-or-equal predicate, used for amount thresholds.
func Gte(column string, value any) Predicate {
	return Predicate{Column: column, Op: ">=", Value: value}
}

// BuildWhere renders the predicates into one SQL condition, appending bind
// values to args so the caller can prepend its own conditions (e.g. ownership
// narrowing). NOT negates the conjunction of all predicates as a whole, not
// each predicate independently: NOT (p1 AND p2 AND ...).
func BuildWhere(comb Combinator, preds []Predicate, args *[]any) (string, error) {
	if len(preds) == 0 {
		return "", apperrors.NewValidationError("no search predicates provided", nil)
	}

	clauses := make([]string, len(preds))
	for i, p := range preds {
		*args = append(*args, p.Value)
		clauses[i] = fmt.Sprintf("%s %s $%d", p.Column, p.Op, len(*args))
	}

	switch comb {
	case CombinatorAnd:
		return "(" + strings.Join(clauses, " AND ") + ")", nil
	case CombinatorOr:
		return "(" + strings.Join(clauses, " OR ") + ")", nil
	case CombinatorNot:
		return "NOT (" + strings.Join(clauses, " AND ") + ")", nil
	}
	return "", apperrors.NewValidationError("invalid search operator", map[string]any{"operator": string(comb)})
}

// ClampPage normalizes offset/limit: limit defaults to 100 and is capped at
// 100, offset is floored at zero.
func ClampPage(offset, limit int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
