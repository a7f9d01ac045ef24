// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Able Wong

package docstore

import (
	"fmt"

	"github.com/able-wong/firekit/models"
)

// wireOperators maps the descriptor's operator vocabulary onto the
// wire protocol's.
var wireOperators = map[models.Operator]string{
	models.OpEqual:              "EQUAL",
	models.OpNotEqual:           "NOT_EQUAL",
	models.OpLessThan:           "LESS_THAN",
	models.OpLessThanOrEqual:    "LESS_THAN_OR_EQUAL",
	models.OpGreaterThan:        "GREATER_THAN",
	models.OpGreaterThanOrEqual: "GREATER_THAN_OR_EQUAL",
	models.OpArrayContains:      "ARRAY_CONTAINS",
	models.OpArrayContainsAny:   "ARRAY_CONTAINS_ANY",
	models.OpIn:                 "IN",
	models.OpNotIn:              "NOT_IN",
}

// buildStructuredQuery translates a populated query descriptor into the
// wire's structuredQuery body. The caller guarantees the descriptor is
// non-zero; this function guarantees at most one filter form is used.
func buildStructuredQuery(collection string, q models.Query) (map[string]any, error) {
	forms := 0
	if len(q.Where) > 0 {
		forms++
	}
	if q.CompositeWhere != nil {
		forms++
	}
	if q.UnaryWhere != nil {
		forms++
	}
	if forms > 1 {
		return nil, fmt.Errorf("%w: where, compositeWhere and unaryWhere are mutually exclusive", ErrInvalidQuery)
	}

	sq := map[string]any{
		"from": []any{map[string]any{
			"collectionId":   collection,
			"allDescendants": q.CollectionGroup,
		}},
	}

	switch {
	case len(q.Where) == 1:
		filter, err := buildFieldFilter(q.Where[0])
		if err != nil {
			return nil, err
		}
		sq["where"] = filter
	case len(q.Where) > 1:
		members := make([]models.FilterNode, len(q.Where))
		for i := range q.Where {
			members[i] = models.FilterNode{Where: &q.Where[i]}
		}
		filter, err := buildCompositeFilter(models.CompositeFilter{
			Combine: models.CombineAnd,
			Filters: members,
		})
		if err != nil {
			return nil, err
		}
		sq["where"] = filter
	case q.CompositeWhere != nil:
		filter, err := buildCompositeFilter(*q.CompositeWhere)
		if err != nil {
			return nil, err
		}
		sq["where"] = filter
	case q.UnaryWhere != nil:
		sq["where"] = buildUnaryFilter(*q.UnaryWhere)
	}

	if len(q.OrderBy) > 0 {
		orderings := make([]any, len(q.OrderBy))
		for i, ob := range q.OrderBy {
			direction, err := wireDirection(ob.Direction)
			if err != nil {
				return nil, err
			}
			orderings[i] = map[string]any{
				"field":     map[string]any{"fieldPath": ob.Field},
				"direction": direction,
			}
		}
		sq["orderBy"] = orderings
	}

	if q.Limit > 0 {
		sq["limit"] = q.Limit
	}
	if q.Offset > 0 {
		sq["offset"] = q.Offset
	}

	if len(q.Select) > 0 {
		fields := make([]any, len(q.Select))
		for i, name := range q.Select {
			fields[i] = map[string]any{"fieldPath": name}
		}
		sq["select"] = map[string]any{"fields": fields}
	}

	return sq, nil
}

func wireDirection(d models.Direction) (string, error) {
	switch d {
	case models.Ascending, "":
		return "ASCENDING", nil
	case models.Descending:
		return "DESCENDING", nil
	default:
		return "", fmt.Errorf("%w: unknown direction %q", ErrInvalidQuery, d)
	}
}

func buildFieldFilter(w models.Where) (map[string]any, error) {
	op, ok := wireOperators[w.Op]
	if !ok {
		return nil, fmt.Errorf("%w: unknown operator %q", ErrInvalidQuery, w.Op)
	}
	return map[string]any{
		"fieldFilter": map[string]any{
			"field": map[string]any{"fieldPath": w.Field},
			"op":    op,
			"value": encodeValue(w.Value),
		},
	}, nil
}

func buildCompositeFilter(cf models.CompositeFilter) (map[string]any, error) {
	var op string
	switch cf.Combine {
	case models.CombineAnd:
		op = "AND"
	case models.CombineOr:
		op = "OR"
	default:
		return nil, fmt.Errorf("%w: unknown combinator %q", ErrInvalidQuery, cf.Combine)
	}

	if len(cf.Filters) == 0 {
		return nil, fmt.Errorf("%w: composite filter has no members", ErrInvalidQuery)
	}

	members := make([]any, 0, len(cf.Filters))
	for _, node := range cf.Filters {
		switch {
		case node.Where != nil && node.Composite != nil:
			return nil, fmt.Errorf("%w: composite member sets both where and composite", ErrInvalidQuery)
		case node.Where != nil:
			filter, err := buildFieldFilter(*node.Where)
			if err != nil {
				return nil, err
			}
			members = append(members, filter)
		case node.Composite != nil:
			filter, err := buildCompositeFilter(*node.Composite)
			if err != nil {
				return nil, err
			}
			members = append(members, filter)
		default:
			return nil, fmt.Errorf("%w: empty composite member", ErrInvalidQuery)
		}
	}

	return map[string]any{
		"compositeFilter": map[string]any{
			"op":      op,
			"filters": members,
		},
	}, nil
}

func buildUnaryFilter(u models.UnaryWhere) map[string]any {
	op := "IS_NOT_NULL"
	if u.IsNull {
		op = "IS_NULL"
	}
	return map[string]any{
		"unaryFilter": map[string]any{
			"field": map[string]any{"fieldPath": u.Field},
			"op":    op,
		},
	}
}
