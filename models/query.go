package models

// Operator enumerates the comparison operators a Where clause may use.
// The zero value is not a valid operator; queries built without an
// explicit operator are rejected before any request is sent.
type Operator string

const (
	// OpEqual matches documents whose field equals the given value.
	OpEqual Operator = "=="

	// OpNotEqual matches documents whose field differs from the value.
	OpNotEqual Operator = "!="

	// OpLessThan matches documents whose field orders before the value.
	OpLessThan Operator = "<"

	// OpLessThanOrEqual matches documents whose field orders before
	// or equals the value.
	OpLessThanOrEqual Operator = "<="

	// OpGreaterThan matches documents whose field orders after the value.
	OpGreaterThan Operator = ">"

	// OpGreaterThanOrEqual matches documents whose field orders after
	// or equals the value.
	OpGreaterThanOrEqual Operator = ">="

	// OpArrayContains matches documents whose array field contains
	// the given value as a member.
	OpArrayContains Operator = "array-contains"

	// OpArrayContainsAny matches documents whose array field contains
	// at least one member of the given array value.
	OpArrayContainsAny Operator = "array-contains-any"

	// OpIn matches documents whose field equals any member of the
	// given array value.
	OpIn Operator = "in"

	// OpNotIn matches documents whose field equals no member of the
	// given array value.
	OpNotIn Operator = "not-in"
)

// Direction selects the sort order of an OrderBy clause.
type Direction string

const (
	// Ascending sorts smallest first. It is the default when a
	// Direction is left empty.
	Ascending Direction = "asc"

	// Descending sorts largest first.
	Descending Direction = "desc"
)

// Combine selects how a CompositeFilter joins its clauses.
type Combine string

const (
	// CombineAnd requires every clause to match.
	CombineAnd Combine = "and"

	// CombineOr requires at least one clause to match.
	CombineOr Combine = "or"
)

// Where is a single field comparison.
type Where struct {
	// Field is the document field path, dot-separated for nested maps.
	Field string `json:"field"`

	// Op is the comparison operator.
	Op Operator `json:"op"`

	// Value is the operand. Array operators expect a slice.
	Value any `json:"value"`
}

// UnaryWhere tests a field against null without an operand.
type UnaryWhere struct {
	// Field is the document field path.
	Field string `json:"field"`

	// IsNull matches documents where the field is null when true,
	// and documents where the field is not null when false.
	IsNull bool `json:"isNull"`
}

// FilterNode is one member of a composite filter: either a simple
// clause or a nested composite group, never both.
type FilterNode struct {
	// Where is a simple comparison member.
	Where *Where `json:"where,omitempty"`

	// Composite is a nested and/or group member.
	Composite *CompositeFilter `json:"composite,omitempty"`
}

// CompositeFilter joins clauses and nested groups under a single
// combinator. Groups nest to arbitrary depth.
type CompositeFilter struct {
	// Combine selects and/or semantics across Filters.
	Combine Combine `json:"combine"`

	// Filters are the member nodes.
	Filters []FilterNode `json:"filters"`
}

// OrderBy is a single sort clause.
type OrderBy struct {
	// Field is the document field path to sort on.
	Field string `json:"field"`

	// Direction defaults to Ascending when empty.
	Direction Direction `json:"direction,omitempty"`
}

// Query describes a filtered, ordered, paginated read of a collection.
// Every field is optional; the zero Query means "everything, store
// order" and is served by a plain listing rather than a search request.
type Query struct {
	// Where lists simple comparisons, implicitly combined with AND.
	// Mutually exclusive with CompositeWhere and UnaryWhere.
	Where []Where `json:"where,omitempty"`

	// CompositeWhere is an explicit and/or group of comparisons.
	// Mutually exclusive with Where and UnaryWhere.
	CompositeWhere *CompositeFilter `json:"compositeWhere,omitempty"`

	// UnaryWhere is a null / not-null test.
	// Mutually exclusive with Where and CompositeWhere.
	UnaryWhere *UnaryWhere `json:"unaryWhere,omitempty"`

	// OrderBy lists sort clauses, applied in order.
	OrderBy []OrderBy `json:"orderBy,omitempty"`

	// Limit caps the number of returned documents when positive.
	Limit int `json:"limit,omitempty"`

	// Offset skips that many matching documents when positive.
	Offset int `json:"offset,omitempty"`

	// Select restricts returned documents to the named field paths.
	Select []string `json:"select,omitempty"`

	// CollectionGroup widens the query to every collection sharing
	// the requested id, regardless of its parent document.
	CollectionGroup bool `json:"collectionGroup,omitempty"`
}

// IsZero reports whether no query feature is populated. A zero query
// is answered by listing the collection directly instead of running
// a structured search.
func (q Query) IsZero() bool {
	return len(q.Where) == 0 &&
		q.CompositeWhere == nil &&
		q.UnaryWhere == nil &&
		len(q.OrderBy) == 0 &&
		q.Limit == 0 &&
		q.Offset == 0 &&
		len(q.Select) == 0 &&
		!q.CollectionGroup
}
