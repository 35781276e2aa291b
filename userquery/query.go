package userquery

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidOperator is returned when a filter uses a comparison operator
// outside the allowed set. The query fails closed: no SQL is built and the
// store is never called.
var ErrInvalidOperator = errors.New("userquery: invalid comparison operator")

// Operator is a SQL comparison operator permitted in a Filter.
type Operator string

// The allowed comparison operators. Anything else is rejected before a query
// is built.
const (
	OpEqual          Operator = "="
	OpNotEqual       Operator = "!="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpLike           Operator = "LIKE"
	OpNotLike        Operator = "NOT LIKE"
)

func (o Operator) valid() bool {
	switch o {
	case OpEqual, OpNotEqual, OpGreater, OpGreaterOrEqual, OpLess, OpLessOrEqual, OpLike, OpNotLike:
		return true
	}
	return false
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// SortRandom is the sentinel sort attribute requesting random row order.
// A random sort never adds a column to the selected attribute set.
const SortRandom = "RANDOM"

// Filter restricts which users qualify: a single attribute/operator/value
// equality or comparison predicate.
type Filter struct {
	Attribute string
	Operator  Operator
	Value     string
}

// Validate checks the structural requirements of a filter. The operator is
// checked separately against the allowed set so callers can distinguish
// ErrInvalidOperator from other validation failures.
func (f Filter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Attribute, validation.Required),
		validation.Field(&f.Operator, validation.Required),
	)
}

// Sort orders the result set by an attribute, or randomly via SortRandom.
type Sort struct {
	Attribute string
	Direction Direction
}

// Validate checks that the sort names an attribute and uses a known direction.
func (s Sort) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Attribute, validation.Required),
		validation.Field(&s.Direction, validation.Required, validation.In(Asc, Desc)),
	)
}

// Record maps attribute names to string values for one returned user. It
// always contains the identity column.
type Record map[string]string

// Store is the external relational collaborator the query builder runs
// against. Values interpolated into query text must pass through Escape;
// the builder never assembles raw caller input.
type Store interface {
	// Escape sanitizes a value for interpolation inside a single-quoted
	// SQL string literal.
	Escape(value string) string

	// UsersTable returns the name of the core user relation.
	UsersTable() string

	// MetaTable returns the name of the key/value attribute relation.
	MetaTable() string

	// Query executes the composed query text and returns one map per row,
	// keyed by result column name.
	Query(ctx context.Context, query string) ([]map[string]string, error)
}
