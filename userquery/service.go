package userquery

import "context"

// DefaultSort orders results by the identity column ascending. Used when the
// caller does not specify a sort.
var DefaultSort = Sort{Attribute: IdentityColumn, Direction: Asc}

// Service translates attribute requests into SQL against a Store with an
// entity-attribute-value secondary schema and normalizes the rows it gets
// back. Results are intentionally not cached; callers that want memoization
// wrap the call themselves.
type Service struct {
	store Store
}

// New creates a query service bound to the given store.
func New(store Store) *Service {
	return &Service{store: store}
}

// Find returns one Record per user matching the filter, carrying the requested
// attributes plus the identity column, the filter attribute, and the sort
// attribute. An unknown operator fails with ErrInvalidOperator before the
// store is touched. A query that matches nothing returns an empty slice, not
// an error. Store failures propagate unwrapped.
func (s *Service) Find(ctx context.Context, fields []string, filter Filter, sort ...Sort) ([]Record, error) {
	if !filter.Operator.valid() {
		return nil, ErrInvalidOperator
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	order := DefaultSort
	if len(sort) > 0 {
		order = sort[0]
	}
	if order.Attribute != SortRandom {
		if err := order.Validate(); err != nil {
			return nil, err
		}
	}

	st := buildStatement(s.store, fields, filter, order)

	rows, err := s.store.Query(ctx, st.render())
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(row))
		for col, val := range row {
			rec[col] = val
		}
		records = append(records, rec)
	}
	return records, nil
}

// BuildSQL renders the query text for a request without executing it. It
// applies the same validation and attribute normalization as Find. Exposed so
// the composed SQL can be inspected and tested apart from execution.
func (s *Service) BuildSQL(fields []string, filter Filter, sort ...Sort) (string, error) {
	if !filter.Operator.valid() {
		return "", ErrInvalidOperator
	}
	if err := filter.Validate(); err != nil {
		return "", err
	}

	order := DefaultSort
	if len(sort) > 0 {
		order = sort[0]
	}
	if order.Attribute != SortRandom {
		if err := order.Validate(); err != nil {
			return "", err
		}
	}

	return buildStatement(s.store, fields, filter, order).render(), nil
}
