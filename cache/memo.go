package cache

import (
	"context"
	"errors"
	"reflect"
)

// MemoStore is a request-scoped Service. Entries are computed at most once per
// key and kept for the lifetime of the store; there is no eviction and no
// expiry. A MemoStore is owned by a single request handler and is not safe for
// concurrent use.
type MemoStore struct {
	entries map[string]any
}

// NewMemoStore creates an empty memo store. The backing map is allocated
// lazily on first use.
func NewMemoStore() *MemoStore {
	return &MemoStore{}
}

// GetOrCompute returns the memoized value for key, invoking computeFn only on
// the first call for that key. Errors from computeFn are not memoized, so a
// failed lookup can be retried.
func (m *MemoStore) GetOrCompute(ctx context.Context, key string, computeFn any) (any, error) {
	if v, ok := m.entries[key]; ok {
		return v, nil
	}

	v, err := callComputeFn(ctx, computeFn)
	if err != nil {
		return nil, err
	}

	if m.entries == nil {
		m.entries = make(map[string]any)
	}
	m.entries[key] = v
	return v, nil
}

// Delete removes a single memoized entry.
func (m *MemoStore) Delete(ctx context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

// Len reports the number of memoized entries. Used by tests and diagnostics.
func (m *MemoStore) Len() int {
	return len(m.entries)
}

// callComputeFn invokes any function shaped like ComputeFn[T], that is
// func(context.Context) (T, error), using a direct assertion for the common
// case and reflection otherwise.
func callComputeFn(ctx context.Context, computeFn any) (any, error) {
	if computeFn == nil {
		return nil, errors.New("cache: computeFn cannot be nil")
	}

	if fn, ok := computeFn.(func(context.Context) (any, error)); ok {
		return fn(ctx)
	}

	fnValue := reflect.ValueOf(computeFn)
	fnType := fnValue.Type()
	if fnType.Kind() != reflect.Func || fnType.NumIn() != 1 || fnType.NumOut() != 2 {
		return nil, errors.New("cache: computeFn must have signature func(context.Context) (T, error)")
	}

	results := fnValue.Call([]reflect.Value{reflect.ValueOf(ctx)})

	var result any
	if results[0].IsValid() && results[0].CanInterface() {
		result = results[0].Interface()
	}

	var err error
	if results[1].IsValid() && !results[1].IsNil() {
		err = results[1].Interface().(error)
	}

	return result, err
}
