package cache

import (
	"context"
	"errors"
)

// ErrInvalidResultType is returned by the generic GetOrCompute wrapper when a
// cached value cannot be asserted to the requested type. This normally means
// two call sites share a key but disagree on the value type.
var ErrInvalidResultType = errors.New("cache: result does not match requested type")

// ComputeFn is the function signature Service expects when computing a value
// from the source of truth.
type ComputeFn[T any] func(ctx context.Context) (T, error)

// Service exposes the get-or-compute operation used by the theme helper and
// the shared option-set cache. It is exported so callers can reuse the default
// serializer or provide alternate backends (per-request memo, sturdyc, ...).
type Service interface {
	GetOrCompute(ctx context.Context, key string, computeFn any) (any, error)
	Delete(ctx context.Context, key string) error
}

// GetOrCompute is a type-safe wrapper that provides generic support for Service.
func GetOrCompute[T any](ctx context.Context, service Service, key string, computeFn ComputeFn[T]) (T, error) {
	var zero T

	result, err := service.GetOrCompute(ctx, key, computeFn)
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}

	typed, ok := result.(T)
	if !ok {
		return zero, ErrInvalidResultType
	}
	return typed, nil
}
