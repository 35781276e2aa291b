// Package cache provides the memoized lookup layer used by the theme helper.
//
// # Overview
//
// This package exports two main interfaces and their default implementations:
//
//   - Service: a get-or-compute interface for memoized lookups
//   - KeySerializer: builds stable cache keys from a namespace and arguments
//
// Two Service implementations exist with different lifetimes:
//
//   - MemoStore: request-scoped. Values are computed once per key and kept for
//     the lifetime of the owning object, with no eviction or expiry. Stale
//     values are acceptable because the store itself is short-lived. Not safe
//     for concurrent use; a MemoStore has exactly one owner.
//   - The shared service built by NewSharedService: process-wide, backed by
//     sturdyc, with TTL-based expiry and safe concurrent access. Use it for
//     lookups whose results are valid across requests, such as custom-field
//     option sets.
//
// # Basic Usage
//
//	serializer := cache.NewDefaultKeySerializer()
//	key := serializer.SerializeKey("field_options", "color")
//
//	memo := cache.NewMemoStore()
//	choices, err := cache.GetOrCompute(ctx, memo, key, func(ctx context.Context) (map[string]string, error) {
//		return loadFieldChoices(ctx, "color") // expensive lookup
//	})
//
// A second call with the same key returns the memoized value without invoking
// the compute function again.
//
// # Key Serialization Strategy
//
// The default key serializer joins the namespace and each serialized argument
// with "::". Basic types render directly, slices recursively, and maps with
// sorted entries so the same lookup always yields the same key. Structs and
// anything else fall back to JSON.
//
// # Error Handling
//
// Compute errors are returned to the caller and never memoized, so a failed
// lookup is retried on the next call. The generic GetOrCompute wrapper returns
// ErrInvalidResultType when a cached value does not match the requested type,
// which normally means two call sites share a key but disagree on the type.
package cache
