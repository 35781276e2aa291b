// Package userquery builds and executes attribute queries over a user store
// with an entity-attribute-value secondary schema.
//
// # Overview
//
// Core user attributes (login, email, registration date, ...) live as columns
// on the user relation. Every other attribute lives in a key/value relation as
// (user_id, meta_key, meta_value) rows, so each extended attribute a caller
// requests costs one join. The service hides that split: callers name the
// attributes they want, a single filter predicate, and an optional sort, and
// get back uniform attribute-to-value records.
//
//	svc := userquery.New(userquery.NewBunStore(db))
//	records, err := svc.Find(ctx,
//		[]string{"user_email", "first_name"},
//		userquery.Filter{Attribute: "subscribed", Operator: userquery.OpEqual, Value: "yes"},
//		userquery.Sort{Attribute: "last_name", Direction: userquery.Asc},
//	)
//
// # Attribute set normalization
//
// The filter attribute and the sort attribute are always part of the selected
// set; they are appended when missing and never joined twice when duplicated.
// The identity column is always selected. A random sort (SortRandom) emits an
// ORDER BY RAND() directive and adds nothing to the attribute set.
//
// # Escaping discipline
//
// The query is assembled as a small AST (select columns, joins, predicate,
// order clause) and rendered to text at the end. Values pass through the
// store's Escape routine and identifiers are reduced to [A-Za-z0-9_] when AST
// nodes are constructed, never during rendering. Nothing reaches the final
// string assembly unescaped.
//
// # Failure behavior
//
// A comparison operator outside the allowed set fails closed with
// ErrInvalidOperator before any SQL is built. An empty result set is an empty
// slice, not an error. Store failures propagate to the caller unwrapped; the
// package adds no retry or recovery layer.
package userquery
