package userquery

import (
	"fmt"
	"strings"
)

// IdentityColumn is the core column identifying a user. It is always part of
// the selected attribute set.
const IdentityColumn = "ID"

// userAlias is the alias of the core user relation inside the composed query.
const userAlias = "u"

// coreColumns is the fixed set of attributes stored directly on the user
// relation. Everything else lives in the key/value attribute relation and
// needs one join per attribute.
var coreColumns = map[string]struct{}{
	"ID":                  {},
	"user_login":          {},
	"user_nicename":       {},
	"user_email":          {},
	"user_url":            {},
	"user_registered":     {},
	"user_activation_key": {},
	"user_status":         {},
	"display_name":        {},
}

// IsCoreAttribute reports whether name is stored on the core user relation.
func IsCoreAttribute(name string) bool {
	_, ok := coreColumns[name]
	return ok
}

// statement is the query AST: select columns, meta joins, a single predicate,
// and an order clause. Escaping happens when nodes are constructed, never
// during rendering, so the injection-safety invariant is local to the build
// step and testable in isolation.
type statement struct {
	columns []selectColumn
	from    string
	joins   []metaJoin
	where   predicate
	order   orderClause
}

// selectColumn is one rendered select-list expression. alias is empty for
// core columns, which already carry their attribute name.
type selectColumn struct {
	expr  string
	alias string
}

// metaJoin joins the key/value relation for one extended attribute. key is
// already escaped; alias is already sanitized.
type metaJoin struct {
	table string
	alias string
	key   string
}

// predicate is the single WHERE condition. column is a rendered reference and
// value is already escaped.
type predicate struct {
	column   string
	operator Operator
	value    string
}

// orderClause orders the result. expr is a rendered column reference; random
// requests RAND() ordering instead.
type orderClause struct {
	expr      string
	direction Direction
	random    bool
}

// buildStatement translates a (fields, filter, sort) request into a statement.
// The caller has already validated the filter operator and sort direction.
func buildStatement(store Store, fields []string, filter Filter, sort Sort) *statement {
	random := sort.Attribute == SortRandom

	want := []string{IdentityColumn}
	want = append(want, fields...)
	want = append(want, filter.Attribute)
	if !random {
		want = append(want, sort.Attribute)
	}
	attrs := dedupe(want)

	st := &statement{from: fmt.Sprintf("%s AS %s", sanitizeIdent(store.UsersTable()), userAlias)}

	refs := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		ident := sanitizeIdent(attr)
		if IsCoreAttribute(attr) {
			ref := userAlias + "." + ident
			refs[attr] = ref
			st.columns = append(st.columns, selectColumn{expr: ref})
			continue
		}

		alias := "mk_" + ident
		st.joins = append(st.joins, metaJoin{
			table: sanitizeIdent(store.MetaTable()),
			alias: alias,
			key:   store.Escape(attr),
		})
		ref := alias + ".meta_value"
		refs[attr] = ref
		st.columns = append(st.columns, selectColumn{expr: ref, alias: ident})
	}

	st.where = predicate{
		column:   refs[filter.Attribute],
		operator: filter.Operator,
		value:    store.Escape(filter.Value),
	}

	if random {
		st.order = orderClause{random: true}
	} else {
		st.order = orderClause{expr: refs[sort.Attribute], direction: sort.Direction}
	}

	return st
}

// render assembles the final query text. All escaping has already happened.
func (st *statement) render() string {
	var b strings.Builder

	b.WriteString("SELECT ")
	for i, col := range st.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col.expr)
		if col.alias != "" {
			b.WriteString(" AS ")
			b.WriteString(col.alias)
		}
	}

	b.WriteString(" FROM ")
	b.WriteString(st.from)

	for _, j := range st.joins {
		fmt.Fprintf(&b, " INNER JOIN (SELECT user_id, meta_value FROM %s WHERE meta_key = '%s') AS %s ON %s.%s = %s.user_id",
			j.table, j.key, j.alias, userAlias, IdentityColumn, j.alias)
	}

	fmt.Fprintf(&b, " WHERE %s %s '%s'", st.where.column, st.where.operator, st.where.value)

	if st.order.random {
		b.WriteString(" ORDER BY RAND()")
	} else {
		fmt.Fprintf(&b, " ORDER BY %s %s", st.order.expr, st.order.direction)
	}

	return b.String()
}

// dedupe removes repeated attribute names while preserving first-seen order,
// so duplicate requests never produce duplicate joins.
func dedupe(attrs []string) []string {
	seen := make(map[string]struct{}, len(attrs))
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// sanitizeIdent strips every rune outside [A-Za-z0-9_] from an identifier.
// Identifiers cannot be quoted through the value escaper, so they are reduced
// to a safe alphabet instead.
func sanitizeIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
