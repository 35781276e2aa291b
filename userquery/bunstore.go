package userquery

import (
	"context"
	"database/sql"
	"strings"

	"github.com/uptrace/bun"
)

// Interface assertion to ensure BunStore implements Store
var _ Store = (*BunStore)(nil)

// Default relation names used when no override is configured.
const (
	DefaultUsersTable = "users"
	DefaultMetaTable  = "usermeta"
)

// BunStore adapts a bun database handle to the Store interface. It executes
// the composed query text verbatim via the driver and maps every column to
// its string form, matching the uniform Record shape the service returns.
type BunStore struct {
	db    bun.IDB
	users string
	meta  string
}

// BunStoreOption customizes a BunStore.
type BunStoreOption func(*BunStore)

// WithTables overrides the default users and usermeta relation names, e.g.
// for prefixed schemas ("wp_users", "wp_usermeta").
func WithTables(users, meta string) BunStoreOption {
	return func(s *BunStore) {
		s.users = users
		s.meta = meta
	}
}

// NewBunStore creates a Store backed by the given bun handle.
func NewBunStore(db bun.IDB, opts ...BunStoreOption) *BunStore {
	s := &BunStore{
		db:    db,
		users: DefaultUsersTable,
		meta:  DefaultMetaTable,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// escapeReplacer doubles single quotes and escapes backslashes so a value is
// safe inside a single-quoted SQL literal. NUL bytes are dropped.
var escapeReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `''`,
	"\x00", "",
)

// Escape implements Store.
func (s *BunStore) Escape(value string) string {
	return escapeReplacer.Replace(value)
}

// UsersTable implements Store.
func (s *BunStore) UsersTable() string { return s.users }

// MetaTable implements Store.
func (s *BunStore) MetaTable() string { return s.meta }

// Query implements Store. The query text is executed exactly once; rows come
// back as column name to string value maps, with NULL rendered as the empty
// string.
func (s *BunStore) Query(ctx context.Context, query string) ([]map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		scan := make([]any, len(cols))
		for i := range values {
			scan[i] = &values[i]
		}

		if err := rows.Scan(scan...); err != nil {
			return nil, err
		}

		row := make(map[string]string, len(cols))
		for i, col := range cols {
			row[col] = values[i].String
		}
		out = append(out, row)
	}

	return out, rows.Err()
}
