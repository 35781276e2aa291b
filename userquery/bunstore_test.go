package userquery

import "testing"

func TestBunStore_Escape(t *testing.T) {
	store := NewBunStore(nil)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain value", in: "yes", want: "yes"},
		{name: "single quote doubled", in: "O'Brien", want: "O''Brien"},
		{name: "backslash escaped", in: `a\b`, want: `a\\b`},
		{name: "nul byte dropped", in: "a\x00b", want: "ab"},
		{name: "injection payload neutralized", in: "' OR '1'='1", want: "'' OR ''1''=''1"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBunStore_DefaultTables(t *testing.T) {
	store := NewBunStore(nil)

	if got := store.UsersTable(); got != DefaultUsersTable {
		t.Errorf("UsersTable() = %q, want %q", got, DefaultUsersTable)
	}
	if got := store.MetaTable(); got != DefaultMetaTable {
		t.Errorf("MetaTable() = %q, want %q", got, DefaultMetaTable)
	}
}

func TestBunStore_WithTables(t *testing.T) {
	store := NewBunStore(nil, WithTables("wp_users", "wp_usermeta"))

	if got := store.UsersTable(); got != "wp_users" {
		t.Errorf("UsersTable() = %q, want %q", got, "wp_users")
	}
	if got := store.MetaTable(); got != "wp_usermeta" {
		t.Errorf("MetaTable() = %q, want %q", got, "wp_usermeta")
	}
}
