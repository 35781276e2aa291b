package userquery

import (
	"testing"

	"github.com/fingerpaintmarketing/themekit/pkg/testsupport"
)

func TestBuildStatement_RenderGolden(t *testing.T) {
	store := &mockStore{}

	tests := []struct {
		name   string
		golden string
		fields []string
		filter Filter
		sort   Sort
	}{
		{
			name:   "extended filter and sort",
			golden: "extended_filter_and_sort.sql",
			fields: []string{"user_email", "first_name"},
			filter: Filter{Attribute: "subscribed", Operator: OpEqual, Value: "yes"},
			sort:   Sort{Attribute: "last_name", Direction: Asc},
		},
		{
			name:   "core only with random order",
			golden: "core_only_random.sql",
			fields: []string{"display_name"},
			filter: Filter{Attribute: "user_status", Operator: OpEqual, Value: "0"},
			sort:   Sort{Attribute: SortRandom},
		},
		{
			name:   "core filter with like",
			golden: "core_filter_like.sql",
			fields: []string{"user_login"},
			filter: Filter{Attribute: "user_email", Operator: OpLike, Value: "%@example.com"},
			sort:   DefaultSort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := buildStatement(store, tt.fields, tt.filter, tt.sort).render()
			testsupport.CompareWithGolden(t, testsupport.GoldenPath(tt.golden), []byte(sql))
		})
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "duplicates collapse to first occurrence",
			in:   []string{"a", "b", "a", "c", "b"},
			want: []string{"a", "b", "c"},
		},
		{
			name: "empty names dropped",
			in:   []string{"", "a", ""},
			want: []string{"a"},
		},
		{
			name: "already unique",
			in:   []string{"x", "y"},
			want: []string{"x", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupe(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("dedupe(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("dedupe(%v)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSanitizeIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "first_name", want: "first_name"},
		{in: "wp_users", want: "wp_users"},
		{in: "name; DROP--", want: "nameDROP"},
		{in: "with space", want: "withspace"},
		{in: "quoted'ident", want: "quotedident"},
	}

	for _, tt := range tests {
		if got := sanitizeIdent(tt.in); got != tt.want {
			t.Errorf("sanitizeIdent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsCoreAttribute(t *testing.T) {
	core := []string{"ID", "user_login", "user_email", "display_name", "user_registered"}
	for _, attr := range core {
		if !IsCoreAttribute(attr) {
			t.Errorf("expected %q to be a core attribute", attr)
		}
	}

	extended := []string{"first_name", "last_name", "subscribed", "id", "USER_EMAIL"}
	for _, attr := range extended {
		if IsCoreAttribute(attr) {
			t.Errorf("expected %q to be an extended attribute", attr)
		}
	}
}
