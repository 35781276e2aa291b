package theme

import (
	"strings"
	"testing"
)

func TestOption_SelectionUsesCoerciveEquality(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		current      any
		wantSelected bool
	}{
		{name: "string vs int match", value: "1", current: 1, wantSelected: true},
		{name: "string vs string mismatch", value: "1", current: "2", wantSelected: false},
		{name: "exact string match", value: "red", current: "red", wantSelected: true},
		{name: "string mismatch", value: "red", current: "blue", wantSelected: false},
		{name: "float vs int string", value: "1.0", current: 1, wantSelected: true},
		{name: "int vs float", value: "2", current: 2.0, wantSelected: true},
		{name: "numeric mismatch", value: "2", current: 3, wantSelected: false},
		{name: "empty vs zero", value: "", current: 0, wantSelected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Option(tt.value, "label", tt.current)

			selected := strings.Contains(got, `selected="selected"`)
			if selected != tt.wantSelected {
				t.Errorf("Option(%q, _, %v) selected = %v, want %v\nmarkup: %s",
					tt.value, tt.current, selected, tt.wantSelected, got)
			}
		})
	}
}

func TestOption_Markup(t *testing.T) {
	got := Option("1", "One", 1)
	want := `<option value="1" selected="selected">One</option>`
	if got != want {
		t.Errorf("Option() = %q, want %q", got, want)
	}

	got = Option("1", "One", "2")
	want = `<option value="1">One</option>`
	if got != want {
		t.Errorf("Option() = %q, want %q", got, want)
	}
}

func TestOption_EscapesValueAndText(t *testing.T) {
	got := Option(`a"b`, "Fish & Chips <hot>", nil)
	want := `<option value="a&#34;b">Fish &amp; Chips &lt;hot&gt;</option>`
	if got != want {
		t.Errorf("Option() = %q, want %q", got, want)
	}
}

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    any
		want bool
	}{
		{name: "numeric string vs int", a: "1", b: 1, want: true},
		{name: "padded numeric", a: " 7 ", b: 7, want: true},
		{name: "different numbers", a: "1", b: "2", want: false},
		{name: "non-numeric exact", a: "abc", b: "abc", want: true},
		{name: "non-numeric different", a: "abc", b: "abd", want: false},
		{name: "number vs word", a: "1", b: "one", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looseEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("looseEqual(%q, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

