package theme

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// Option renders an HTML <option> element, marked selected when value matches
// current under coercive equality: "1" matches 1, but "1" never matches "2".
// Value and text are HTML-escaped.
func Option(value string, text string, current any) string {
	var b strings.Builder
	b.WriteString(`<option value="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`"`)
	if looseEqual(value, current) {
		b.WriteString(` selected="selected"`)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(text))
	b.WriteString("</option>")
	return b.String()
}

// looseEqual compares two values the way form round-trips need: when both
// sides parse as numbers they compare numerically, otherwise their string
// forms compare exactly. The coercion is explicit rather than relying on any
// language-level loose operator, so the behavior stays portable.
func looseEqual(a string, b any) bool {
	bs := fmt.Sprintf("%v", b)

	af, aerr := strconv.ParseFloat(strings.TrimSpace(a), 64)
	bf, berr := strconv.ParseFloat(strings.TrimSpace(bs), 64)
	if aerr == nil && berr == nil {
		return af == bf
	}

	return a == bs
}
