package pocketbase

import "strings"

// Filter is a parameterized query filter for the store's filter
// language. Values are escaped at build time so user input can never
// change the filter structure.
type Filter struct {
	expr string
}

var filterEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// FieldContains matches records whose field contains the value
// (case-insensitive substring, PocketBase "~" operator).
func FieldContains(field, value string) Filter {
	return Filter{expr: field + ` ~ "` + filterEscaper.Replace(value) + `"`}
}

// AnyFieldContains ORs a substring match across several fields.
func AnyFieldContains(value string, fields ...string) Filter {
	if len(fields) == 0 {
		return Filter{}
	}
	parts := make([]string, 0, len(fields))
	escaped := filterEscaper.Replace(value)
	for _, field := range fields {
		parts = append(parts, field+` ~ "`+escaped+`"`)
	}
	return Filter{expr: strings.Join(parts, " || ")}
}

// IsZero reports whether the filter is empty.
func (f Filter) IsZero() bool {
	return f.expr == ""
}

// String renders the filter expression.
func (f Filter) String() string {
	return f.expr
}
