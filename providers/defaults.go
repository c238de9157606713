package providers

import (
	"database/sql"
	"strings"
)

// TranslateDefault converts a raw DATA_DEFAULT expression into a deferred literal.
// Expressions containing a double quote are treated as SQL rather than literals and dropped.
func TranslateDefault(raw sql.NullString) DefaultValue {
	if !raw.Valid || strings.Contains(raw.String, `"`) {
		return DefaultValue{}
	}

	value := strings.TrimSpace(raw.String)
	if value == "" {
		return DefaultValue{}
	}
	// some catalog versions pad the expression with one trailing space
	value = strings.TrimSuffix(value, " ")

	return Literal(value)
}
