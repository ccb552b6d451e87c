package searches

import (
	"net/url"
	"strings"
)

// reserved query keys that never become filter clauses
const (
	paramQuery   = "query"
	paramPerPage = "per_page"
)

// FilterParam is one request query parameter destined for the search engine
// filter expression: the field name and the raw, still comma-packed value.
type FilterParam struct {
	Field string
	Raw   string
}

// ParseFilterParams extracts filter parameters from a raw query string,
// preserving the order the client sent them in. url.Values cannot be used
// here because clause order must follow parameter order.
func ParseFilterParams(rawQuery string) []FilterParam {
	var params []FilterParam
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		field, err := url.QueryUnescape(key)
		if err != nil {
			field = key
		}
		raw, err := url.QueryUnescape(value)
		if err != nil {
			raw = value
		}
		if field == paramQuery || field == paramPerPage {
			continue
		}
		params = append(params, FilterParam{Field: field, Raw: raw})
	}
	return params
}

// BuildFilterExpression turns filter parameters into a single engine filter
// string. Each raw value is split on ",": one token means an equality clause;
// with two or more tokens the second is taken verbatim as the comparator and
// any further tokens are dropped. No comparator whitelist is enforced.
// Clauses render as <field><comparator><value> and join with " AND ".
func BuildFilterExpression(params []FilterParam) string {
	var sb strings.Builder
	for i, param := range params {
		tokens := strings.Split(param.Raw, ",")
		comparator := "="
		if len(tokens) > 1 {
			comparator = tokens[1]
		}
		sb.WriteString(param.Field)
		sb.WriteString(comparator)
		sb.WriteString(tokens[0])
		if i < len(params)-1 {
			sb.WriteString(" AND ")
		}
	}
	return sb.String()
}
