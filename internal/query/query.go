// Package query translates URL query strings into MongoDB list queries and
// executes them with a uniform pagination envelope.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Defaults applied when page/limit are missing or malformed.
const (
	DefaultPage  = 1
	DefaultLimit = 15
)

// control keys are stripped from the filter set before translation.
var controlKeys = map[string]bool{
	"select": true,
	"sort":   true,
	"page":   true,
	"limit":  true,
}

// operators maps the bracketed comparison suffixes to their MongoDB tokens.
var operators = map[string]string{
	"gt":  "$gt",
	"gte": "$gte",
	"lt":  "$lt",
	"lte": "$lte",
	"in":  "$in",
}

// ListQuery is an executable query descriptor built from a query string.
type ListQuery struct {
	Filter     bson.M
	Projection bson.M
	Sort       bson.D
	Page       int
	Limit      int
}

// ParseListQuery converts a flat query-string map into a structured
// filter/projection/sort/pagination request.
//
// Filter keys of the form field[op] with op in {gt,gte,lt,lte,in} become
// prefixed comparison operators; plain keys become exact-match equality.
// The operator suffix is parsed per field, not rewritten over the serialized
// filter, so literal values that happen to equal an operator word are left
// alone.
func ParseListQuery(values url.Values) *ListQuery {
	q := &ListQuery{
		Filter: bson.M{},
		Sort:   parseSort(values.Get("sort")),
		Page:   parsePositiveInt(values.Get("page"), DefaultPage),
		Limit:  parsePositiveInt(values.Get("limit"), DefaultLimit),
	}

	if sel := values.Get("select"); sel != "" {
		q.Projection = parseSelect(sel)
	}

	// Plain equality keys are applied before bracketed operators so that
	// combining both forms on one field resolves the same way regardless of
	// map iteration order: the equality folds into the operator document as
	// $eq instead of one form silently dropping the other.
	for key, vals := range values {
		if controlKeys[key] || len(vals) == 0 {
			continue
		}

		field, op := splitOperator(key)
		if field == "" || op != "" {
			continue
		}
		q.Filter[field] = coerce(vals[0])
	}

	for key, vals := range values {
		if controlKeys[key] || len(vals) == 0 {
			continue
		}

		field, op := splitOperator(key)
		if field == "" || op == "" {
			continue
		}

		cond, ok := q.Filter[field].(bson.M)
		if !ok {
			cond = bson.M{}
			if eq, present := q.Filter[field]; present {
				cond["$eq"] = eq
			}
			q.Filter[field] = cond
		}

		if op == "$in" {
			cond[op] = coerceList(vals)
		} else {
			cond[op] = coerce(vals[0])
		}
	}

	return q
}

// splitOperator splits "tuition[lte]" into ("tuition", "$lte"). A bracketed
// suffix that is not a recognized operator is treated as part of the field
// name, matching how an unknown operator would simply never match documents.
func splitOperator(key string) (field, op string) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, ""
	}

	suffix := key[open+1 : len(key)-1]
	if token, ok := operators[suffix]; ok {
		return key[:open], token
	}
	return key, ""
}

// coerce converts a query-string literal into the closest BSON-comparable
// type. MongoDB compares numeric types across int/double, so integers and
// decimals can share a representation safely.
func coerce(s string) interface{} {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// coerceList flattens repeated and comma-joined values into one $in list.
func coerceList(vals []string) []interface{} {
	var out []interface{}
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, coerce(part))
			}
		}
	}
	return out
}

// parseSelect converts a comma-joined field list into a projection document.
// Every list item is honored, not just the first.
func parseSelect(s string) bson.M {
	projection := bson.M{}
	for _, field := range strings.Split(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			projection[field] = 1
		}
	}
	return projection
}

// parseSort converts a comma-joined sort list ("-createdAt,name") into a
// sort document. Absent sort defaults to descending creation time.
func parseSort(s string) bson.D {
	if s == "" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}

	var sort bson.D
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if strings.HasPrefix(field, "-") {
			sort = append(sort, bson.E{Key: field[1:], Value: -1})
		} else {
			sort = append(sort, bson.E{Key: field, Value: 1})
		}
	}

	if len(sort) == 0 {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return sort
}

// parsePositiveInt coerces a string to a positive integer, falling back to
// the default on malformed or non-positive input. Never panics.
func parsePositiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
