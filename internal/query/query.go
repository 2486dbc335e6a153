// Package query turns optional filter, sort and pagination parameters into
// a store query. Sort fields go through a closed allow-list: anything not
// in the map is rejected instead of being passed to the store verbatim.
package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Params is a resolved listing query: equality filters keyed by column,
// a safe ORDER BY clause, and coerced pagination.
type Params struct {
	Filters map[string]string
	Order   string
	Limit   int
	Offset  int
}

// Sort maps recognized sortBy names to store columns. Default is the
// column used (descending) when no sortBy is given.
type Sort struct {
	Default string
	Fields  map[string]string
}

// ComplaintSort is the allow-list for complaint listings.
var ComplaintSort = Sort{
	Default: "created_at",
	Fields: map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"status":    "status",
		"category":  "category",
		"priority":  "priority",
	},
}

// FraudSort is the allow-list for fraud listings.
var FraudSort = Sort{
	Default: "reported_date",
	Fields: map[string]string{
		"reportedDate":   "reported_date",
		"incidentDate":   "incident_date",
		"createdAt":      "created_at",
		"updatedAt":      "updated_at",
		"status":         "status",
		"fraudType":      "fraud_type",
		"severity":       "severity",
		"amountInvolved": "amount_involved",
	},
}

// Resolve builds the ORDER BY clause. Direction is ascending unless
// sortOrder is "desc"; an unrecognized sortBy is an error.
func (s Sort) Resolve(sortBy, sortOrder string) (string, error) {
	if sortBy == "" {
		return s.Default + " DESC", nil
	}
	col, ok := s.Fields[sortBy]
	if !ok {
		names := make([]string, 0, len(s.Fields))
		for name := range s.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", fmt.Errorf("sortBy must be one of: %s", strings.Join(names, ", "))
	}
	dir := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		dir = "DESC"
	}
	return col + " " + dir, nil
}

// Page coerces limit and offset to non-negative integers, falling back to
// defaultLimit when limit is absent or unparseable. No upper bound is
// enforced on limit here.
func Page(limit, offset string, defaultLimit int) (int, int) {
	l := defaultLimit
	if limit != "" {
		if v, err := strconv.Atoi(limit); err == nil && v >= 0 {
			l = v
		}
	}
	o := 0
	if offset != "" {
		if v, err := strconv.Atoi(offset); err == nil && v >= 0 {
			o = v
		}
	}
	return l, o
}
