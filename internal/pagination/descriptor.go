// Package pagination keeps page/page-size state in sync with a count query and a
// windowed row query against a tabular data source.
package pagination

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrInvalidDescriptor is returned when a descriptor names something that is not a
// plain identifier. Sources build SQL from these names, so they must stay simple.
var ErrInvalidDescriptor = errors.New("pagination: invalid descriptor")

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Order is the sort clause of a descriptor. An empty Field means backend order.
type Order struct {
	Field     string `json:"field"`
	Ascending bool   `json:"ascending"`
}

// Descriptor identifies a queryable view: table, selected columns, equality filters
// and ordering. Treat it as a value; the With* methods return modified copies and
// never touch the receiver's filter map.
type Descriptor struct {
	Resource string
	Columns  string
	Filters  map[string]any
	OrderBy  Order
}

// NewDescriptor selects every column of resource with no filters.
func NewDescriptor(resource string) Descriptor {
	return Descriptor{Resource: resource, Columns: "*"}
}

func (d Descriptor) clone() Descriptor {
	out := d
	if d.Filters != nil {
		out.Filters = make(map[string]any, len(d.Filters))
		for k, v := range d.Filters {
			out.Filters[k] = v
		}
	}
	return out
}

func (d Descriptor) WithColumns(columns string) Descriptor {
	out := d.clone()
	out.Columns = columns
	return out
}

// WithFilter adds or replaces one equality filter. A nil value removes it.
func (d Descriptor) WithFilter(field string, value any) Descriptor {
	out := d.clone()
	if value == nil {
		delete(out.Filters, field)
		return out
	}
	if out.Filters == nil {
		out.Filters = map[string]any{}
	}
	out.Filters[field] = value
	return out
}

// WithFilters replaces the whole filter set.
func (d Descriptor) WithFilters(filters map[string]any) Descriptor {
	out := d.clone()
	out.Filters = nil
	for k, v := range filters {
		out = out.WithFilter(k, v)
	}
	return out
}

func (d Descriptor) WithOrder(field string, ascending bool) Descriptor {
	out := d.clone()
	out.OrderBy = Order{Field: field, Ascending: ascending}
	return out
}

// FilterFields returns filter keys in a stable order.
func (d Descriptor) FilterFields() []string {
	keys := make([]string, 0, len(d.Filters))
	for k := range d.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ColumnList splits Columns into trimmed names. "*" and "" both yield nil.
func (d Descriptor) ColumnList() []string {
	cols := strings.TrimSpace(d.Columns)
	if cols == "" || cols == "*" {
		return nil
	}
	var out []string
	for _, c := range strings.Split(cols, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Validate checks that every name in the descriptor is a plain identifier.
func (d Descriptor) Validate() error {
	if !identRe.MatchString(d.Resource) {
		return fmt.Errorf("%w: resource %q", ErrInvalidDescriptor, d.Resource)
	}
	for _, c := range d.ColumnList() {
		if !identRe.MatchString(c) {
			return fmt.Errorf("%w: column %q", ErrInvalidDescriptor, c)
		}
	}
	for _, f := range d.FilterFields() {
		if !identRe.MatchString(f) {
			return fmt.Errorf("%w: filter %q", ErrInvalidDescriptor, f)
		}
	}
	if d.OrderBy.Field != "" && !identRe.MatchString(d.OrderBy.Field) {
		return fmt.Errorf("%w: order %q", ErrInvalidDescriptor, d.OrderBy.Field)
	}
	return nil
}
