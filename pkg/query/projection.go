package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps logical field names to qualified SQL columns for a
// single aliased table.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	fields  map[string]string
}

// NewProjectionMap creates a projection over schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project adds column under the logical field name. Columns are selected in
// the order they are projected.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, qualified)
	p.fields[field] = qualified
	return p
}

// Table returns the aliased table reference for a FROM clause.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Columns returns the comma-separated select list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// Column returns the qualified column for field, or "" when unknown.
func (p *ProjectionMap) Column(field string) string {
	return p.fields[field]
}

// HasField reports whether field is projected.
func (p *ProjectionMap) HasField(field string) bool {
	_, ok := p.fields[field]
	return ok
}
