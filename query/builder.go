// Package query accumulates join specifications, filter predicates, and
// ordering directives into a single parametrized SELECT statement.
//
// A SelectBuilder is owned exclusively by the call that creates it; it is
// not safe for concurrent mutation. Parameters are always bound by
// placeholder, never interpolated into the statement text.
package query

import (
	"strings"

	"github.com/xraykit/xraykit/errors"
)

// Cond is one equality-style predicate against a table (or join alias)
// column. Conds passed together to AddWhere compile to an OR disjunction.
type Cond struct {
	Table  string
	Column string
	Op     string
	Value  any
}

// Eq builds an equality condition.
func Eq(table, column string, value any) Cond {
	return Cond{Table: table, Column: column, Op: "=", Value: value}
}

type column struct {
	table string
	name  string
}

type join struct {
	table   string
	key     string
	from    string
	fromKey string
	alias   string
}

func (j join) clause() string {
	var sb strings.Builder
	sb.WriteString("JOIN ")
	sb.WriteString(j.table)
	if j.alias != j.table {
		sb.WriteString(" AS ")
		sb.WriteString(j.alias)
	}
	sb.WriteString(" ON ")
	sb.WriteString(j.alias)
	sb.WriteByte('.')
	sb.WriteString(j.key)
	sb.WriteString(" = ")
	sb.WriteString(j.from)
	sb.WriteByte('.')
	sb.WriteString(j.fromKey)
	return sb.String()
}

// SelectBuilder accumulates the fragments of one SELECT statement.
// The zero value is ready to use.
type SelectBuilder struct {
	distinct bool
	selects  []column
	froms    []string
	joins    []join
	wheres   [][]Cond
	orderBys []column
}

// NewSelectBuilder returns an empty builder.
func NewSelectBuilder() *SelectBuilder {
	return &SelectBuilder{}
}

// Distinct makes the statement a SELECT DISTINCT.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.distinct = true
	return b
}

// AddSelect appends a projected column.
func (b *SelectBuilder) AddSelect(table, name string) {
	b.selects = append(b.selects, column{table: table, name: name})
}

// AddFrom appends a base table.
func (b *SelectBuilder) AddFrom(table string) {
	for _, t := range b.froms {
		if t == table {
			return
		}
	}
	b.froms = append(b.froms, table)
}

// AddJoin appends a join of table on table.key = from.fromKey. An optional
// alias names the joined table; joining the same base table more than once
// requires distinct aliases. Re-adding an identical join is a no-op, but a
// join reusing an existing alias with a different key pair is rejected.
func (b *SelectBuilder) AddJoin(table, key, from, fromKey string, alias ...string) error {
	j := join{table: table, key: key, from: from, fromKey: fromKey, alias: table}
	if len(alias) > 0 && alias[0] != "" {
		j.alias = alias[0]
	}

	// A tautological self-join adds nothing to the statement.
	if j.alias == j.table && j.table == j.from && j.key == j.fromKey {
		return nil
	}

	for _, existing := range b.joins {
		if existing.alias != j.alias {
			continue
		}
		if existing == j {
			return nil
		}
		return errors.Newf("conflicting join for alias %q: have %s, adding %s",
			j.alias, existing.clause(), j.clause())
	}

	b.joins = append(b.joins, j)
	return nil
}

// AddWhere appends a filter. Multiple conditions compile to one
// parenthesized OR disjunction; successive AddWhere calls are ANDed.
func (b *SelectBuilder) AddWhere(alternatives ...Cond) error {
	if len(alternatives) == 0 {
		return errors.New("AddWhere requires at least one condition")
	}
	group := make([]Cond, len(alternatives))
	copy(group, alternatives)
	for i := range group {
		if group[i].Op == "" {
			group[i].Op = "="
		}
	}
	b.wheres = append(b.wheres, group)
	return nil
}

// AddOrderBy appends an ordering directive.
func (b *SelectBuilder) AddOrderBy(table, name string) {
	b.orderBys = append(b.orderBys, column{table: table, name: name})
}

// Build renders the accumulated statement and its positional parameters.
// Build does not mutate the builder: repeated calls without further
// mutation yield identical output.
func (b *SelectBuilder) Build() (string, []any, error) {
	if len(b.selects) == 0 {
		return "", nil, errors.New("no columns selected")
	}
	if len(b.froms) == 0 {
		return "", nil, errors.New("no FROM table")
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	if b.distinct {
		sb.WriteString("DISTINCT ")
	}
	for i, c := range b.selects {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.table)
		sb.WriteByte('.')
		sb.WriteString(c.name)
	}

	sb.WriteString(" FROM ")
	sb.WriteString(strings.Join(b.froms, ", "))

	for _, j := range b.joins {
		sb.WriteByte(' ')
		sb.WriteString(j.clause())
	}

	var args []any
	for i, group := range b.wheres {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		if len(group) > 1 {
			sb.WriteByte('(')
		}
		for k, cond := range group {
			if k > 0 {
				sb.WriteString(" OR ")
			}
			sb.WriteString(cond.Table)
			sb.WriteByte('.')
			sb.WriteString(cond.Column)
			sb.WriteByte(' ')
			sb.WriteString(cond.Op)
			sb.WriteString(" ?")
			args = append(args, cond.Value)
		}
		if len(group) > 1 {
			sb.WriteByte(')')
		}
	}

	for i, c := range b.orderBys {
		if i == 0 {
			sb.WriteString(" ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(c.table)
		sb.WriteByte('.')
		sb.WriteString(c.name)
	}

	return sb.String(), args, nil
}
