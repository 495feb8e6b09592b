package query

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type cond struct {
	expr string
	args []interface{}
}

// Filter is an immutable conjunction of conditions. Every With* method
// returns a new value; a parameter that is absent or empty adds no
// condition at all, never an empty-string match.
type Filter struct {
	conds []cond
}

func (f Filter) with(expr string, args ...interface{}) Filter {
	next := make([]cond, len(f.conds), len(f.conds)+1)
	copy(next, f.conds)
	next = append(next, cond{expr: expr, args: args})
	return Filter{conds: next}
}

// With adds a raw condition for the cases the typed combinators do not
// cover, such as OR-ing with a NULL check across a join.
func (f Filter) With(expr string, args ...interface{}) Filter {
	return f.with(expr, args...)
}

// WithEqual constrains column to an exact value; empty strings are ignored.
func (f Filter) WithEqual(column, value string) Filter {
	if value == "" {
		return f
	}
	return f.with(column+" = ?", value)
}

// WithID constrains column to an id value of any type.
func (f Filter) WithID(column string, id interface{}) Filter {
	return f.with(column+" = ?", id)
}

// WithBool constrains column to a boolean.
func (f Filter) WithBool(column string, value bool) Filter {
	return f.with(column+" = ?", value)
}

// WithDateRange applies independent >= / <= bounds; either may be nil.
func (f Filter) WithDateRange(column string, from, to *time.Time) Filter {
	if from != nil {
		f = f.with(column+" >= ?", *from)
	}
	if to != nil {
		f = f.with(column+" <= ?", *to)
	}
	return f
}

// WithTextSearch adds a case-insensitive substring match ORed across the
// given columns.
func (f Filter) WithTextSearch(columns []string, term string) Filter {
	if term == "" || len(columns) == 0 {
		return f
	}
	parts := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	pattern := "%" + strings.ToLower(term) + "%"
	for i, col := range columns {
		parts[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return f.with("("+strings.Join(parts, " OR ")+")", args...)
}

// Empty reports whether no condition has been added.
func (f Filter) Empty() bool {
	return len(f.conds) == 0
}

// Apply adds all conditions to a GORM query.
func (f Filter) Apply(db *gorm.DB) *gorm.DB {
	for _, c := range f.conds {
		db = db.Where(c.expr, c.args...)
	}
	return db
}
