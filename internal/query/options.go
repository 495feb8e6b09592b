package query

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// fieldPattern rejects anything that could smuggle SQL through a sort or
// select parameter.
var fieldPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.]*$`)

// SortField is one ordering rule.
type SortField struct {
	Column string
	Desc   bool
}

// Options are the pagination, ordering, projection and eager-load settings
// parsed from a list request. Parsing is deterministic: identical query
// strings always produce identical Options.
type Options struct {
	Page     int
	Limit    int
	Sort     []SortField
	Select   []string
	Populate []string
}

// Offset is the number of rows to skip for the requested page.
func (o Options) Offset() int {
	return (o.Page - 1) * o.Limit
}

// ParseOptions reads limit, page, sort, select and populate from query
// parameters. Missing sort falls back to defaultSort when given, otherwise
// newest first; any direction token other than "asc" sorts descending. The
// password column can never be selected. Missing populate falls back to
// defaultPopulate.
func ParseOptions(params url.Values, defaultLimit int, defaultPopulate []string, defaultSort ...SortField) Options {
	opts := Options{
		Page:     1,
		Limit:    defaultLimit,
		Populate: defaultPopulate,
	}

	if v, err := strconv.Atoi(params.Get("page")); err == nil && v > 0 {
		opts.Page = v
	}
	if v, err := strconv.Atoi(params.Get("limit")); err == nil && v > 0 {
		opts.Limit = v
	}

	if raw := params.Get("sort"); raw != "" {
		for _, rule := range strings.Split(raw, ",") {
			field, direction, _ := strings.Cut(rule, ":")
			field = strings.TrimSpace(field)
			direction = strings.TrimSpace(direction)
			if field == "" || !fieldPattern.MatchString(field) {
				continue
			}
			opts.Sort = append(opts.Sort, SortField{
				Column: columnName(field),
				Desc:   direction != "asc",
			})
		}
	}
	if len(opts.Sort) == 0 {
		if len(defaultSort) > 0 {
			opts.Sort = append([]SortField(nil), defaultSort...)
		} else {
			opts.Sort = []SortField{{Column: "created_at", Desc: true}}
		}
	}

	if raw := params.Get("select"); raw != "" {
		for _, field := range strings.Split(raw, ",") {
			field = strings.TrimSpace(field)
			if field == "" || !fieldPattern.MatchString(field) {
				continue
			}
			col := columnName(field)
			if col == "password" {
				continue
			}
			opts.Select = append(opts.Select, col)
		}
	}

	if raw := params.Get("populate"); raw != "" {
		opts.Populate = nil
		for _, rel := range strings.Split(raw, ",") {
			rel = strings.TrimSpace(rel)
			if rel != "" {
				opts.Populate = append(opts.Populate, rel)
			}
		}
	}

	return opts
}

// Qualify prefixes unqualified sort columns with a table name, needed when
// the list query joins tables sharing column names.
func (o Options) Qualify(table string) Options {
	sorted := make([]SortField, len(o.Sort))
	for i, s := range o.Sort {
		if !strings.Contains(s.Column, ".") {
			s.Column = table + "." + s.Column
		}
		sorted[i] = s
	}
	o.Sort = sorted
	return o
}

// ApplyOrder adds the ORDER BY clauses to a GORM query.
func (o Options) ApplyOrder(db *gorm.DB) *gorm.DB {
	for _, s := range o.Sort {
		direction := " ASC"
		if s.Desc {
			direction = " DESC"
		}
		db = db.Order(s.Column + direction)
	}
	return db
}

// ApplyPage adds OFFSET/LIMIT to a GORM query.
func (o Options) ApplyPage(db *gorm.DB) *gorm.DB {
	return db.Offset(o.Offset()).Limit(o.Limit)
}

// ApplySelect adds the projection, when one was requested.
func (o Options) ApplySelect(db *gorm.DB) *gorm.DB {
	if len(o.Select) == 0 {
		return db
	}
	cols := make([]string, len(o.Select))
	copy(cols, o.Select)
	return db.Select(cols)
}

// columnName converts a camelCase request field to its snake_case column.
func columnName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
