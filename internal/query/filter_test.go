package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilter_AbsentParamsAddNothing(t *testing.T) {
	f := Filter{}.
		WithEqual("gender", "").
		WithTextSearch([]string{"first_name"}, "").
		WithDateRange("created_at", nil, nil)

	assert.True(t, f.Empty())
}

func TestFilter_WithEqual(t *testing.T) {
	f := Filter{}.WithEqual("gender", "F")
	assert.False(t, f.Empty())
	assert.Len(t, f.conds, 1)
	assert.Equal(t, "gender = ?", f.conds[0].expr)
	assert.Equal(t, []interface{}{"F"}, f.conds[0].args)
}

func TestFilter_WithDateRangeIndependentBounds(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	onlyFrom := Filter{}.WithDateRange("created_at", &from, nil)
	assert.Len(t, onlyFrom.conds, 1)
	assert.Equal(t, "created_at >= ?", onlyFrom.conds[0].expr)

	onlyTo := Filter{}.WithDateRange("created_at", nil, &to)
	assert.Len(t, onlyTo.conds, 1)
	assert.Equal(t, "created_at <= ?", onlyTo.conds[0].expr)

	both := Filter{}.WithDateRange("created_at", &from, &to)
	assert.Len(t, both.conds, 2)
}

func TestFilter_WithTextSearchORsColumns(t *testing.T) {
	f := Filter{}.WithTextSearch([]string{"first_name", "last_name", "email"}, "Ana")

	assert.Len(t, f.conds, 1)
	assert.Equal(t,
		"(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?)",
		f.conds[0].expr)
	assert.Equal(t, []interface{}{"%ana%", "%ana%", "%ana%"}, f.conds[0].args)
}

func TestFilter_Immutable(t *testing.T) {
	base := Filter{}.WithBool("deleted", false)

	withSearch := base.WithTextSearch([]string{"title"}, "about")
	withDate := base.WithDateRange("created_at", nil, nil)

	assert.Len(t, base.conds, 1)
	assert.Len(t, withSearch.conds, 2)
	assert.Len(t, withDate.conds, 1)
}

func TestFilter_DeterministicOrder(t *testing.T) {
	build := func() Filter {
		return Filter{}.
			WithBool("deleted", false).
			WithEqual("gender", "M").
			WithTextSearch([]string{"first_name"}, "jo")
	}

	a, b := build(), build()
	assert.Equal(t, a, b)
	for i := range a.conds {
		assert.Equal(t, a.conds[i].expr, b.conds[i].expr)
	}
}
