// Package project computes the visible task sequence from the canonical
// collection. Projection is a pure function: it never mutates its input and
// always yields the same sequence for the same input.
package project

import (
	"sort"
	"strings"

	"ticklist/internal/model"
)

// Order names the sort direction by what it does to the list.
type Order string

const (
	OrderHighFirst Order = "high_first"
	OrderLowFirst  Order = "low_first"
)

func (o Order) Toggle() Order {
	if o == OrderHighFirst {
		return OrderLowFirst
	}
	return OrderHighFirst
}

type Params struct {
	Filter model.Filter
	Query  string
	Order  Order
}

func DefaultParams() Params {
	return Params{Filter: model.FilterAll, Order: OrderHighFirst}
}

// Entry is one visible row, remembering where its task lives in the
// canonical collection at projection time.
type Entry struct {
	Task           model.Task
	CanonicalIndex int
}

// Project filters tasks by p.Filter, narrows by case-insensitive substring
// match on title when p.Query is non-empty, and sorts by priority ordinal.
// Equal priorities keep their canonical relative order regardless of
// direction, so repeated re-projection never drifts.
func Project(tasks []model.Task, p Params) []Entry {
	query := strings.ToLower(strings.TrimSpace(p.Query))

	out := make([]Entry, 0, len(tasks))
	for i, t := range tasks {
		if !p.Filter.Matches(t) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		out = append(out, Entry{Task: t, CanonicalIndex: i})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Task.Priority != b.Task.Priority {
			if p.Order == OrderLowFirst {
				return a.Task.Priority < b.Task.Priority
			}
			return a.Task.Priority > b.Task.Priority
		}
		return a.CanonicalIndex < b.CanonicalIndex
	})
	return out
}
