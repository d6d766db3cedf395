// Package stats contains the quality metrics pipeline and its text rendering.
package stats

import (
	"github.com/verte-zerg/qcdash/internal/model"
)

// Filter returns the records of table that satisfy criteria, in source order.
// An empty operator set yields an empty view; an empty location set applies no
// location restriction.
func Filter(table model.Table, criteria model.FilterCriteria) model.Table {
	view := model.Table{Columns: table.Columns}
	if len(criteria.Operators) == 0 {
		return view
	}
	operators := toSet(criteria.Operators)
	locations := toSet(criteria.DefectLocations)

	for _, r := range table.Records {
		day := model.DateOf(r.Timestamp)
		if day.Before(criteria.StartDate) || day.After(criteria.EndDate) {
			continue
		}
		if _, ok := operators[r.Operator]; !ok {
			continue
		}
		if len(locations) > 0 {
			if _, ok := locations[r.DefectLocation]; !ok {
				continue
			}
		}
		view.Records = append(view.Records, r)
	}
	return view
}

// DefaultCriteria selects the whole table: its full date range, every operator,
// and no location restriction.
func DefaultCriteria(table model.Table) model.FilterCriteria {
	first, last, _ := table.DateRange()
	return model.FilterCriteria{
		StartDate: first,
		EndDate:   last,
		Operators: table.Operators(),
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
