package stats

import (
	"reflect"
	"slices"
	"testing"

	"github.com/verte-zerg/qcdash/internal/model"
)

func TestFilterDefaultCriteriaKeepsEverything(t *testing.T) {
	table := testTable(t)
	criteria := DefaultCriteria(table)

	if criteria.StartDate.String() != "2024-03-01" || criteria.EndDate.String() != "2024-03-03" {
		t.Fatalf("unexpected default range %s..%s", criteria.StartDate, criteria.EndDate)
	}
	if len(criteria.Operators) != 3 {
		t.Fatalf("expected 3 operators, got %v", criteria.Operators)
	}
	if len(criteria.DefectLocations) != 0 {
		t.Fatalf("expected no location restriction, got %v", criteria.DefectLocations)
	}
	view := Filter(table, criteria)
	if view.Len() != table.Len() {
		t.Fatalf("expected %d records, got %d", table.Len(), view.Len())
	}
}

func TestFilterByOperator(t *testing.T) {
	table := testTable(t)
	criteria := DefaultCriteria(table)
	criteria.Operators = []string{"Anna"}

	view := Filter(table, criteria)
	if view.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", view.Len())
	}
	for _, r := range view.Records {
		if r.Operator != "Anna" {
			t.Fatalf("unexpected operator %q", r.Operator)
		}
	}
}

func TestFilterByDateIsInclusive(t *testing.T) {
	table := testTable(t)
	criteria := DefaultCriteria(table)
	criteria.StartDate = date(t, "2024-03-02")
	criteria.EndDate = date(t, "2024-03-02")

	view := Filter(table, criteria)
	if view.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", view.Len())
	}
}

func TestFilterByLocationDropsBlankLocations(t *testing.T) {
	table := testTable(t)
	criteria := DefaultCriteria(table)
	criteria.DefectLocations = []string{"Front"}

	view := Filter(table, criteria)
	if view.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", view.Len())
	}
	for _, r := range view.Records {
		if r.DefectLocation != "Front" {
			t.Fatalf("unexpected location %q", r.DefectLocation)
		}
	}
	if m := ComputeMetrics(view); m.FPY != 0 {
		t.Fatalf("expected FPY 0 for a location-only view, got %.2f", m.FPY)
	}
}

func TestFilterEmptyOperatorsYieldsEmptyView(t *testing.T) {
	table := testTable(t)
	criteria := DefaultCriteria(table)
	criteria.Operators = []string{}

	view := Filter(table, criteria)
	if view.Len() != 0 {
		t.Fatalf("expected empty view, got %d records", view.Len())
	}
	if len(view.Columns) != len(table.Columns) {
		t.Fatalf("expected columns to be kept")
	}
}

func TestFilterUnknownOperator(t *testing.T) {
	table := testTable(t)
	criteria := DefaultCriteria(table)
	criteria.Operators = []string{"Nobody"}

	if view := Filter(table, criteria); view.Len() != 0 {
		t.Fatalf("expected empty view, got %d records", view.Len())
	}
}

func TestFilterPreservesSourceOrder(t *testing.T) {
	table := testTable(t)
	criteria := DefaultCriteria(table)
	criteria.Operators = []string{"Jan", "Ewa"}

	view := Filter(table, criteria)
	next := 0
	for _, r := range view.Records {
		found := false
		for next < len(table.Records) {
			candidate := table.Records[next]
			next++
			if candidate.Timestamp.Equal(r.Timestamp) && candidate.Operator == r.Operator {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("record %v is out of source order", r.Timestamp)
		}
	}
}

func TestFilterEmptyTable(t *testing.T) {
	table := model.Table{Columns: testColumns}
	criteria := DefaultCriteria(table)
	if criteria.Operators != nil && len(criteria.Operators) != 0 {
		t.Fatalf("expected no operators, got %v", criteria.Operators)
	}
	if view := Filter(table, criteria); view.Len() != 0 {
		t.Fatalf("expected empty view")
	}
}

func matchesCriteria(r model.Record, c model.FilterCriteria) bool {
	d := model.DateOf(r.Timestamp)
	if d.Before(c.StartDate) || d.After(c.EndDate) {
		return false
	}
	if !slices.Contains(c.Operators, r.Operator) {
		return false
	}
	return len(c.DefectLocations) == 0 || slices.Contains(c.DefectLocations, r.DefectLocation)
}

func TestFilterKeepsExactlyMatchingRecords(t *testing.T) {
	table := testTable(t)
	cases := []struct {
		name      string
		from, to  string
		operators []string
		locations []string
		want      int
	}{
		{"all dimensions", "2024-03-01", "2024-03-02", []string{"Anna", "Jan"}, []string{"Front", "Rear"}, 3},
		{"single day", "2024-03-03", "2024-03-03", []string{"Jan"}, []string{"Front"}, 1},
		{"no location filter", "2024-03-02", "2024-03-03", []string{"Ewa", "Jan"}, nil, 4},
		{"range outside data", "2024-04-01", "2024-04-30", []string{"Anna", "Jan", "Ewa"}, nil, 0},
		{"unknown location", "2024-03-01", "2024-03-03", []string{"Anna"}, []string{"Top"}, 0},
		{"inverted range", "2024-03-03", "2024-03-01", []string{"Anna", "Jan", "Ewa"}, nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			criteria := model.FilterCriteria{
				StartDate:       date(t, tc.from),
				EndDate:         date(t, tc.to),
				Operators:       tc.operators,
				DefectLocations: tc.locations,
			}
			view := Filter(table, criteria)
			if view.Len() != tc.want {
				t.Fatalf("expected %d records, got %d", tc.want, view.Len())
			}
			if !reflect.DeepEqual(view.Columns, table.Columns) {
				t.Fatalf("columns changed: %v", view.Columns)
			}
			next := 0
			for i, r := range table.Records {
				if !matchesCriteria(r, criteria) {
					continue
				}
				if next >= view.Len() {
					t.Fatalf("record %d matches but is missing from the view", i)
				}
				if !reflect.DeepEqual(view.Records[next], r) {
					t.Fatalf("record %d: got %+v, want %+v", i, view.Records[next], r)
				}
				next++
			}
			if next != view.Len() {
				t.Fatalf("view holds %d records that do not match", view.Len()-next)
			}
			if again := Filter(view, criteria); !reflect.DeepEqual(again, view) {
				t.Fatalf("filtering the view again changed it")
			}
		})
	}
}
