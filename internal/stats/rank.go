package stats

import (
	"sort"

	"github.com/verte-zerg/qcdash/internal/model"
)

// TopDefectTypes returns the n most frequent defect types. NoDefect and blank
// values are not categories.
func TopDefectTypes(view model.Table, n int) []model.RankedItem {
	return truncate(rankDefectTypes(view), n)
}

// TopLocations returns the n most frequent defect locations, ignoring blanks.
func TopLocations(view model.Table, n int) []model.RankedItem {
	ranked := rankBy(view, func(r model.Record) string {
		return r.DefectLocation
	})
	return truncate(ranked, n)
}

// ParetoAnalysis ranks every defect type and attaches the cumulative share of
// all defect counts. The last row is always exactly 100.
func ParetoAnalysis(view model.Table) []model.ParetoRow {
	ranked := rankDefectTypes(view)
	if len(ranked) == 0 {
		return nil
	}
	total := 0
	for _, item := range ranked {
		total += item.Count
	}
	rows := make([]model.ParetoRow, 0, len(ranked))
	running := 0
	for _, item := range ranked {
		running += item.Count
		rows = append(rows, model.ParetoRow{
			Category:          item.Category,
			Count:             item.Count,
			CumulativePercent: float64(running) / float64(total) * 100,
		})
	}
	return rows
}

func rankDefectTypes(view model.Table) []model.RankedItem {
	return rankBy(view, func(r model.Record) string {
		if r.DefectType == model.NoDefect {
			return ""
		}
		return r.DefectType
	})
}

// rankBy counts non-empty keys and sorts them by count descending, ties by
// category ascending.
func rankBy(view model.Table, key func(model.Record) string) []model.RankedItem {
	counts := map[string]int{}
	for _, r := range view.Records {
		k := key(r)
		if k == "" {
			continue
		}
		counts[k]++
	}
	items := make([]model.RankedItem, 0, len(counts))
	for category, count := range counts {
		items = append(items, model.RankedItem{Category: category, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Category < items[j].Category
		}
		return items[i].Count > items[j].Count
	})
	return items
}

func truncate(items []model.RankedItem, n int) []model.RankedItem {
	if n <= 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
