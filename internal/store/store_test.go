package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/verte-zerg/qcdash/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "exports.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func testView() model.Table {
	columns := []string{
		model.ColumnTimestamp, model.ColumnOperator, model.ColumnDefectLocation, model.ColumnDefectType, "Uwagi",
	}
	first := time.Date(2024, 3, 1, 8, 15, 0, 0, time.UTC)
	second := time.Date(2024, 3, 2, 9, 30, 5, 0, time.UTC)
	return model.Table{
		Columns: columns,
		Records: []model.Record{
			{
				Timestamp:  first,
				Operator:   "Łukasz",
				DefectType: "-",
				Cells:      []string{first.Format(model.TimestampLayout), "Łukasz", "", "-", ""},
			},
			{
				Timestamp:      second,
				Operator:       "Anna",
				DefectLocation: "Przód",
				DefectType:     "Rysa",
				Cells:          []string{second.Format(model.TimestampLayout), "Anna", "Przód", "Rysa", "powtórka"},
			},
		},
	}
}

func testCriteria(t *testing.T) model.FilterCriteria {
	t.Helper()
	start, err := model.ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	end, err := model.ParseDate("2024-03-31")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return model.FilterCriteria{
		StartDate:       start,
		EndDate:         end,
		Operators:       []string{"Anna", "Łukasz"},
		DefectLocations: []string{"Przód"},
	}
}

func TestSaveAndLoadExport(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	view := testView()
	criteria := testCriteria(t)

	exp, err := st.SaveExport(ctx, "dane.xlsx", criteria, view)
	if err != nil {
		t.Fatalf("save export: %v", err)
	}
	if len(exp.ID) != 36 {
		t.Fatalf("expected uuid id, got %q", exp.ID)
	}
	if exp.RowCount != 2 {
		t.Fatalf("expected 2 rows, got %d", exp.RowCount)
	}

	loaded, table, err := st.LoadExport(ctx, exp.ID)
	if err != nil {
		t.Fatalf("load export: %v", err)
	}
	if loaded.Source != "dane.xlsx" || loaded.RowCount != 2 {
		t.Fatalf("unexpected export meta: %+v", loaded)
	}
	if !reflect.DeepEqual(loaded.Criteria, criteria) {
		t.Fatalf("criteria mismatch: %+v vs %+v", loaded.Criteria, criteria)
	}
	if !reflect.DeepEqual(table.Columns, view.Columns) {
		t.Fatalf("columns mismatch: %v", table.Columns)
	}
	if len(table.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(table.Records))
	}
	for i, r := range table.Records {
		want := view.Records[i]
		if !r.Timestamp.Equal(want.Timestamp) || r.Operator != want.Operator ||
			r.DefectLocation != want.DefectLocation || r.DefectType != want.DefectType {
			t.Fatalf("record %d mismatch: %+v vs %+v", i, r, want)
		}
		if !reflect.DeepEqual(r.Cells, want.Cells) {
			t.Fatalf("cells %d mismatch: %v vs %v", i, r.Cells, want.Cells)
		}
	}
}

func TestSaveExportAppends(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	st.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}

	first, err := st.SaveExport(ctx, "a.xlsx", testCriteria(t), testView())
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	second, err := st.SaveExport(ctx, "a.xlsx", model.FilterCriteria{}, model.Table{Columns: testView().Columns})
	if err != nil {
		t.Fatalf("save second: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids")
	}

	exports, err := st.ListExports(ctx)
	if err != nil {
		t.Fatalf("list exports: %v", err)
	}
	if len(exports) != 2 {
		t.Fatalf("expected 2 exports, got %d", len(exports))
	}
	if exports[0].ID != first.ID || exports[1].ID != second.ID {
		t.Fatalf("unexpected order: %s, %s", exports[0].ID, exports[1].ID)
	}
	if exports[1].RowCount != 0 || !exports[1].Criteria.StartDate.IsZero() {
		t.Fatalf("unexpected empty export: %+v", exports[1])
	}
	if !exports[0].CreatedAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("unexpected created_at %v", exports[0].CreatedAt)
	}
}

func TestLoadExportNotFound(t *testing.T) {
	st := openTestStore(t)
	_, _, err := st.LoadExport(context.Background(), "missing")
	if !errors.Is(err, ErrExportNotFound) {
		t.Fatalf("expected ErrExportNotFound, got %v", err)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports.db")
	for i := 0; i < 2; i++ {
		st, err := Open(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		if err := st.Close(); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
	}
}
