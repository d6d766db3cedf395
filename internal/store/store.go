// Package store handles SQLite persistence of filtered exports.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/qcdash/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrExportNotFound is returned when an export id is unknown.
var ErrExportNotFound = errors.New("export not found")

// Store wraps SQLite access for exported views.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Export describes one saved filtered view.
type Export struct {
	ID        string
	CreatedAt time.Time
	Source    string
	Criteria  model.FilterCriteria
	Columns   []string
	RowCount  int
}

type criteriaJSON struct {
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	Operators       []string `json:"operators"`
	DefectLocations []string `json:"defect_locations"`
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS exports (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			source TEXT NOT NULL,
			criteria TEXT NOT NULL,
			columns TEXT NOT NULL,
			row_count INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS export_rows (
			export_id TEXT NOT NULL,
			row_num INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			operator TEXT NOT NULL,
			defect_location TEXT NOT NULL,
			defect_type TEXT NOT NULL,
			cells TEXT NOT NULL,
			PRIMARY KEY (export_id, row_num)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_exports_created_at ON exports(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveExport stores the filtered view under a new export id.
func (s *Store) SaveExport(ctx context.Context, source string, criteria model.FilterCriteria, view model.Table) (Export, error) {
	exp := Export{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Source:    source,
		Criteria:  criteria,
		Columns:   view.Columns,
		RowCount:  view.Len(),
	}
	criteriaText, err := encodeCriteria(criteria)
	if err != nil {
		return Export{}, err
	}
	columnsText, err := json.Marshal(view.Columns)
	if err != nil {
		return Export{}, fmt.Errorf("failed to encode columns: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Export{}, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO exports (id, created_at, source, criteria, columns, row_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		exp.ID,
		exp.CreatedAt.Format(time.RFC3339Nano),
		exp.Source,
		criteriaText,
		string(columnsText),
		exp.RowCount,
	)
	if err != nil {
		return Export{}, err
	}

	if len(view.Records) > 0 {
		var stmt *sql.Stmt
		stmt, err = tx.PrepareContext(ctx,
			`INSERT INTO export_rows (export_id, row_num, timestamp, operator, defect_location, defect_type, cells)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return Export{}, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, r := range view.Records {
			var cells []byte
			cells, err = json.Marshal(r.Cells)
			if err != nil {
				return Export{}, fmt.Errorf("failed to encode row %d: %w", i+1, err)
			}
			if _, err = stmt.ExecContext(ctx, exp.ID, i+1,
				r.Timestamp.Format(model.TimestampLayout),
				r.Operator, r.DefectLocation, r.DefectType, string(cells)); err != nil {
				return Export{}, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return Export{}, err
	}
	return exp, nil
}

// ListExports returns saved exports, oldest first.
func (s *Store) ListExports(ctx context.Context) ([]Export, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, source, criteria, columns, row_count
		FROM exports
		ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var exports []Export
	for rows.Next() {
		exp, err := scanExport(rows)
		if err != nil {
			return nil, err
		}
		exports = append(exports, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exports, nil
}

// LoadExport reads a saved export back as a table in its original row order.
func (s *Store) LoadExport(ctx context.Context, id string) (Export, model.Table, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, source, criteria, columns, row_count FROM exports WHERE id = ?`, id)
	exp, err := scanExport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Export{}, model.Table{}, fmt.Errorf("%w: %s", ErrExportNotFound, id)
	}
	if err != nil {
		return Export{}, model.Table{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT timestamp, operator, defect_location, defect_type, cells
		FROM export_rows
		WHERE export_id = ?
		ORDER BY row_num ASC`, id)
	if err != nil {
		return Export{}, model.Table{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	table := model.Table{Columns: exp.Columns}
	for rows.Next() {
		var r model.Record
		var ts, cells string
		if err := rows.Scan(&ts, &r.Operator, &r.DefectLocation, &r.DefectType, &cells); err != nil {
			return Export{}, model.Table{}, err
		}
		r.Timestamp, err = time.ParseInLocation(model.TimestampLayout, ts, time.UTC)
		if err != nil {
			return Export{}, model.Table{}, err
		}
		if err := json.Unmarshal([]byte(cells), &r.Cells); err != nil {
			return Export{}, model.Table{}, fmt.Errorf("failed to decode cells: %w", err)
		}
		table.Records = append(table.Records, r)
	}
	if err := rows.Err(); err != nil {
		return Export{}, model.Table{}, err
	}
	return exp, table, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExport(row rowScanner) (Export, error) {
	var exp Export
	var createdAt, criteriaText, columnsText string
	if err := row.Scan(&exp.ID, &createdAt, &exp.Source, &criteriaText, &columnsText, &exp.RowCount); err != nil {
		return Export{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Export{}, err
	}
	exp.CreatedAt = parsed
	if exp.Criteria, err = decodeCriteria(criteriaText); err != nil {
		return Export{}, err
	}
	if err := json.Unmarshal([]byte(columnsText), &exp.Columns); err != nil {
		return Export{}, fmt.Errorf("failed to decode columns: %w", err)
	}
	return exp, nil
}

func encodeCriteria(c model.FilterCriteria) (string, error) {
	data, err := json.Marshal(criteriaJSON{
		StartDate:       c.StartDate.String(),
		EndDate:         c.EndDate.String(),
		Operators:       c.Operators,
		DefectLocations: c.DefectLocations,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode criteria: %w", err)
	}
	return string(data), nil
}

func decodeCriteria(text string) (model.FilterCriteria, error) {
	var raw criteriaJSON
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return model.FilterCriteria{}, fmt.Errorf("failed to decode criteria: %w", err)
	}
	c := model.FilterCriteria{
		Operators:       raw.Operators,
		DefectLocations: raw.DefectLocations,
	}
	var err error
	if raw.StartDate != (model.Date{}).String() {
		if c.StartDate, err = model.ParseDate(raw.StartDate); err != nil {
			return model.FilterCriteria{}, err
		}
	}
	if raw.EndDate != (model.Date{}).String() {
		if c.EndDate, err = model.ParseDate(raw.EndDate); err != nil {
			return model.FilterCriteria{}, err
		}
	}
	return c, nil
}
