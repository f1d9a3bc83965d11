package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

const athletesTableName = "athletes"

var errNoAthletesTable = errors.New("athletes table does not exist")

// ExportAthlete copies everything stored about one athlete into a new SQLite file in dir and returns its path.
//
// The export holds the athletes row and every row of tables that reference athletes(id) through their foreign keys.
func (db *Database) ExportAthlete(ctx context.Context, athleteID string, dir string) (_ string, err error) {
	exportPath := filepath.Join(dir, "athlete-"+fileSafe(athleteID)+".sqlite3")
	exportDsn := fmt.Sprintf("file:%s?mode=rwc", exportPath)

	conn, err := db.ReadOnly.Conn(ctx)
	if err != nil {
		return "", fmt.Errorf("get db connection: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close db connection: %w", closeErr)
		}
	}()

	// The read-only pool runs with QUERY_ONLY, which would also block writes to the attached export.
	if err = setQueryOnly(ctx, conn, false); err != nil {
		return "", err
	}
	defer func() {
		if restoreErr := setQueryOnly(ctx, conn, true); restoreErr != nil {
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to restore query only mode",
				slog.Any("error", restoreErr))
		}
	}()

	if _, err = conn.ExecContext(ctx, `ATTACH DATABASE ? AS export`, exportDsn); err != nil {
		return "", fmt.Errorf("attach export database: %w", err)
	}
	defer func() {
		if _, detachErr := conn.ExecContext(ctx, `DETACH DATABASE export`); detachErr != nil {
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to detach export database",
				slog.Any("error", detachErr))
		}
	}()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer db.rollback(ctx, tx)()

	tables, err := athleteTables(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("find athlete tables: %w", err)
	}
	for _, table := range tables {
		if err = copyAthleteRows(ctx, tx, table, athleteID); err != nil {
			return "", fmt.Errorf("copy table %s: %w", table.name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit export: %w", err)
	}
	db.logger.LogAttrs(ctx, slog.LevelInfo, "exported athlete",
		slog.String("athleteID", athleteID), slog.String("path", exportPath), slog.Int("tables", len(tables)))
	return exportPath, nil
}

func setQueryOnly(ctx context.Context, conn *sql.Conn, on bool) error {
	mode := "FALSE"
	if on {
		mode = "TRUE"
	}
	if _, err := conn.ExecContext(ctx, `PRAGMA QUERY_ONLY = `+mode); err != nil {
		return fmt.Errorf("set query only %s: %w", mode, err)
	}
	return nil
}

// athleteTable is a table and the column holding the athlete id.
type athleteTable struct {
	name   string
	column string
}

// athleteTables returns the athletes table followed by every table with a foreign key to athletes(id).
func athleteTables(ctx context.Context, tx *sql.Tx) ([]athleteTable, error) {
	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_schema WHERE type = 'table' AND name = ?`,
		athletesTableName).Scan(&count); err != nil {
		return nil, fmt.Errorf("check athletes table: %w", err)
	}
	if count == 0 {
		return nil, errNoAthletesTable
	}

	rows, err := tx.QueryContext(ctx, `SELECT s.name, fk."from"
FROM sqlite_schema AS s
         JOIN pragma_foreign_key_list(s.name) AS fk
WHERE s.type = 'table'
  AND fk."table" = :athletes
  AND fk."to" = 'id'
ORDER BY s.name`, sql.Named("athletes", athletesTableName))
	if err != nil {
		return nil, fmt.Errorf("query foreign keys: %w", err)
	}
	defer rows.Close()

	tables := []athleteTable{{name: athletesTableName, column: "id"}}
	for rows.Next() {
		var t athleteTable
		if err = rows.Scan(&t.name, &t.column); err != nil {
			return nil, fmt.Errorf("scan foreign key: %w", err)
		}
		tables = append(tables, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foreign keys: %w", err)
	}
	return tables, nil
}

// copyAthleteRows creates table in the export database and copies the athlete's rows into it.
func copyAthleteRows(ctx context.Context, tx *sql.Tx, table athleteTable, athleteID string) error {
	var createSQL string
	if err := tx.QueryRowContext(ctx, `SELECT sql FROM sqlite_schema WHERE type = 'table' AND name = ?`,
		table.name).Scan(&createSQL); err != nil {
		return fmt.Errorf("get schema: %w", err)
	}
	columns := strings.Index(createSQL, "(")
	if columns < 0 {
		return fmt.Errorf("malformed schema: %s", createSQL)
	}
	exportSQL := "CREATE TABLE export." + table.name + " " + createSQL[columns:]
	if _, err := tx.ExecContext(ctx, exportSQL); err != nil {
		return fmt.Errorf("create export table: %w", err)
	}
	//nolint:gosec // table and column names come from sqlite_schema.
	query := fmt.Sprintf(`INSERT INTO export.%s SELECT * FROM main.%s WHERE %s = ?`, table.name, table.name,
		table.column)
	if _, err := tx.ExecContext(ctx, query, athleteID); err != nil {
		return fmt.Errorf("copy rows: %w", err)
	}
	return nil
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
