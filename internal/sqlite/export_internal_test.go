package sqlite

import (
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/hexcoach/internal/testhelpers"
)

func TestDatabase_ExportAthlete(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		athleteID  string
		schema     string
		data       []string
		wantCounts map[string]int
		wantErr    bool
	}{
		{
			name:      "athlete with sessions",
			athleteID: "a1",
			schema: `
				CREATE TABLE athletes (id TEXT PRIMARY KEY);
				CREATE TABLE completed_sessions (athlete_id TEXT REFERENCES athletes (id), session_id TEXT,
					PRIMARY KEY (athlete_id, session_id)) WITHOUT ROWID;
				CREATE TABLE feature_flags (name TEXT PRIMARY KEY);
			`,
			data: []string{
				"INSERT INTO athletes (id) VALUES ('a1'), ('a2')",
				"INSERT INTO completed_sessions VALUES ('a1', 's1'), ('a1', 's2'), ('a2', 's1')",
				"INSERT INTO feature_flags VALUES ('x')",
			},
			wantCounts: map[string]int{"athletes": 1, "completed_sessions": 2},
			wantErr:    false,
		},
		{
			name:      "unknown athlete exports empty tables",
			athleteID: "nobody",
			schema: `
				CREATE TABLE athletes (id TEXT PRIMARY KEY);
				CREATE TABLE exercise_logs (id TEXT PRIMARY KEY, athlete_id TEXT REFERENCES athletes (id));
			`,
			data: []string{
				"INSERT INTO athletes (id) VALUES ('a1')",
				"INSERT INTO exercise_logs VALUES ('l1', 'a1')",
			},
			wantCounts: map[string]int{"athletes": 0, "exercise_logs": 0},
			wantErr:    false,
		},
		{
			name:      "no athletes table",
			athleteID: "a1",
			schema:    `CREATE TABLE exercise_logs (id TEXT PRIMARY KEY, athlete_id TEXT);`,
			data:      nil,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := t.Context()
			logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
			db, err := connect(ctx, ":memory:", logger)
			if err != nil {
				t.Fatalf("Failed to connect to database: %v", err)
			}
			defer func() {
				if err = db.Close(); err != nil {
					t.Errorf("Failed to close database: %v", err)
				}
			}()
			if _, err = db.ReadWrite.ExecContext(ctx, tt.schema); err != nil {
				t.Fatalf("Failed to create schema: %v", err)
			}
			for _, q := range tt.data {
				if _, err = db.ReadWrite.ExecContext(ctx, q); err != nil {
					t.Fatalf("Failed to insert test data: %v", err)
				}
			}

			path, err := db.ExportAthlete(ctx, tt.athleteID, t.TempDir())
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExportAthlete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			exported, err := sql.Open("sqlite3", path)
			if err != nil {
				t.Fatalf("Failed to open export: %v", err)
			}
			defer exported.Close()

			got := make(map[string]int)
			for table := range tt.wantCounts {
				var n int
				if err = exported.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
					t.Fatalf("count %s: %v", table, err)
				}
				got[table] = n
			}
			if diff := cmp.Diff(tt.wantCounts, got); diff != "" {
				t.Errorf("row counts mismatch (-want +got):\n%s", diff)
			}

			var tables int
			if err = exported.QueryRowContext(ctx,
				"SELECT COUNT(*) FROM sqlite_schema WHERE type = 'table'").Scan(&tables); err != nil {
				t.Fatalf("count tables: %v", err)
			}
			if tables != len(tt.wantCounts) {
				t.Errorf("export has %d tables, want %d", tables, len(tt.wantCounts))
			}
		})
	}
}

func TestFileSafe(t *testing.T) {
	t.Parallel()
	if got := fileSafe("../a b/ä-1_x"); got != "___a_b__-1_x" {
		t.Errorf("fileSafe() = %q", got)
	}
}
