package db

import (
	"regexp"
	"strings"
	"testing"
)

// loadCoreSchema reads the shipped core migration through the same loader the
// migrate command uses.
func loadCoreSchema(t *testing.T) string {
	t.Helper()
	migrator := NewMigrator(nil, "../../../migrations")
	migrations, err := migrator.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations() error: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("no migrations found")
	}
	if migrations[0].Name != "001_core.sql" {
		t.Fatalf("expected 001_core.sql first, got %s", migrations[0].Name)
	}
	return migrations[0].SQL
}

// tableDDL extracts the CREATE TABLE block for one table.
func tableDDL(t *testing.T, schema, table string) string {
	t.Helper()
	re := regexp.MustCompile(`(?s)CREATE TABLE ` + table + ` \((.*?)\n\);`)
	m := re.FindStringSubmatch(schema)
	if m == nil {
		t.Fatalf("no CREATE TABLE %s block in core migration", table)
	}
	return m[1]
}

func TestCoreSchema_RoomColumnsMatchQueries(t *testing.T) {
	schema := loadCoreSchema(t)
	ddl := tableDDL(t, schema, "room")

	// Columns the room repository selects.
	for _, col := range []string{"id", "ward_id", "code", "capacity", "created_at"} {
		if !strings.Contains(ddl, col) {
			t.Errorf("room table missing column %q selected by the repository", col)
		}
	}
}

func TestCoreSchema_AssessmentsSurviveAdmissionDelete(t *testing.T) {
	schema := loadCoreSchema(t)
	ddl := tableDDL(t, schema, "daily_assessment")

	// Assessment history is kept independently of the stay record; a delete
	// of an admission must not take its records with it.
	if strings.Contains(ddl, "REFERENCES admission") {
		t.Error("daily_assessment must not carry a foreign key to admission")
	}
	if strings.Contains(ddl, "CASCADE") {
		t.Error("daily_assessment must not cascade on admission delete")
	}
	if !strings.Contains(ddl, "UNIQUE (admission_id, date)") {
		t.Error("daily_assessment must keep the one-record-per-day constraint")
	}
}
