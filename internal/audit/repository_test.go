package audit

import (
	"database/sql"
	"os"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "audit-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	dbPath := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := `
		CREATE TABLE audit_logs (
			id          TEXT PRIMARY KEY,
			action      TEXT NOT NULL,
			entity_type TEXT NOT NULL,
			entity_id   TEXT,
			user_id     TEXT,
			source      TEXT NOT NULL,
			details     TEXT,
			created_at  TEXT NOT NULL
		) STRICT;
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("applying audit schema: %v", err)
	}

	return db
}

func TestCreate(t *testing.T) {
	repo := NewSQLiteRepository(testDB(t))

	log := &AuditLog{
		Action:     ActionServoSet,
		EntityType: "actuator",
		EntityID:   "servo",
		UserID:     "usr-12345678",
		Source:     "api",
		Details:    map[string]any{"state": "ON"},
	}
	if err := repo.Create(testContext(t), log); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !strings.HasPrefix(log.ID, "aud-") {
		t.Errorf("generated ID = %q, want aud- prefix", log.ID)
	}
	if log.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set on create")
	}
}

func TestList(t *testing.T) {
	repo := NewSQLiteRepository(testDB(t))
	ctx := testContext(t)

	entries := []AuditLog{
		{Action: ActionRegister, EntityType: "user", UserID: "usr-aaaa0001", Source: "api"},
		{Action: ActionLogin, EntityType: "user", UserID: "usr-aaaa0001", Source: "api"},
		{Action: ActionServoSet, EntityType: "actuator", EntityID: "servo", UserID: "usr-aaaa0001", Source: "api",
			Details: map[string]any{"state": "ON"}},
		{Action: ActionServoSet, EntityType: "actuator", EntityID: "servo", UserID: "usr-bbbb0002", Source: "api",
			Details: map[string]any{"state": "OFF"}},
	}
	for i := range entries {
		// Spread timestamps so ordering is deterministic.
		entries[i].CreatedAt = time.Date(2026, 8, 15, 12, 0, i, 0, time.UTC)
		if err := repo.Create(ctx, &entries[i]); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	t.Run("unfiltered", func(t *testing.T) {
		result, err := repo.List(ctx, Filter{})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if result.Total != 4 {
			t.Errorf("Total = %d, want 4", result.Total)
		}
		if len(result.Logs) != 4 {
			t.Fatalf("len(Logs) = %d, want 4", len(result.Logs))
		}
		// Most recent first.
		if result.Logs[0].UserID != "usr-bbbb0002" {
			t.Errorf("Logs[0].UserID = %q, want most recent entry first", result.Logs[0].UserID)
		}
	})

	t.Run("filter by action", func(t *testing.T) {
		result, err := repo.List(ctx, Filter{Action: ActionServoSet})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if result.Total != 2 {
			t.Errorf("Total = %d, want 2", result.Total)
		}
		for _, log := range result.Logs {
			if log.Action != ActionServoSet {
				t.Errorf("Action = %q, want %q", log.Action, ActionServoSet)
			}
		}
	})

	t.Run("filter by user", func(t *testing.T) {
		result, err := repo.List(ctx, Filter{UserID: "usr-bbbb0002"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if result.Total != 1 {
			t.Errorf("Total = %d, want 1", result.Total)
		}
	})

	t.Run("details round-trip", func(t *testing.T) {
		result, err := repo.List(ctx, Filter{Action: ActionServoSet, UserID: "usr-aaaa0001"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(result.Logs) != 1 {
			t.Fatalf("len(Logs) = %d, want 1", len(result.Logs))
		}
		if got := result.Logs[0].Details["state"]; got != "ON" {
			t.Errorf("Details[state] = %v, want ON", got)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		result, err := repo.List(ctx, Filter{Limit: 2, Offset: 2})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if result.Total != 4 {
			t.Errorf("Total = %d, want 4", result.Total)
		}
		if len(result.Logs) != 2 {
			t.Errorf("len(Logs) = %d, want 2", len(result.Logs))
		}
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		result, err := repo.List(ctx, Filter{Action: "no-such-action"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if result.Logs == nil {
			t.Error("Logs should be an empty slice, not nil")
		}
	})
}
