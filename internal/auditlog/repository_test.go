package auditlog

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenAt(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndList(t *testing.T) {
	repo := openTestRepo(t)

	entry := Entry{
		Command:    "sirictl users approve",
		Args:       "7",
		Entity:     "user",
		ResourceID: "7",
		Resource:   "Rajesh",
		Outcome:    OutcomeSuccess,
		DurationMs: 120,
	}
	if err := repo.Save(&entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("Save should assign an ID")
	}
	if entry.Timestamp.IsZero() {
		t.Error("Save should default the timestamp")
	}

	entries, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got := entries[0]
	if got.Command != entry.Command || got.Entity != "user" || got.ResourceID != "7" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestListByEntity(t *testing.T) {
	repo := openTestRepo(t)

	for _, e := range []Entry{
		{Command: "sirictl users approve", Entity: "user", ResourceID: "1", Outcome: OutcomeSuccess},
		{Command: "sirictl payments verify", Entity: "payment", ResourceID: "2", Outcome: OutcomeSuccess},
		{Command: "sirictl users delete", Entity: "user", ResourceID: "3", Outcome: OutcomeError, Detail: "HTTP 500"},
	} {
		entry := e
		if err := repo.Save(&entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	users, err := repo.ListByEntity("user", 10)
	if err != nil {
		t.Fatalf("ListByEntity failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 user entries, got %d", len(users))
	}
	for _, e := range users {
		if e.Entity != "user" {
			t.Errorf("unexpected entity %q in filtered list", e.Entity)
		}
	}
}

func TestPrune(t *testing.T) {
	repo := openTestRepo(t)

	old := Entry{Command: "sirictl blogs delete", Entity: "blog", Outcome: OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour)}
	recent := Entry{Command: "sirictl blogs create", Entity: "blog", Outcome: OutcomeSuccess}
	if err := repo.Save(&old); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Save(&recent); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := repo.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 pruned entry, got %d", removed)
	}

	entries, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Command != "sirictl blogs create" {
		t.Errorf("expected only the recent entry to survive, got %+v", entries)
	}
}

func TestSanitizeArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "separate password flag",
			in:   []string{"auth", "login", "--password", "hunter2"},
			want: []string{"auth", "login", "--password", "<redacted>"},
		},
		{
			name: "inline token flag",
			in:   []string{"auth", "login", "--token=abc123"},
			want: []string{"auth", "login", "--token=<redacted>"},
		},
		{
			name: "trailing sensitive flag",
			in:   []string{"--password"},
			want: []string{"--password", "<redacted>"},
		},
		{
			name: "plain args untouched",
			in:   []string{"users", "approve", "7"},
			want: []string{"users", "approve", "7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeArgs(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("length mismatch: got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("arg %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
