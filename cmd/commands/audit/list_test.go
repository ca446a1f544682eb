package audit

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sirivaram/sirictl/internal/auditlog"
	"sirivaram/sirictl/internal/database"
)

// setupTestDB points the audit database at a temp file and seeds entries.
func setupTestDB(t *testing.T, entries ...auditlog.Entry) {
	t.Helper()
	database.SetPath(filepath.Join(t.TempDir(), "sirictl.db"))
	t.Cleanup(database.ResetPath)

	repo, err := auditlog.Open()
	if err != nil {
		t.Fatalf("failed to open audit repo: %v", err)
	}
	defer repo.Close()

	for _, e := range entries {
		entry := e
		if err := repo.Save(&entry); err != nil {
			t.Fatalf("failed to seed entry: %v", err)
		}
	}
}

func execAudit(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestList_Table(t *testing.T) {
	setupTestDB(t,
		auditlog.Entry{Command: "sirictl users approve", Entity: "user",
			ResourceID: "7", Resource: "Rajesh", Outcome: auditlog.OutcomeSuccess, DurationMs: 420},
		auditlog.Entry{Command: "sirictl payments verify", Entity: "payment",
			ResourceID: "12", Outcome: auditlog.OutcomeError, Detail: "HTTP 500"},
	)

	stdout, stderr := execAudit(t, "list")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, want := range []string{
		"TIME", "COMMAND", "OUTCOME",
		"sirictl users approve", "user:7 (Rajesh)",
		"sirictl payments verify", "HTTP 500",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestList_EntityFilter(t *testing.T) {
	setupTestDB(t,
		auditlog.Entry{Command: "sirictl users approve", Entity: "user", Outcome: auditlog.OutcomeSuccess},
		auditlog.Entry{Command: "sirictl payments verify", Entity: "payment", Outcome: auditlog.OutcomeSuccess},
	)

	stdout, _ := execAudit(t, "list", "--entity", "payment")

	if strings.Contains(stdout, "sirictl users approve") {
		t.Errorf("user entry should be filtered out, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "sirictl payments verify") {
		t.Errorf("payment entry should remain, got:\n%s", stdout)
	}
}

func TestList_RejectsZeroLimit(t *testing.T) {
	setupTestDB(t)

	_, stderr := execAudit(t, "list", "--limit", "0")

	if !strings.Contains(stderr, "limit must be greater than 0") {
		t.Errorf("expected limit error, got: %s", stderr)
	}
}

func TestPrune(t *testing.T) {
	setupTestDB(t,
		auditlog.Entry{Command: "sirictl blogs delete", Entity: "blog",
			Outcome: auditlog.OutcomeSuccess, Timestamp: time.Now().UTC().Add(-72 * time.Hour)},
		auditlog.Entry{Command: "sirictl blogs create", Entity: "blog", Outcome: auditlog.OutcomeSuccess},
	)

	stdout, stderr := execAudit(t, "prune", "--older-than", "24h")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "Removed 1") {
		t.Errorf("expected one pruned entry, got: %s", stdout)
	}

	listOut, _ := execAudit(t, "list")
	if strings.Contains(listOut, "sirictl blogs delete") {
		t.Errorf("pruned entry should be gone, got:\n%s", listOut)
	}
}

func TestPrune_DaySuffix(t *testing.T) {
	setupTestDB(t,
		auditlog.Entry{Command: "sirictl events delete", Entity: "event",
			Outcome: auditlog.OutcomeSuccess, Timestamp: time.Now().UTC().Add(-40 * 24 * time.Hour)},
	)

	stdout, _ := execAudit(t, "prune", "--older-than", "30d")

	if !strings.Contains(stdout, "Removed 1") {
		t.Errorf("expected the 40-day-old entry pruned with a 30d cutoff, got: %s", stdout)
	}
}
