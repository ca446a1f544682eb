package users

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"sirivaram/sirictl/internal/config"
)

// setupTestServer starts a backend stub and points the config at it.
func setupTestServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)

	cfg := &config.Config{APIURL: server.URL}
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to seed config: %v", err)
	}
}

func execUsers(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func assertContainsAll(t *testing.T, s string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(s, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, s)
		}
	}
}

func TestList_Table(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"1","name":"Rajesh Kumar","mobile":"9876543210","village":"Sirivaram","role":"member","status":"approved"},
			{"id":"2","name":"Lakshmi Devi","mobile":"9876500000","village":"Kotha Palli","role":"member","status":"pending"}
		]`))
	})

	stdout, stderr := execUsers(t, "list", "-o", "table")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	assertContainsAll(t, stdout,
		"ID", "NAME", "MOBILE", "VILLAGE", "ROLE", "STATUS",
		"Rajesh Kumar", "9876543210", "approved",
		"Lakshmi Devi", "Kotha Palli", "pending",
	)
}

func TestList_JSON(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"1","name":"Rajesh Kumar","status":"approved"}]`))
	})

	stdout, stderr := execUsers(t, "list", "-o", "json")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	assertContainsAll(t, stdout, `"name": "Rajesh Kumar"`, `"status": "approved"`)
}

func TestList_SearchFlag(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"1","name":"Rajesh Kumar","status":"approved"},
			{"id":"2","name":"Meena","status":"approved"},
			{"id":"3","name":"Mohan Raj","status":"pending"}
		]`))
	})

	stdout, _ := execUsers(t, "list", "--search", "raj", "-o", "table")

	assertContainsAll(t, stdout, "Rajesh Kumar", "Mohan Raj")
	if strings.Contains(stdout, "Meena") {
		t.Errorf("non-matching row should be filtered out, got:\n%s", stdout)
	}
}

func TestList_PageFlags(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"1","name":"First","status":"approved"},
			{"id":"2","name":"Second","status":"approved"},
			{"id":"3","name":"Third","status":"approved"}
		]`))
	})

	stdout, _ := execUsers(t, "list", "--page", "2", "--page-size", "2", "-o", "table")

	if !strings.Contains(stdout, "Third") {
		t.Errorf("page 2 of size 2 should hold the third row, got:\n%s", stdout)
	}
	if strings.Contains(stdout, "First") || strings.Contains(stdout, "Second") {
		t.Errorf("page 1 rows should be windowed out, got:\n%s", stdout)
	}
}

func TestList_Empty(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	stdout, _ := execUsers(t, "list", "-o", "table")

	if !strings.Contains(stdout, "No users found.") {
		t.Errorf("expected empty message, got: %s", stdout)
	}
}

func TestList_ServerError(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"database unavailable"}`, http.StatusInternalServerError)
	})

	_, stderr := execUsers(t, "list", "-o", "table")

	if !strings.Contains(stderr, "failed to list users") {
		t.Errorf("expected list error, got: %s", stderr)
	}
}

func TestList_UnsupportedFormat(t *testing.T) {
	setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, stderr := execUsers(t, "list", "-o", "yaml")

	if !strings.Contains(stderr, "unsupported output format") {
		t.Errorf("expected format error, got: %s", stderr)
	}
}
