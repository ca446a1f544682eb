package config

import (
	"strings"
	"testing"

	"sirivaram/sirictl/internal/config"
)

func TestGet_SingleKey(t *testing.T) {
	setupTestConfig(t)

	cfg := &config.Config{APIURL: "http://localhost:8080"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to seed config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "--key", "api-url")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if strings.TrimSpace(stdout) != "http://localhost:8080" {
		t.Errorf("expected the raw value, got: %s", stdout)
	}
}

func TestGet_UnsetKey(t *testing.T) {
	setupTestConfig(t)

	stdout, _ := execConfig(t, "get", "--key", "page-size")

	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_AllKeys(t *testing.T) {
	setupTestConfig(t)

	cfg := &config.Config{PageSize: 15}
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to seed config: %v", err)
	}

	stdout, stderr := execConfig(t, "get")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "api-url: (not set)") {
		t.Errorf("expected unset api-url line, got: %s", stdout)
	}
	if !strings.Contains(stdout, "page-size: 15") {
		t.Errorf("expected page-size line, got: %s", stdout)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "--key", "bogus")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
