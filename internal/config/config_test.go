package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(ResetPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := cfg.APIBaseURL(); got != DefaultAPIURL {
		t.Errorf("expected default API URL, got %q", got)
	}
	if got := cfg.ListPageSize(); got != DefaultPageSize {
		t.Errorf("expected default page size, got %d", got)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	SetPath(path)
	t.Cleanup(ResetPath)

	cfg := &Config{APIURL: "http://localhost:8080", PageSize: 20}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.APIURL != "http://localhost:8080" || loaded.PageSize != 20 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestKeys_SetValidation(t *testing.T) {
	cfg := &Config{}

	apiURL := Lookup("api-url")
	if apiURL == nil {
		t.Fatal("api-url key not registered")
	}
	if err := apiURL.Set(cfg, "ftp://bad"); err == nil {
		t.Error("non-http URL should be rejected")
	}
	if err := apiURL.Set(cfg, "https://api.example.org/"); err != nil {
		t.Fatalf("valid URL rejected: %v", err)
	}
	if cfg.APIURL != "https://api.example.org" {
		t.Errorf("trailing slash should be trimmed, got %q", cfg.APIURL)
	}

	pageSize := Lookup("page-size")
	if pageSize == nil {
		t.Fatal("page-size key not registered")
	}
	if err := pageSize.Set(cfg, "0"); err == nil {
		t.Error("zero page size should be rejected")
	}
	if err := pageSize.Set(cfg, "abc"); err == nil {
		t.Error("non-numeric page size should be rejected")
	}
	if err := pageSize.Set(cfg, "15"); err != nil {
		t.Fatalf("valid page size rejected: %v", err)
	}
	if cfg.PageSize != 15 {
		t.Errorf("expected page size 15, got %d", cfg.PageSize)
	}
}

func TestLookup_NormalizesName(t *testing.T) {
	if Lookup("  API-URL  ") == nil {
		t.Error("lookup should be case-insensitive and trimmed")
	}
	if Lookup("bogus") != nil {
		t.Error("unknown key should return nil")
	}
}
