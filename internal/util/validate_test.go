package util

import "testing"

func TestValidateMobile(t *testing.T) {
	valid := []string{
		"9876543210",
		"+919876543210",
		"+91 98765 43210",
		"98765-43210",
		"6000000000",
	}
	for _, m := range valid {
		if err := ValidateMobile(m); err != nil {
			t.Errorf("ValidateMobile(%q) should pass, got %v", m, err)
		}
	}

	invalid := []string{
		"",
		"12345",
		"5876543210", // leading digit below 6
		"98765432101",
		"abcdefghij",
	}
	for _, m := range invalid {
		if err := ValidateMobile(m); err == nil {
			t.Errorf("ValidateMobile(%q) should fail", m)
		}
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("title", "  "); err == nil {
		t.Error("blank value should fail")
	}
	if err := ValidateRequired("title", "Festival"); err != nil {
		t.Errorf("non-blank value should pass, got %v", err)
	}
}

func TestValidateURL(t *testing.T) {
	if err := ValidateURL("image URL", "https://example.org/a.jpg"); err != nil {
		t.Errorf("https URL should pass, got %v", err)
	}
	if err := ValidateURL("image URL", "example.org/a.jpg"); err == nil {
		t.Error("schemeless URL should fail")
	}
	if err := ValidateURL("image URL", ""); err == nil {
		t.Error("empty URL should fail")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("short strings pass through, got %q", got)
	}
	if got := Truncate("a long string", 8); len(got) > 8+2 {
		// The ellipsis rune is multi-byte; byte length may exceed width
		// slightly but the cut must happen.
		t.Errorf("expected truncation, got %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("zero width yields empty, got %q", got)
	}
}

func TestNormalizeKey(t *testing.T) {
	if got := NormalizeKey("  API-Url "); got != "api-url" {
		t.Errorf("expected normalized key, got %q", got)
	}
}
