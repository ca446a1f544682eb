package auditlog

import "strings"

// Flags whose values must never reach the audit trail. auth login and
// auth register accept --password; --token covers any future direct
// token input.
var sensitiveFlags = map[string]struct{}{
	"--password": {},
	"--token":    {},
}

// SanitizeArgs redacts sensitive flag values before an Entry is stored,
// handling both "--password value" and "--password=value" forms.
func SanitizeArgs(args []string) []string {
	sanitized := make([]string, 0, len(args))
	skipNext := false

	for _, arg := range args {
		if skipNext {
			sanitized = append(sanitized, "<redacted>")
			skipNext = false
			continue
		}

		if _, ok := sensitiveFlags[arg]; ok {
			sanitized = append(sanitized, arg)
			skipNext = true
			continue
		}

		if key, _, ok := strings.Cut(arg, "="); ok {
			if _, ok := sensitiveFlags[key]; ok {
				sanitized = append(sanitized, key+"=<redacted>")
				continue
			}
		}

		sanitized = append(sanitized, arg)
	}

	if skipNext {
		sanitized = append(sanitized, "<redacted>")
	}

	return sanitized
}
