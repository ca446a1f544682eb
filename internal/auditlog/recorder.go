package auditlog

import (
	"strings"
	"time"
)

// Record writes a best-effort audit entry for a completed mutation.
// The trail must never block or fail the mutation itself, so callers
// usually ignore the returned error.
func Record(command, entity, resourceID, resource string, args []string, start time.Time, mutErr error) error {
	repo, err := Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	entry := Entry{
		Timestamp:  start.UTC(),
		Command:    command,
		Args:       strings.Join(SanitizeArgs(args), " "),
		Entity:     entity,
		ResourceID: resourceID,
		Resource:   resource,
		Outcome:    OutcomeSuccess,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if mutErr != nil {
		entry.Outcome = OutcomeError
		entry.Detail = mutErr.Error()
	}

	return repo.Save(&entry)
}
