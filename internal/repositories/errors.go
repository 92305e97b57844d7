package repositories

import "errors"

// Sentinel errors returned by repositories. Callers classify outcomes with
// errors.Is; repositories wrap these with fmt.Errorf("...: %w") to add
// context.
var (
	// ErrNotFound is returned when no row matches the given id.
	ErrNotFound = errors.New("not found")

	// ErrNoFieldsToUpdate is returned when a partial update carries no
	// recognized fields.
	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
)
