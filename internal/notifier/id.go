package notifier

import "github.com/google/uuid"

// newID mints a time-ordered UUIDv7 for a new notification record,
// falling back to a random v4 if the runtime's random source is broken.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String(), nil
}
