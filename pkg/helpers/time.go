package helpers

import "time"

// Clock supplies the current time as an RFC 3339 UTC string, the only
// timestamp shape this application persists. Injected so tests can fix
// the time.
type Clock interface {
	Now() string
}

type systemClock struct{}

func (systemClock) Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// SystemClock returns the wall-clock Clock.
func SystemClock() Clock {
	return systemClock{}
}
