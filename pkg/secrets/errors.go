package secrets

import "fmt"

// ErrorKind classifies a fetch failure so callers can pick the right
// user-facing message without inspecting AWS SDK error types themselves.
type ErrorKind int

const (
	// KindOther covers every failure that is not a missing secret,
	// including access denials, throttling and binary-only secrets.
	KindOther ErrorKind = iota
	// KindNotFound means the backend has no secret under the requested name.
	KindNotFound
)

// FetchError is the single error type returned for a failed secret fetch.
type FetchError struct {
	Kind ErrorKind
	Name string
	Err  error
}

func (e *FetchError) Error() string {
	if e.Kind == KindNotFound {
		return fmt.Sprintf("secret [%s] not found", e.Name)
	}
	return fmt.Sprintf("failed to fetch secret [%s]: %v", e.Name, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
