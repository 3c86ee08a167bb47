package kafka

// PermanentError marks a handler failure that retrying cannot fix; the
// consumer acknowledges the message instead of blocking the partition.
type PermanentError struct {
	Err error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return "permanent error"
	}
	return e.Err.Error()
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err as a PermanentError.
func Permanent(err error) error {
	return PermanentError{Err: err}
}
