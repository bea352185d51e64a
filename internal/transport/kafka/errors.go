package kafka

// PermanentError marks a job failure that redelivery cannot fix. The consumer
// acknowledges the message instead of retrying the claim.
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

// Permanent wraps err as a permanent error.
func Permanent(err error) error {
	return PermanentError{Err: err}
}
