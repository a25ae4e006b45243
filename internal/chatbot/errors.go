package chatbot

// ValidationError is a recoverable, user-facing rejection of a turn. The
// message is surfaced verbatim to the caller and no conversation state is
// mutated when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(msg string) error {
	return &ValidationError{Message: msg}
}
