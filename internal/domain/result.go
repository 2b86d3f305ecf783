package domain

// ErrorKind classifies an unsuccessful submission.
type ErrorKind string

const (
	// ErrorDuplicateEntry means the phone number is already taken by a
	// different identity for the same event; resubmitting without
	// changing it will not help.
	ErrorDuplicateEntry ErrorKind = "DUPLICATE_ENTRY"

	// ErrorAlreadyRegistered means every requested event was already
	// registered to this identity. Informational; nothing was written.
	ErrorAlreadyRegistered ErrorKind = "ALREADY_REGISTERED"

	// ErrorUnknown covers store and transport faults. Safe to retry.
	ErrorUnknown ErrorKind = "UNKNOWN_ERROR"
)

// SubmissionResult is the structured outcome of one registration
// submission. Expected failures (duplicate, already registered) are
// reported here rather than surfaced as Go errors.
type SubmissionResult struct {
	Success   bool
	Message   string
	ErrorKind ErrorKind // empty when Success
}
