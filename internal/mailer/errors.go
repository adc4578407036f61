package mailer

// ErrorKind is the closed set of mail dispatch failure classes. Retry
// decisions and HTTP status mapping switch on the kind, never on error
// message text.
type ErrorKind int

const (
	// KindNotConfigured means the service was never initialized: credentials
	// are missing or malformed. Same for every request until an operator
	// fixes configuration.
	KindNotConfigured ErrorKind = iota
	// KindSenderRejected means the provider refused to relay because the
	// declared sender identity is unverified or unauthorized. Eligible for
	// exactly one fallback attempt with the service account as sender.
	KindSenderRejected
	// KindDelivery covers terminal transport failures; never retried.
	KindDelivery
)

// Error is the tagged error type returned by the dispatcher and its
// transports.
type Error struct {
	Kind ErrorKind

	// msg is safe to show to end users; cause is for operator logs only.
	msg   string
	cause error
}

func newError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, msg: msg, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// UserMessage returns the client-facing message without the underlying
// cause.
func (e *Error) UserMessage() string { return e.msg }
