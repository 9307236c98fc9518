package httperr

// RequestError extends the standard error interface with the structured
// context a network request client captures at the point of failure.
//
// RequestError provides the failure kind, a machine code copied from the
// underlying cause, retry classification, a merged diagnostic trace, and
// direct access to the request, response, timings, and options that were in
// flight when the failure was detected. The heavy references are reachable
// only through their accessors; generic rendering and serialization never
// include them.
//
// A RequestError is created exactly once, by the layer that detected the
// failure, and is immutable afterwards.
type RequestError interface {
	error

	// Kind returns the failure variant, one of the seven catalog kinds.
	Kind() Kind

	// Message returns the human-readable error message. It is always
	// self-contained, even when consumers strip the trace and context.
	Message() string

	// Code returns the short machine code copied from the underlying cause
	// (e.g. "ECONNREFUSED"). Returns "" when the cause carried none.
	Code() string

	// Classification returns whether the failure is retryable or permanent.
	Classification() Classification

	// Event returns the request phase that timed out (e.g. "socket").
	// It is non-empty only for KindTimeout errors.
	Event() string

	// Trace returns the merged diagnostic call trace. The trace is
	// best-effort: an empty trace never affects Kind or Message.
	Trace() Trace

	// Options returns the configuration in effect for the failed attempt.
	// It is always resolvable: taken from the request when one existed,
	// otherwise from the configuration the error was constructed with.
	Options() *Options

	// Request returns the in-flight request that produced this error.
	// Returns nil when no request existed yet (KindUnsupportedProtocol).
	Request() Requester

	// Response returns the response received so far, always sourced from
	// the associated request. Returns nil if none had arrived.
	Response() *Response

	// Timings returns timing measurements for the request, always sourced
	// from the associated request. Returns nil if none were recorded.
	Timings() *Timings

	// Unwrap returns the underlying cause for errors.Is and errors.As
	// compatibility. Returns nil if this error has no cause.
	Unwrap() error
}
