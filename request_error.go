package httperr

import "fmt"

// requestError is the concrete implementation of RequestError.
// It is private to enforce construction through the variant constructors.
// The request, response, timings, and options references live in private
// fields: they stay reachable through the accessors, but Error(), Format,
// and MarshalJSON never include them.
type requestError struct {
	kind           Kind
	message        string
	code           string
	classification Classification
	event          string
	trace          Trace
	options        *Options
	request        Requester
	response       *Response
	timings        *Timings
	cause          error
}

// Error returns the string representation of the error.
// Format: "Kind: message", with the cause appended when it adds information
// beyond the message itself.
func (e *requestError) Error() string {
	if e.cause != nil && e.cause.Error() != e.message {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Kind returns the failure variant.
func (e *requestError) Kind() Kind {
	return e.kind
}

// Message returns the human-readable error message.
func (e *requestError) Message() string {
	return e.message
}

// Code returns the machine code copied from the cause, or "".
func (e *requestError) Code() string {
	return e.code
}

// Classification returns the retry classification.
func (e *requestError) Classification() Classification {
	return e.classification
}

// Event returns the timed-out phase for KindTimeout errors, or "".
func (e *requestError) Event() string {
	return e.event
}

// Trace returns the merged diagnostic trace.
func (e *requestError) Trace() Trace {
	return e.trace
}

// Options returns the configuration in effect for the failed attempt.
func (e *requestError) Options() *Options {
	return e.options
}

// Request returns the in-flight request, or nil when none existed.
func (e *requestError) Request() Requester {
	return e.request
}

// Response returns the response received so far, or nil.
func (e *requestError) Response() *Response {
	return e.response
}

// Timings returns the request's timing measurements, or nil.
func (e *requestError) Timings() *Timings {
	return e.timings
}

// Unwrap returns the underlying cause for standard library compatibility.
func (e *requestError) Unwrap() error {
	return e.cause
}

// Format implements fmt.Formatter.
// Use %v or %s for the message form, %+v for the merged trace.
func (e *requestError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprint(s, e.trace.String())
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
