package httperr

import (
	"context"
	"errors"
	"os"
	"syscall"
)

// Coder is implemented by causes that expose a short machine-readable code,
// independent of the failure kind (e.g. "ECONNREFUSED").
type Coder interface {
	Code() string
}

// TimeoutCause is the error a timeout monitor hands to NewTimeoutError.
// Event names the request phase that timed out (e.g. "lookup", "socket",
// "response").
type TimeoutCause interface {
	error
	Event() string
}

// errnoNames maps the connection-level errnos a client commonly surfaces to
// their conventional POSIX names.
var errnoNames = map[syscall.Errno]string{
	syscall.ECONNREFUSED: "ECONNREFUSED",
	syscall.ECONNRESET:   "ECONNRESET",
	syscall.ECONNABORTED: "ECONNABORTED",
	syscall.ETIMEDOUT:    "ETIMEDOUT",
	syscall.EPIPE:        "EPIPE",
	syscall.EADDRINUSE:   "EADDRINUSE",
	syscall.ENETUNREACH:  "ENETUNREACH",
	syscall.EHOSTUNREACH: "EHOSTUNREACH",
}

// causeCode copies the machine code from a cause. A Code() capability
// anywhere in the chain wins; otherwise recognized syscall errnos and the
// stdlib deadline sentinels map to their POSIX names. Returns "" when the
// cause is nil or exposes nothing recognizable.
func causeCode(cause error) string {
	if cause == nil {
		return ""
	}

	var coder Coder
	if errors.As(cause, &coder) {
		return coder.Code()
	}

	var errno syscall.Errno
	if errors.As(cause, &errno) {
		if name, ok := errnoNames[errno]; ok {
			return name
		}
	}

	if errors.Is(cause, context.DeadlineExceeded) || errors.Is(cause, os.ErrDeadlineExceeded) {
		return "ETIMEDOUT"
	}
	return ""
}

// causeMessage returns the cause's message, or "" for a nil cause.
// A cause that distinguishes its bare message from its full rendering (every
// RequestError does) contributes the bare message, so wrapping never stacks
// kind prefixes.
func causeMessage(cause error) string {
	if cause == nil {
		return ""
	}
	if m, ok := cause.(interface{ Message() string }); ok {
		return m.Message()
	}
	return cause.Error()
}
