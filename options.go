package httperr

import (
	"net/url"
	"time"
)

// Options is the resolved configuration for a single request attempt.
// The error core reads it for message construction (target scheme, redirect
// limit) and attaches it to every error it builds; resolution of defaults,
// merging, and validation happen in the client before a request starts.
type Options struct {
	// URL is the resolved target of the request.
	URL *url.URL

	// Method is the HTTP method of the request.
	Method string

	// FollowRedirect controls whether redirect responses are followed.
	FollowRedirect bool

	// MaxRedirects is the number of redirects to follow before the attempt
	// is aborted with a MaxRedirectsError.
	MaxRedirects int

	// Timeout holds the per-phase limits enforced by the timeout monitor.
	// A zero value disables the limit for that phase.
	Timeout TimeoutOptions
}

// TimeoutOptions are per-phase time limits for a request attempt.
type TimeoutOptions struct {
	// Lookup limits DNS resolution.
	Lookup time.Duration

	// Connect limits establishing the TCP connection.
	Connect time.Duration

	// SecureConnect limits the TLS handshake.
	SecureConnect time.Duration

	// Socket limits inactivity on the socket at any point.
	Socket time.Duration

	// Send limits writing the request, headers and body included.
	Send time.Duration

	// Response limits waiting for the first response byte.
	Response time.Duration

	// Request limits the whole attempt end to end.
	Request time.Duration
}

// Scheme returns the protocol of the resolved target, or "" when no target
// is set.
func (o *Options) Scheme() string {
	if o == nil || o.URL == nil {
		return ""
	}
	return o.URL.Scheme
}
