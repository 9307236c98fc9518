// Package httperr provides the error taxonomy for a network request client.
//
// Every failure in a request's lifecycle — connection, body upload, redirect
// limit, timeout, response read, unsupported scheme, cache I/O — is
// normalized into one structured RequestError that identifies the failure
// kind, carries the request, response, timing, and configuration context
// needed for diagnosis, and preserves the underlying cause's diagnostic
// trace merged with its own.
//
// # Features
//
//   - Closed catalog of seven failure kinds with fixed message templates
//   - Merged, de-duplicated diagnostic traces across the causal chain
//   - Retry classification for intelligent retry logic (retryable vs permanent)
//   - Machine codes copied from low-level causes (e.g. "ECONNREFUSED")
//   - JSON serialization that never leaks the in-flight request graph
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//
// # Design Principles
//
//   - Immutability (errors are immutable once constructed)
//   - Construction never fails (pure data assembly; detection is the caller's job)
//   - Visibility by type (heavy references behind accessors, never serialized)
//   - Zero dependencies (Layer 0 library)
//
// # Quick Start
//
// Each layer of the client constructs exactly one variant when it detects
// its failure condition:
//
//	// Redirect handler
//	if redirects > req.Options().MaxRedirects {
//	    return httperr.NewMaxRedirectsError(req)
//	}
//
//	// Response reader
//	if _, err := io.Copy(dst, body); err != nil {
//	    return httperr.NewReadError(err, req)
//	}
//
//	// Protocol validator (no request exists yet)
//	if opts.Scheme() != "http" && opts.Scheme() != "https" {
//	    return httperr.NewUnsupportedProtocolError(opts)
//	}
//
// Consumers read the structured fields:
//
//	var reqErr httperr.RequestError
//	if httperr.As(err, &reqErr) {
//	    log.Printf("%s (%s): %s", reqErr.Kind(), reqErr.Code(), reqErr.Message())
//	}
//
// Retry logic:
//
//	if httperr.IsRetryable(err) {
//	    return retry(attempt + 1)
//	}
//
// # Context Resolution
//
// Constructors accept either a request entity (anything implementing
// Requester) or a bare *Options. A request contributes its configuration,
// response, and timings; a bare configuration contributes only itself. The
// discriminant is the Requester capability — never structural probing — so
// unrelated values cannot be mistaken for requests, and an error can never
// pair a response with a request it does not belong to.
//
// # Trace Merging
//
// Every constructor captures the call stack at the failure-detection site.
// When the cause itself carries a trace (every RequestError does), the two
// are spliced into one: the new error's header, its unique frames, then the
// cause's frames, with the call-stack base the two chains share appearing
// exactly once. The trace is best-effort diagnostics: Kind and Message are
// always present and reliable even if a consumer strips it.
//
// # Serialization
//
// The request, response, timings, and options references are reachable only
// through their accessors. json.Marshal and ToJSON emit the flat
// ErrorResponse form — kind, message, code, classification, event, trace —
// and never the in-flight request graph, which is large, cyclic, and may
// hold credentials.
package httperr
