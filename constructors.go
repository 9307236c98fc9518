package httperr

import "fmt"

// newRequestError is the shared construction protocol behind every variant:
// resolve the context value (request entity or bare configuration), copy the
// cause's machine code, capture this error's own trace, and merge in the
// cause's trace when it carries one.
//
// Construction never fails. It is a pure data-assembly step; detecting the
// failure (timeout firing, redirect count exceeded, stream error) is the
// caller's job.
func newRequestError(kind Kind, message string, cause error, ctx any) *requestError {
	rc := resolveContext(ctx)
	code := causeCode(cause)

	e := &requestError{
		kind:           kind,
		message:        message,
		code:           code,
		classification: classify(kind, code),
		options:        rc.options,
		request:        rc.request,
		response:       rc.response,
		timings:        rc.timings,
		cause:          cause,
	}

	// Skip the variant constructor and newRequestError so the first frame
	// is the failure-detection site.
	own := captureTrace(string(kind)+": "+message, 2)
	e.trace = mergeCause(own, cause)
	return e
}

// NewMaxRedirectsError reports that a request followed more redirects than
// its configuration allows. The redirect handler constructs it when the
// count exceeds Options.MaxRedirects.
//
// Example:
//
//	if redirects > req.Options().MaxRedirects {
//	    return httperr.NewMaxRedirectsError(req)
//	}
func NewMaxRedirectsError(req Requester) RequestError {
	message := fmt.Sprintf("Redirected %d times. Aborting.", redirectLimit(req))
	return newRequestError(KindMaxRedirects, message, nil, req)
}

func redirectLimit(req Requester) int {
	if req == nil {
		return 0
	}
	if opts := req.Options(); opts != nil {
		return opts.MaxRedirects
	}
	return 0
}

// NewHTTPError reports an unsuccessful response status. The error's request,
// response, and timings all resolve through the response's owning request,
// so they are guaranteed to belong together.
//
// Example:
//
//	if resp.StatusCode >= 400 {
//	    return httperr.NewHTTPError(resp)
//	}
func NewHTTPError(resp *Response) RequestError {
	message := fmt.Sprintf("Response code %d (%s)", resp.StatusCode, resp.StatusMessage)
	var ctx any
	if resp.Request != nil {
		ctx = resp.Request
	}
	return newRequestError(KindHTTP, message, nil, ctx)
}

// NewCacheError reports a cache backend failure during cached-response I/O.
// The message is the cause's own message.
func NewCacheError(cause error, req Requester) RequestError {
	return newRequestError(KindCache, causeMessage(cause), cause, req)
}

// NewUploadError reports a failure in the request body stream during upload.
// The message is the cause's own message.
func NewUploadError(cause error, req Requester) RequestError {
	return newRequestError(KindUpload, causeMessage(cause), cause, req)
}

// NewTimeoutError reports that a request phase exceeded its time limit.
// The cause's Event names the phase, exposed through Event() on the result.
// The machine code defaults to "ETIMEDOUT" when the cause carries none.
//
// Example:
//
//	return httperr.NewTimeoutError(timedOut, req)
func NewTimeoutError(cause TimeoutCause, req Requester) RequestError {
	e := newRequestError(KindTimeout, causeMessage(cause), cause, req)
	if cause != nil {
		e.event = cause.Event()
	}
	if e.code == "" {
		e.code = "ETIMEDOUT"
	}
	return e
}

// NewReadError reports a failure while reading the response stream.
// The message is the cause's own message.
func NewReadError(cause error, req Requester) RequestError {
	return newRequestError(KindRead, causeMessage(cause), cause, req)
}

// NewUnsupportedProtocolError reports a target scheme the client cannot
// handle. It is the one variant constructed from configuration alone: the
// protocol check runs before any request exists, so Request() is nil.
//
// Example:
//
//	err := httperr.NewUnsupportedProtocolError(opts)
//	// err.Message() == `Unsupported protocol "ftp"`
func NewUnsupportedProtocolError(opts *Options) RequestError {
	message := fmt.Sprintf("Unsupported protocol %q", opts.Scheme())
	return newRequestError(KindUnsupportedProtocol, message, nil, opts)
}
