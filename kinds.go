package httperr

// Kind identifies the failure variant of a request error.
// Kinds are string-based for debuggability and natural JSON serialization;
// the set is closed and every error produced by this package carries exactly
// one of the constants below.
type Kind string

const (
	// KindMaxRedirects indicates the request followed more redirects than
	// its configuration allows.
	KindMaxRedirects Kind = "MaxRedirectsError"

	// KindHTTP indicates the response completed with an unsuccessful status.
	KindHTTP Kind = "HTTPError"

	// KindCache indicates the cache backend failed while reading or writing
	// a cached response.
	KindCache Kind = "CacheError"

	// KindUpload indicates the request body stream failed during upload.
	KindUpload Kind = "UploadError"

	// KindTimeout indicates a request phase exceeded its time limit.
	KindTimeout Kind = "TimeoutError"

	// KindRead indicates reading the response stream failed.
	KindRead Kind = "ReadError"

	// KindUnsupportedProtocol indicates the target URL uses a scheme the
	// client cannot handle. No request exists yet when this is raised.
	KindUnsupportedProtocol Kind = "UnsupportedProtocolError"
)
