package httperr

// Timings records epoch-millisecond marks for the phases of a single request
// attempt, in the order the transport reaches them. Marks for phases that
// never happened are zero.
type Timings struct {
	// Start is when the request was initiated.
	Start int64

	// Socket is when a socket was assigned to the request.
	Socket int64

	// Lookup is when DNS resolution finished.
	Lookup int64

	// Connect is when the TCP connection was established.
	Connect int64

	// SecureConnect is when the TLS handshake finished.
	SecureConnect int64

	// Upload is when the request body finished uploading.
	Upload int64

	// Response is when the first response byte arrived.
	Response int64

	// End is when the response body finished downloading.
	End int64

	// Error is when the attempt failed, if it did.
	Error int64

	// Abort is when the attempt was aborted, if it was.
	Abort int64

	// Phases holds durations derived from the marks above.
	Phases TimingPhases
}

// TimingPhases are durations, in milliseconds, between consecutive timing
// marks of an attempt.
type TimingPhases struct {
	// Wait is Socket minus Start.
	Wait int64

	// DNS is Lookup minus Socket.
	DNS int64

	// TCP is Connect minus Lookup.
	TCP int64

	// TLS is SecureConnect minus Connect.
	TLS int64

	// Request is Upload minus Connect (or SecureConnect when TLS was used).
	Request int64

	// FirstByte is Response minus Upload.
	FirstByte int64

	// Download is End minus Response.
	Download int64

	// Total is End (or Error or Abort) minus Start.
	Total int64
}
