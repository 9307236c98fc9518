package httperr

// Response is the subset of a received response the error core carries:
// enough to build an HTTPError message and to hand consumers the response
// that was in flight when a failure was detected.
type Response struct {
	// StatusCode is the numeric response status (e.g. 404).
	StatusCode int

	// StatusMessage is the reason phrase sent with the status (e.g. "Not Found").
	StatusMessage string

	// Request is the request this response belongs to. HTTPError resolves
	// its context through this back-reference, which keeps an error's
	// response and request consistent with each other.
	Request Requester
}
