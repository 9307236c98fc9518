package httperr

// Requester is the capability surface a request entity exposes to the error
// core. The request lifecycle itself lives outside this package; depending on
// this interface instead of a concrete request type avoids an import cycle
// between the error package and the request package.
//
// RequestMarker is the discriminant: construction treats a context value as a
// request entity if and only if it implements Requester. The marker is a pure
// type tag and is never called for navigation.
type Requester interface {
	// RequestMarker tags a value as an in-flight request entity, as opposed
	// to a bare *Options. Implementations provide an empty body.
	RequestMarker()

	// Options returns the configuration the attempt was made with.
	Options() *Options

	// Response returns the response received so far, or nil.
	Response() *Response

	// Timings returns timing measurements for the attempt, or nil.
	Timings() *Timings
}
