package httperr

// requestContext is the context resolved for one error construction: the
// configuration in effect plus, when a request existed, the request and
// whatever response and timings it had accumulated.
type requestContext struct {
	options  *Options
	request  Requester
	response *Response
	timings  *Timings
}

// resolveContext classifies a context value as a request entity or a bare
// configuration. The discriminant is the Requester capability (its marker
// method), never structural probing of fields, so an unrelated value can
// never be mistaken for a request.
//
// Response and timings are only ever taken from the resolved request, which
// makes it impossible to pair an error with a response that belongs to a
// different request.
func resolveContext(v any) requestContext {
	switch ctx := v.(type) {
	case Requester:
		return requestContext{
			options:  ctx.Options(),
			request:  ctx,
			response: ctx.Response(),
			timings:  ctx.Timings(),
		}
	case *Options:
		return requestContext{options: ctx}
	default:
		return requestContext{}
	}
}
