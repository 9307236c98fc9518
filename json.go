package httperr

import (
	"encoding/json"
)

// ErrorResponse is the flat, serializable representation of a request error.
//
// The request, response, timings, and options references are intentionally
// excluded: generic serialization must never carry the in-flight request
// graph (which is large, cyclic, and may hold credentials). Consumers that
// need those read them field by field through the RequestError accessors.
type ErrorResponse struct {
	// Kind is the failure variant. Empty for errors foreign to this package.
	Kind string `json:"kind,omitempty"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Code is the machine code copied from the cause, if any.
	Code string `json:"code,omitempty"`

	// Classification indicates whether the failure is retryable or permanent.
	Classification string `json:"classification"`

	// Event is the timed-out phase for TimeoutError, if any.
	Event string `json:"event,omitempty"`

	// Trace holds the merged trace frames. Omitted when capture produced none.
	Trace []string `json:"trace,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON
// serialization. Returns nil if err is nil.
//
// For RequestError instances it extracts kind, message, code,
// classification, event, and trace frames. For foreign errors it falls back
// to the error message with a permanent classification.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var reqErr RequestError
	if !As(err, &reqErr) {
		return &ErrorResponse{
			Message:        err.Error(),
			Classification: string(ClassificationPermanent),
		}
	}

	return &ErrorResponse{
		Kind:           string(reqErr.Kind()),
		Message:        reqErr.Message(),
		Code:           reqErr.Code(),
		Classification: string(reqErr.Classification()),
		Event:          reqErr.Event(),
		Trace:          reqErr.Trace().Frames,
	}
}

// MarshalJSON implements json.Marshaler for requestError, so request errors
// marshal to the ErrorResponse form directly. The request, response,
// timings, and options references never appear in the output.
//
// Example:
//
//	data, _ := json.Marshal(httperr.NewUnsupportedProtocolError(opts))
//	// {"kind":"UnsupportedProtocolError","message":"Unsupported protocol \"ftp\"",...}
func (e *requestError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Kind:           string(e.kind),
		Message:        e.message,
		Code:           e.code,
		Classification: string(e.classification),
		Event:          e.event,
		Trace:          e.trace.Frames,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, err
	}
	return data, nil
}
