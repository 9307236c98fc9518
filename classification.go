package httperr

// Classification indicates whether a failure should trigger a retry.
// The caller's retry policy consumes it; this package only assigns it.
type Classification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed
	// on retry. Examples: timeouts, reset connections, interrupted reads.
	ClassificationRetryable Classification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on
	// retry. Examples: redirect loops, unsupported schemes.
	ClassificationPermanent Classification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be
// attempted.
func (c Classification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps failure kinds to their default classification.
var defaultClassifications = map[Kind]Classification{
	// Retryable kinds (the failure is tied to one attempt, not the request)
	KindTimeout: ClassificationRetryable,
	KindRead:    ClassificationRetryable,
	KindUpload:  ClassificationRetryable,

	// Permanent kinds (retrying the same request cannot change the outcome)
	KindMaxRedirects:        ClassificationPermanent,
	KindHTTP:                ClassificationPermanent,
	KindCache:               ClassificationPermanent,
	KindUnsupportedProtocol: ClassificationPermanent,
}

// retryableCauseCodes lists connection-level codes that make an otherwise
// permanent failure worth retrying.
var retryableCauseCodes = map[string]bool{
	"ECONNRESET":   true,
	"ECONNREFUSED": true,
	"ECONNABORTED": true,
	"ETIMEDOUT":    true,
	"EPIPE":        true,
	"ENETUNREACH":  true,
	"EHOSTUNREACH": true,
	"EADDRINUSE":   true,
	"EAI_AGAIN":    true,
}

// classify returns the classification for a kind, letting a retryable
// connection-level cause code override a permanent default.
func classify(kind Kind, code string) Classification {
	if retryableCauseCodes[code] {
		return ClassificationRetryable
	}
	if class, ok := defaultClassifications[kind]; ok {
		return class
	}
	return ClassificationPermanent // Safe default
}
