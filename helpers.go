package httperr

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var reqErr httperr.RequestError
//	if httperr.As(err, &reqErr) {
//	    kind := reqErr.Kind()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetKind extracts the failure kind from an error.
// Returns "" if the error is nil or no RequestError is in its chain.
//
// Example:
//
//	if httperr.GetKind(err) == httperr.KindTimeout {
//	    // Handle timeout
//	}
func GetKind(err error) Kind {
	if err == nil {
		return ""
	}

	var reqErr RequestError
	if stderrors.As(err, &reqErr) {
		return reqErr.Kind()
	}
	return ""
}

// GetCode extracts the machine code from an error.
// Returns "" if the error is nil or no RequestError is in its chain.
func GetCode(err error) string {
	if err == nil {
		return ""
	}

	var reqErr RequestError
	if stderrors.As(err, &reqErr) {
		return reqErr.Code()
	}
	return ""
}

// GetClassification extracts the retry classification from an error.
// Returns ClassificationPermanent if the error is nil or not a RequestError.
// This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) Classification {
	if err == nil {
		return ClassificationPermanent
	}

	var reqErr RequestError
	if stderrors.As(err, &reqErr) {
		return reqErr.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not a RequestError (safe default).
//
// Example:
//
//	if httperr.IsRetryable(err) {
//	    return retry(attempt + 1)
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
