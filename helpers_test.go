package httperr_test

import (
	stderrors "errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/jmgilman/go/httperr"
	"github.com/stretchr/testify/require"
)

func TestGetKind(t *testing.T) {
	req, _ := newTestRequest("https://example.com")
	err := httperr.NewReadError(fmt.Errorf("short read"), req)

	require.Equal(t, httperr.KindRead, httperr.GetKind(err))
}

func TestGetKind_WrappedError(t *testing.T) {
	req, _ := newTestRequest("https://example.com")
	err := httperr.NewReadError(fmt.Errorf("short read"), req)
	wrapped := fmt.Errorf("request failed: %w", err)

	require.Equal(t, httperr.KindRead, httperr.GetKind(wrapped))
}

func TestGetKind_NilAndForeignErrors(t *testing.T) {
	require.Equal(t, httperr.Kind(""), httperr.GetKind(nil))
	require.Equal(t, httperr.Kind(""), httperr.GetKind(stderrors.New("plain")))
}

func TestGetCode_FromSyscallErrno(t *testing.T) {
	req, _ := newTestRequest("https://example.com")
	cause := fmt.Errorf("dial tcp: %w", syscall.ECONNREFUSED)

	err := httperr.NewReadError(cause, req)

	require.Equal(t, "ECONNREFUSED", httperr.GetCode(err))
}

func TestGetCode_FromCoder(t *testing.T) {
	req, _ := newTestRequest("https://example.com")
	cause := &codedError{code: "EAI_AGAIN", message: "temporary DNS failure"}

	err := httperr.NewCacheError(cause, req)

	require.Equal(t, "EAI_AGAIN", httperr.GetCode(err))
}

func TestGetCode_AbsentWhenCauseHasNone(t *testing.T) {
	req, _ := newTestRequest("https://example.com")
	err := httperr.NewCacheError(fmt.Errorf("disk full elsewhere"), req)

	require.Empty(t, httperr.GetCode(err))
}

func TestGetClassification_SafeDefaults(t *testing.T) {
	require.Equal(t, httperr.ClassificationPermanent, httperr.GetClassification(nil))
	require.Equal(t, httperr.ClassificationPermanent, httperr.GetClassification(stderrors.New("plain")))
}

func TestIsRetryable(t *testing.T) {
	req, _ := newTestRequest("https://example.com")

	require.True(t, httperr.IsRetryable(httperr.NewReadError(fmt.Errorf("reset"), req)))
	require.False(t, httperr.IsRetryable(httperr.NewMaxRedirectsError(req)))
	require.False(t, httperr.IsRetryable(nil))
}

func TestIsAndAs(t *testing.T) {
	req, _ := newTestRequest("https://example.com")
	cause := syscall.ECONNRESET
	err := httperr.NewReadError(cause, req)
	wrapped := fmt.Errorf("attempt 1: %w", err)

	require.True(t, httperr.Is(wrapped, cause))

	var reqErr httperr.RequestError
	require.True(t, httperr.As(wrapped, &reqErr))
	require.Equal(t, httperr.KindRead, reqErr.Kind())
}
