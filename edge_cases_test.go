package httperr_test

import (
	"fmt"
	"testing"

	"github.com/jmgilman/go/httperr"
	"github.com/stretchr/testify/require"
)

func TestEdgeCase_EmptyCauseMessage(t *testing.T) {
	req, _ := newTestRequest("https://example.com")
	cause := &codedError{code: "", message: ""}

	err := httperr.NewCacheError(cause, req)

	require.Equal(t, "", err.Message())
	require.Equal(t, "CacheError: ", err.Error())
	require.Equal(t, httperr.KindCache, err.Kind())
}

func TestEdgeCase_NilCauseForCacheError(t *testing.T) {
	// Construction never fails; a producer that violates the boundary
	// contract still gets a usable error.
	req, _ := newTestRequest("https://example.com")

	err := httperr.NewCacheError(nil, req)

	require.Equal(t, "", err.Message())
	require.Nil(t, err.Unwrap())
	require.NotEmpty(t, err.Trace().Frames)
}

func TestEdgeCase_OptionsWithoutURL(t *testing.T) {
	opts := &httperr.Options{MaxRedirects: 5}

	err := httperr.NewUnsupportedProtocolError(opts)

	require.Equal(t, `Unsupported protocol ""`, err.Message())
	require.Equal(t, opts, err.Options())
}

func TestEdgeCase_RequestWithoutOptions(t *testing.T) {
	req := &fakeRequest{}

	err := httperr.NewMaxRedirectsError(req)

	require.Equal(t, "Redirected 0 times. Aborting.", err.Message())
	require.Nil(t, err.Options())
	require.Equal(t, httperr.Requester(req), err.Request())
}

func TestEdgeCase_UnicodeMessages(t *testing.T) {
	req, _ := newTestRequest("https://example.com")
	messages := []string{
		"错误信息",
		"エラーメッセージ",
		"🔥 connection on fire",
	}

	for _, msg := range messages {
		t.Run(msg, func(t *testing.T) {
			err := httperr.NewReadError(fmt.Errorf("%s", msg), req)
			require.Equal(t, msg, err.Message())
		})
	}
}

func TestEdgeCase_CauseWithEmptyTrace(t *testing.T) {
	// A trace-bearing cause whose capture produced nothing degrades to the
	// wrapper's own frames.
	own := httperr.Trace{Header: "h", Frames: []string{"W1"}}
	merged := own.Merge(httperr.Trace{Header: "cause: boom"})

	require.Equal(t, []string{"W1"}, merged.Frames)
}

func TestEdgeCase_SelfReferentialGraph(t *testing.T) {
	// request -> response -> request is a cycle by design; constructing and
	// reading an error over it must not recurse.
	req, resp := newTestRequest("https://example.com")
	err := httperr.NewHTTPError(resp)

	require.Equal(t, httperr.Requester(req), err.Response().Request)
	require.Equal(t, err.Request().Response(), err.Response())
	require.NotEmpty(t, err.Error())
}

func TestEdgeCase_DeepWrapChain(t *testing.T) {
	req, _ := newTestRequest("https://example.com")

	var err error = fmt.Errorf("root cause")
	for i := 0; i < 10; i++ {
		err = httperr.NewCacheError(err, req)
	}

	reqErr, ok := err.(httperr.RequestError)
	require.True(t, ok)
	require.Equal(t, "root cause", reqErr.Message())
	require.NotEmpty(t, reqErr.Trace().Frames)
}
