package httperr_test

import (
	"fmt"
	"testing"

	"github.com/jmgilman/go/httperr"
)

func BenchmarkNewReadError(b *testing.B) {
	req, _ := newTestRequest("https://example.com")
	cause := fmt.Errorf("short read")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = httperr.NewReadError(cause, req)
	}
}

func BenchmarkNewUnsupportedProtocolError(b *testing.B) {
	opts := newTestOptions("ftp://example.com")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = httperr.NewUnsupportedProtocolError(opts)
	}
}

func BenchmarkWrapWithTraceMerge(b *testing.B) {
	req, _ := newTestRequest("https://example.com")
	inner := httperr.NewReadError(fmt.Errorf("reset"), req)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = httperr.NewCacheError(inner, req)
	}
}

func BenchmarkTraceMerge(b *testing.B) {
	own := httperr.Trace{
		Header: "CacheError: boom",
		Frames: []string{"W1", "W2", "S1", "S2", "S3", "S4"},
	}
	cause := httperr.Trace{
		Frames: []string{"C1", "C2", "C3", "S1", "S2", "S3", "S4"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = own.Merge(cause)
	}
}

func BenchmarkToJSON(b *testing.B) {
	req, _ := newTestRequest("https://example.com")
	err := httperr.NewReadError(fmt.Errorf("short read"), req)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = httperr.ToJSON(err)
	}
}
