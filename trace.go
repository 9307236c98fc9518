package httperr

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Trace is an ordered diagnostic call trace: a header line naming the error,
// followed by one string per call frame, innermost frame first. Representing
// frames as a list rather than a single blob keeps the merge and dedup logic
// below a pure list algorithm.
type Trace struct {
	// Header is the "Kind: message" line of the error the trace belongs to.
	Header string

	// Frames are the call sites active when the trace was captured,
	// innermost first.
	Frames []string
}

// TraceCarrier is implemented by errors that carry a diagnostic trace.
// Every RequestError carries one, so wrapping one request error in another
// merges the two traces automatically.
type TraceCarrier interface {
	Trace() Trace
}

// traceMaxDepth bounds frame capture. Failure paths are exceptional, so a
// conservative bound captures meaningful context without excessive work.
const traceMaxDepth = 64

// captureTrace records the call stack active at the point of construction.
//
// Skip accounting: +2 hides runtime.Callers and captureTrace itself, so skip
// counts only the constructor frames between the user call site and this
// function. Frames are resolved via runtime.CallersFrames, which expands
// inlined calls correctly.
func captureTrace(header string, skip int) Trace {
	pc := make([]uintptr, traceMaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return Trace{Header: header}
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make([]string, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, formatFrame(fr))
		if !more {
			break
		}
	}
	return Trace{Header: header, Frames: out}
}

func formatFrame(fr runtime.Frame) string {
	return fmt.Sprintf("at %s (%s:%d)", fr.Function, fr.File, fr.Line)
}

// Merge splices the frames of a cause's trace into t.
//
// The result keeps t's header, then t's frames, then the cause's frames —
// except that the shared base of the two call stacks (the frames both chains
// have in common below the wrap point) appears exactly once, contributed by
// the cause. The cause's header is dropped; because traces are structural,
// no text search inside the cause's message is ever needed, so a message
// that happens to contain frame-like text cannot mislocate the boundary.
func (t Trace) Merge(cause Trace) Trace {
	ownRev := reverseFrames(t.Frames)
	causeRev := reverseFrames(cause.Frames)

	// Both lists now start at the base of the call stack. Drop the common
	// base from the wrapper so it survives only in the cause's frames.
	shared := 0
	for shared < len(ownRev) && shared < len(causeRev) && ownRev[shared] == causeRev[shared] {
		shared++
	}

	kept := reverseFrames(ownRev[shared:])
	merged := make([]string, 0, len(kept)+len(cause.Frames))
	merged = append(merged, kept...)
	merged = append(merged, cause.Frames...)
	return Trace{Header: t.Header, Frames: merged}
}

// mergeCause resolves the cause's trace, if it carries one, and merges it
// into own. A cause with no trace leaves own unchanged.
func mergeCause(own Trace, cause error) Trace {
	var carrier TraceCarrier
	if cause == nil || !errors.As(cause, &carrier) {
		return own
	}
	return own.Merge(carrier.Trace())
}

func reverseFrames(in []string) []string {
	out := make([]string, len(in))
	for i, f := range in {
		out[len(in)-1-i] = f
	}
	return out
}

// String renders the trace as the header followed by tab-indented frames.
func (t Trace) String() string {
	if len(t.Frames) == 0 {
		return t.Header
	}

	var b strings.Builder
	b.WriteString(t.Header)
	for _, f := range t.Frames {
		b.WriteString("\n\t")
		b.WriteString(f)
	}
	return b.String()
}
