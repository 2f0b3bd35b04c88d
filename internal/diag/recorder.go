// Package diag collects per-request diagnostic text.
//
// Every translation request that asks for details gets its own Recorder; the
// loader and the translator write their trace lines into it and the service
// hands the collected text back alongside the translation. A nil *Recorder is
// valid everywhere and discards all writes, so callers that do not want
// diagnostics pass nil instead of guarding every call site.
package diag

import (
	"fmt"
	"strings"
)

// Recorder buffers diagnostic lines for a single request. Not safe for
// concurrent use; each request owns exactly one.
type Recorder struct {
	buf strings.Builder
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Printf appends a formatted line to the trace. A trailing newline is added
// when the format does not end with one.
func (r *Recorder) Printf(format string, args ...interface{}) {
	if r == nil {
		return
	}
	r.buf.WriteString(fmt.Sprintf(format, args...))
	if !strings.HasSuffix(format, "\n") {
		r.buf.WriteByte('\n')
	}
}

// String returns everything recorded so far.
func (r *Recorder) String() string {
	if r == nil {
		return ""
	}
	return r.buf.String()
}
