// Package sink provides the ordered, append-only text line stream that carries
// every observable message of the spawn demo.
//
// Lines never contain a trailing newline; a blank separator is an empty line.
package sink

import (
	"io"
	"strings"
	"sync"
)

// Sink accepts ordered text lines for display.
type Sink interface {
	Line(text string)
}

// Writer writes each line to an io.Writer followed by a newline.
// The first write error is remembered and all later lines are dropped.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a sink that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Line writes text and a trailing newline. A nil Writer, or one without an
// io.Writer, drops the line.
func (s *Writer) Line(text string) {
	if s == nil || s.w == nil || s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text+"\n")
}

// Err returns the first write error, if any.
func (s *Writer) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Recorder keeps every line in memory. Safe for concurrent use so the SSH
// server can share one between a session and its logger.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Line appends text. A nil Recorder drops the line.
func (r *Recorder) Line(text string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, text)
}

// Lines returns a copy of all recorded lines, blank separators included.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Messages returns recorded lines with blank separators removed.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string
	for _, l := range r.lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Len returns the number of recorded lines.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}

// String joins the recorded lines exactly as a Writer would have written them.
func (r *Recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	for _, l := range r.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Reset drops all recorded lines.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

type tee []Sink

func (t tee) Line(text string) {
	for _, s := range t {
		s.Line(text)
	}
}

// Tee returns a sink that forwards every line to each of sinks, in order.
// Nil interface values are skipped. A typed nil pointer is kept and receives
// lines like any other sink; Writer and Recorder drop them, other
// implementations must handle a nil receiver themselves.
func Tee(sinks ...Sink) Sink {
	out := make(tee, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type discard struct{}

func (discard) Line(string) {}

// Discard drops every line.
var Discard Sink = discard{}

// OrDiscard returns s, or Discard when s is nil.
func OrDiscard(s Sink) Sink {
	if s == nil {
		return Discard
	}
	return s
}
