package trace

import (
	"bufio"
	"io"
	"sync"
	"time"
)

// StreamTracer writes events to an io.Writer as they arrive.
type StreamTracer struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer
	level  Level
	format Format
	start  time.Time
	err    error
}

// NewStreamTracer creates a new StreamTracer. If w is also an io.Closer it is
// closed by Close.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	st := &StreamTracer{
		w:      bufio.NewWriter(w),
		level:  level,
		format: format,
		start:  now(),
	}
	if c, ok := w.(io.Closer); ok {
		st.closer = c
	}
	return st
}

// Emit writes the event. The first write error is kept and returned by Flush.
func (st *StreamTracer) Emit(ev *Event) {
	if ev == nil || !st.level.ShouldEmit(ev.Kind, ev.Scope) {
		return
	}
	data := FormatEvent(ev, st.format, st.start)

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.err != nil {
		return
	}
	if _, err := st.w.Write(data); err != nil {
		st.err = err
	}
}

// Flush writes buffered events to the underlying writer.
func (st *StreamTracer) Flush() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.err != nil {
		return st.err
	}
	return st.w.Flush()
}

// Close flushes and closes the underlying writer when it is closable.
func (st *StreamTracer) Close() error {
	err := st.Flush()
	if st.closer != nil {
		if cerr := st.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Level returns the configured level.
func (st *StreamTracer) Level() Level { return st.level }

// Enabled reports whether the level is above LevelOff.
func (st *StreamTracer) Enabled() bool { return st.level > LevelOff }
