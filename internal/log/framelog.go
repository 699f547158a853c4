package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// FrameLogger mirrors raw bus reads as timestamped hex lines, one line
// per transaction. A nil logger or nil writer is a no-op, so callers can
// log unconditionally.
type FrameLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewFrameLogger creates a FrameLogger writing to w. Pass nil to disable.
func NewFrameLogger(w io.Writer) *FrameLogger {
	return &FrameLogger{w: w}
}

// Log emits one bus read. prefix marks the 2-byte length preamble reads
// so a capture distinguishes them from full-frame reads.
func (l *FrameLogger) Log(prefix bool, data []byte) {
	if l == nil || l.w == nil || len(data) == 0 {
		return
	}

	kind := "frame"
	if prefix {
		kind = "len"
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s %-5s %d bytes: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		kind,
		len(data),
		hexbuf.String())

	l.mu.Lock()
	_, _ = l.w.Write([]byte(line))
	l.mu.Unlock()
}

// FrameSink carries the optional raw-frame writer chosen at startup so
// commands can hand it to the driver.
type FrameSink struct {
	W io.Writer
}
