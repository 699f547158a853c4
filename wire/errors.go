package wire

import (
	"errors"
	"fmt"
)

// ErrNoData reports that the device answered with the empty-queue sentinel:
// a frame carrying only the 2-byte length prefix. It marks an exhausted
// read cycle, not a fault; callers typically wait for the interrupt line
// and poll again.
var ErrNoData = errors.New("no data available")

// InvalidLengthError reports a length prefix that matches no recognized
// frame shape. It usually means the host and device have desynchronized.
type InvalidLengthError struct {
	Len int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid message length %d", e.Len)
}

// SizeError reports a decode buffer whose size disagrees with the fixed
// record layout it was handed to. The records are fixed-size, so this can
// only happen when a transport truncates a transaction.
type SizeError struct {
	Kind string // which layout the buffer was decoded as
	Want int
	Got  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: need %d bytes, got %d", e.Kind, e.Want, e.Got)
}
