// Package bus defines the transport capabilities the TT21100 driver
// requires: an addressed duplex exchange and an interrupt-line query. The
// implementations own all bus timing, clock stretching, and electrical
// retry policy; the driver only issues reads against them.
//
// Both capabilities come in a context-aware flavor, used directly by the
// driver, and a plain blocking flavor that can be adapted with
// FromBlocking and LineFromBlocking. The framing logic never diverges
// between the two; only the suspension mechanism of the read primitive
// differs.
package bus

import "context"

// Exchanger performs one atomic addressed write-then-read transaction.
type Exchanger interface {
	// Exchange writes w (which may be empty) to the device at addr and
	// reads len(r) bytes back within the same transaction.
	// Implementations should honor ctx cancellation where the
	// underlying transport allows it.
	Exchange(ctx context.Context, addr uint8, w, r []byte) error
}

// SignalLine reports the state of the device's interrupt line.
type SignalLine interface {
	// Asserted reports whether the line currently signals queued data.
	// The TT21100 interrupt is active-low; implementations translate
	// the electrical level so that true always means "data queued".
	Asserted(ctx context.Context) (bool, error)
}

// Error wraps a transport-native failure so callers can tell bus trouble
// apart from protocol trouble while still reaching the cause through
// errors.Unwrap.
type Error struct {
	Op  string // the operation that failed, e.g. "read"
	Err error  // the transport's own error
}

func (e *Error) Error() string { return "bus: " + e.Op + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }
