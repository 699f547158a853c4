// Package driver implements a polled session against the TT21100
// multi-touch touchscreen controller: an initialization handshake,
// interrupt-line queries, and length-prefixed frame reads decoded into
// wire events.
//
// The protocol is strictly request/response over a shared bus. A Device
// assumes exclusive ownership of its bus and signal-line handles and
// performs no internal locking; concurrent callers must serialize
// externally. There is also no timeout built in: a hung bus read hangs
// the caller, and any timeout policy belongs to the transport.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/tt21100/bus"
	"github.com/Alia5/tt21100/wire"
)

// DefaultAddr is the TT21100's fixed bus address.
const DefaultAddr uint8 = 0x24

// handshakeAttempts bounds the initialization handshake. Five length
// reads is what every known driver for this part performs.
const handshakeAttempts = 5

// ErrNotReady reports an operation on a session that never completed the
// initialization handshake.
var ErrNotReady = errors.New("session not ready")

// ErrIO reports a failed interrupt-line query.
var ErrIO = errors.New("signal line query failed")

type state uint8

const (
	stateUninitialized state = iota
	stateReady
	stateFaulted
)

// Device is one exclusive session against the controller. Use Open to
// construct it; the zero value refuses all operations.
type Device struct {
	ex     bus.Exchanger
	irq    bus.SignalLine
	addr   uint8
	state  state
	logger *slog.Logger
	frames frameLogger
}

// frameLogger is the raw-read mirroring hook; see WithFrameWriter.
type frameLogger interface {
	Log(prefix bool, data []byte)
}

// Open runs the initialization handshake and returns a ready session.
//
// The device's cold-start behavior is undocumented. When nothing is
// queued it answers every read with the length-2 sentinel, so the
// handshake polls the length prefix up to 5 times and succeeds on the
// first sentinel, proving the device responds coherently. If no attempt
// sees the sentinel, Open fails with a *wire.InvalidLengthError carrying
// the last observed length; a bus failure on the final attempt is
// returned instead. Nothing beyond proof-of-life is read into the
// sentinel.
func Open(ctx context.Context, ex bus.Exchanger, irq bus.SignalLine, opts ...Option) (*Device, error) {
	d := &Device{
		ex:     ex,
		irq:    irq,
		addr:   DefaultAddr,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		frames: noFrameLog{},
	}
	for _, o := range opts {
		o(d)
	}

	length := 0
	var lastErr error
	for attempt := 1; attempt <= handshakeAttempts; attempt++ {
		n, err := d.readLength(ctx)
		if err != nil {
			lastErr = err
			d.logger.Debug("handshake read failed", "attempt", attempt, "error", err)
			continue
		}
		lastErr = nil
		if n == wire.LenEmpty {
			d.state = stateReady
			d.logger.Debug("handshake complete", "attempts", attempt)
			return d, nil
		}
		length = n
		d.logger.Debug("handshake saw unexpected length", "attempt", attempt, "length", n)
	}

	d.state = stateFaulted
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, &wire.InvalidLengthError{Len: length}
}

// DataAvailable reports whether the interrupt line indicates a queued
// frame.
func (d *Device) DataAvailable(ctx context.Context) (bool, error) {
	if err := d.ensureReady(); err != nil {
		return false, err
	}
	queued, err := d.irq.Asserted(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return queued, nil
}

// ReadEvent runs one full poll cycle: query the signal line, read the
// length prefix, read the complete frame, classify and decode it.
//
// It returns wire.ErrNoData when the line is idle or the device answers
// with the empty-queue sentinel; both mean the poll raced the device, not
// that anything is broken. Bus and protocol failures surface to the
// caller and leave the session usable: a one-off corrupt frame does not
// imply pervasive desynchronization, and retry policy belongs to the
// caller.
func (d *Device) ReadEvent(ctx context.Context) (wire.Event, error) {
	if err := d.ensureReady(); err != nil {
		return nil, err
	}

	queued, err := d.irq.Asserted(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !queued {
		return nil, wire.ErrNoData
	}

	length, err := d.readLength(ctx)
	if err != nil {
		return nil, err
	}
	kind, err := wire.Classify(length)
	if err != nil {
		return nil, err
	}
	if kind == wire.KindEmpty {
		return nil, wire.ErrNoData
	}

	// The device re-embeds the length prefix at the start of the frame,
	// so the second transaction pulls the full `length` bytes rather
	// than just the remainder.
	frame := make([]byte, length)
	if err := d.read(ctx, frame); err != nil {
		return nil, err
	}
	d.logger.Debug("frame read", "length", length, "kind", kind.String())

	return wire.DecodeEvent(frame)
}

func (d *Device) ensureReady() error {
	if d.state != stateReady {
		return ErrNotReady
	}
	return nil
}

func (d *Device) readLength(ctx context.Context) (int, error) {
	var prefix [wire.PrefixSize]byte
	if err := d.read(ctx, prefix[:]); err != nil {
		return 0, err
	}
	return wire.MessageLength(prefix[:])
}

// read performs one addressed zero-write read transaction.
func (d *Device) read(ctx context.Context, buf []byte) error {
	if err := d.ex.Exchange(ctx, d.addr, nil, buf); err != nil {
		return &bus.Error{Op: "read", Err: err}
	}
	d.frames.Log(len(buf) == wire.PrefixSize, buf)
	return nil
}

type noFrameLog struct{}

func (noFrameLog) Log(bool, []byte) {}
