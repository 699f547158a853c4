package driver

import (
	"io"
	"log/slog"

	"github.com/Alia5/tt21100/internal/log"
)

// Option configures a Device before the handshake runs.
type Option func(*Device)

// WithAddress overrides the bus address. Real TT21100 parts answer at
// DefaultAddr; this exists for address translators and test transports.
func WithAddress(addr uint8) Option {
	return func(d *Device) { d.addr = addr }
}

// WithLogger attaches a structured logger for session diagnostics. By
// default the session is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Device) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithFrameWriter mirrors every raw bus read to w as timestamped hex
// lines. A nil writer leaves mirroring disabled.
func WithFrameWriter(w io.Writer) Option {
	return func(d *Device) {
		if w != nil {
			d.frames = log.NewFrameLogger(w)
		}
	}
}
