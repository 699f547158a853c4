package bus

import (
	"context"

	"github.com/Alia5/tt21100/wire"
)

// Replay serves pre-recorded frames, emulating the TT21100 polling
// contract without hardware: a 2-byte read returns the pending frame's
// length prefix (or the 02 00 sentinel when nothing is queued) and a
// longer read pops and returns the whole frame, prefix included. It
// implements both Exchanger and SignalLine so captures can be driven
// through the full driver path.
//
// Replay is not safe for concurrent use, matching the single-caller
// contract of the driver.
type Replay struct {
	frames [][]byte
}

// NewReplay returns a Replay with the given frames queued, in order. Each
// frame must be a complete capture including its 2-byte length prefix.
func NewReplay(frames ...[]byte) *Replay {
	return &Replay{frames: frames}
}

// Queue appends frames to the pending queue.
func (r *Replay) Queue(frames ...[]byte) {
	r.frames = append(r.frames, frames...)
}

// Pending returns the number of frames not yet consumed.
func (r *Replay) Pending() int { return len(r.frames) }

// Asserted implements SignalLine: the virtual interrupt line is asserted
// while frames remain queued.
func (r *Replay) Asserted(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return len(r.frames) > 0, nil
}

// Exchange implements Exchanger. Writes are accepted and discarded, as
// the real device is only ever read from. A prefix-sized read peeks at
// the head frame's length; any larger read consumes the head frame.
func (r *Replay) Exchange(ctx context.Context, addr uint8, w, rd []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(r.frames) == 0 {
		// Idle device: every read sees the empty-queue sentinel.
		fillFrame(rd, []byte{wire.LenEmpty, 0x00})
		return nil
	}
	head := r.frames[0]
	if len(rd) <= wire.PrefixSize {
		fillFrame(rd, head)
		if len(head) <= wire.PrefixSize {
			// A queued sentinel frame has no body to fetch, so the
			// prefix read is the whole cycle.
			r.frames = r.frames[1:]
		}
		return nil
	}
	fillFrame(rd, head)
	r.frames = r.frames[1:]
	return nil
}

func fillFrame(dst, src []byte) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}
