package bus

import "context"

// BlockingExchanger is the non-suspending flavor of Exchanger, for
// transports whose exchange call simply blocks the calling goroutine
// until the bus transaction completes.
type BlockingExchanger interface {
	Exchange(addr uint8, w, r []byte) error
}

// BlockingSignalLine is the non-suspending flavor of SignalLine.
type BlockingSignalLine interface {
	Asserted() (bool, error)
}

// FromBlocking adapts a blocking transport to the context-aware Exchanger.
// The context is only consulted between transactions; an exchange that has
// already started cannot be interrupted.
func FromBlocking(b BlockingExchanger) Exchanger {
	return blockingExchanger{b: b}
}

type blockingExchanger struct {
	b BlockingExchanger
}

func (a blockingExchanger) Exchange(ctx context.Context, addr uint8, w, r []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.b.Exchange(addr, w, r)
}

// LineFromBlocking adapts a blocking signal line to the context-aware
// SignalLine, with the same between-calls cancellation semantics as
// FromBlocking.
func LineFromBlocking(b BlockingSignalLine) SignalLine {
	return blockingLine{b: b}
}

type blockingLine struct {
	b BlockingSignalLine
}

func (a blockingLine) Asserted(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return a.b.Asserted()
}
