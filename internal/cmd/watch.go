package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/tt21100/bus"
	"github.com/Alia5/tt21100/driver"
	"github.com/Alia5/tt21100/internal/log"
	"github.com/Alia5/tt21100/wire"

	"golang.org/x/term"
)

// Watch replays a captured frame script through a complete driver
// session: handshake, interrupt-line polling, framing, decoding.
type Watch struct {
	Script string `arg:"" help:"YAML capture of frames to replay" type:"existingfile"`
	Output string `help:"Output format" enum:"auto,text,json" default:"auto"`
}

// Run is called by kong when the watch command is executed.
func (w *Watch) Run(logger *slog.Logger, sink log.FrameSink) error {
	frames, err := bus.LoadScript(w.Script)
	if err != nil {
		return fmt.Errorf("load script: %w", err)
	}

	ctx := context.Background()
	replay := bus.NewReplay()

	// Open against the idle device first; the handshake expects the
	// empty-queue sentinel, which a cold replay serves.
	dev, err := driver.Open(ctx, replay, replay,
		driver.WithLogger(logger),
		driver.WithFrameWriter(sink.W))
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	replay.Queue(frames...)
	logger.Info("session ready", "frames", len(frames))

	pretty := w.Output == "text" ||
		(w.Output == "auto" && term.IsTerminal(int(os.Stdout.Fd())))

	enc := json.NewEncoder(os.Stdout)
	decoded := 0
	for {
		queued, err := dev.DataAvailable(ctx)
		if err != nil {
			return err
		}
		if !queued {
			logger.Info("capture drained", "decoded", decoded)
			return nil
		}

		ev, err := dev.ReadEvent(ctx)
		if errors.Is(err, wire.ErrNoData) {
			// The capture raced the poll; nothing decoded this cycle.
			continue
		}
		if err != nil {
			return fmt.Errorf("read event: %w", err)
		}

		decoded++
		if pretty {
			writeEventText(os.Stdout, ev)
			continue
		}
		if err := enc.Encode(newEventDoc(ev)); err != nil {
			return err
		}
	}
}
