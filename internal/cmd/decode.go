package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/tt21100/bus"
	"github.com/Alia5/tt21100/wire"

	yaml "gopkg.in/yaml.v3"
)

// Decode unpacks one hex-encoded frame and prints it.
type Decode struct {
	Frame  string `arg:"" help:"Hex-encoded frame including the 2-byte length prefix; whitespace allowed"`
	Format string `help:"Output format" enum:"text,json,yaml" default:"text"`
}

// Run is called by kong when the decode command is executed.
func (c *Decode) Run(logger *slog.Logger) error {
	raw, err := bus.ParseHexFrame(c.Frame)
	if err != nil {
		return err
	}

	ev, err := wire.DecodeEvent(raw)
	if errors.Is(err, wire.ErrNoData) {
		fmt.Println("empty frame: no event queued")
		return nil
	}
	if err != nil {
		return fmt.Errorf("decode frame: %w", err)
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(newEventDoc(ev))
	case "yaml":
		out, err := yaml.Marshal(newEventDoc(ev))
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	default:
		writeEventText(os.Stdout, ev)
		return nil
	}
}
