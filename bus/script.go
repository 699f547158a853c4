package bus

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Script is the YAML form of a frame capture: an ordered list of frames
// exactly as the device would serve them.
type Script struct {
	Frames []ScriptFrame `yaml:"frames"`
}

// ScriptFrame is one captured frame. Hex holds the complete frame
// including the length prefix; whitespace between digits is allowed so
// captures can stay grouped by field.
type ScriptFrame struct {
	Hex string `yaml:"hex"`
	// Note is free-form and ignored by the loader.
	Note string `yaml:"note,omitempty"`
}

// ParseScript decodes a YAML capture into raw frames.
func ParseScript(data []byte) ([][]byte, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	frames := make([][]byte, 0, len(s.Frames))
	for i, f := range s.Frames {
		raw, err := ParseHexFrame(f.Hex)
		if err != nil {
			return nil, fmt.Errorf("script frame %d: %w", i, err)
		}
		frames = append(frames, raw)
	}
	return frames, nil
}

// LoadScript reads and parses a YAML capture from disk.
func LoadScript(path string) ([][]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

// ParseHexFrame decodes a hex-encoded frame, ignoring any whitespace
// between digits.
func ParseHexFrame(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("decode hex frame: %w", err)
	}
	return raw, nil
}
