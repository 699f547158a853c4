// Package wire decodes the TT21100 message framing: length-prefixed frames
// read from the controller, classified by their total length and unpacked
// into typed touch and button records.
//
// Every frame begins with a little-endian 16-bit length that counts the
// whole frame, prefix included. The recognized lengths are:
//
//	 2: length prefix only; nothing queued on the device
//	 7: touch report without contact records
//	17: touch report plus one contact record
//	27: touch report plus two contact records
//	14: button record
//
// Any other length means the host and device have lost framing sync.
//
// Decoding is a pure transformation from a byte buffer to a value; nothing
// in this package touches the bus.
package wire

import "encoding/binary"

// PrefixSize is the size of the length preamble present on every frame.
const PrefixSize = 2

// Frame lengths recognized by Classify.
const (
	LenEmpty       = 2  // sentinel: prefix only, no event queued
	LenTouchReport = 7  // touch report, no records
	LenTouchOne    = 17 // touch report + one record
	LenTouchTwo    = 27 // touch report + two records
	LenButton      = 14 // button record
)

// Kind classifies a frame by its declared length.
type Kind uint8

const (
	// KindEmpty is the length-2 sentinel: no event queued.
	KindEmpty Kind = iota
	// KindTouch covers the 7/17/27-byte touch frames.
	KindTouch
	// KindButton is the 14-byte button frame.
	KindButton
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindTouch:
		return "touch"
	case KindButton:
		return "button"
	default:
		return "unknown"
	}
}

// Classify maps a frame length to its kind. Lengths outside
// {2, 7, 14, 17, 27} yield an *InvalidLengthError carrying the value.
//
// Classification must happen before the frame body is fetched; the result
// tells the caller how many bytes the full frame read has to pull.
func Classify(n int) (Kind, error) {
	switch n {
	case LenEmpty:
		return KindEmpty, nil
	case LenTouchReport, LenTouchOne, LenTouchTwo:
		return KindTouch, nil
	case LenButton:
		return KindButton, nil
	default:
		return 0, &InvalidLengthError{Len: n}
	}
}

// MessageLength decodes the 2-byte little-endian length preamble.
func MessageLength(prefix []byte) (int, error) {
	if len(prefix) < PrefixSize {
		return 0, &SizeError{Kind: "length prefix", Want: PrefixSize, Got: len(prefix)}
	}
	return int(binary.LittleEndian.Uint16(prefix)), nil
}
