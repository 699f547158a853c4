package wire

import "encoding/binary"

// ButtonRecordSize is the encoded size of a ButtonRecord.
const ButtonRecordSize = 14

// ButtonReportID is the report identifier the device uses for button
// frames.
const ButtonReportID = 3

// ButtonRecord is the payload of a 14-byte button frame.
//
// Encoded layout (14 bytes, little-endian):
//
//	Bytes 0-1:  Length, always 14
//	Byte  2:    ReportID, always 3
//	Bytes 3-4:  Timestamp, in 100us units
//	Byte  5:    Value; only bits 3-0 are meaningful
//	Bytes 6-13: four 16-bit button signal levels
type ButtonRecord struct {
	Length   uint16
	ReportID uint8
	// Timestamp counts 100-microsecond ticks.
	Timestamp uint16
	// Value is the raw button byte as sent by the device; use Buttons
	// for the meaningful bits.
	Value uint8
	// Signals are the per-button signal levels.
	Signals [4]uint16
}

// Buttons returns the low nibble of the button value, one bit per button.
func (b *ButtonRecord) Buttons() uint8 { return b.Value & 0x0f }

// Pressed reports whether button i (0-3) is down.
func (b *ButtonRecord) Pressed(i int) bool {
	if i < 0 || i > 3 {
		return false
	}
	return b.Value>>uint(i)&0x01 != 0
}

// MarshalBinary encodes the record into its 14-byte wire layout.
func (b *ButtonRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ButtonRecordSize)
	binary.LittleEndian.PutUint16(buf[0:2], b.Length)
	buf[2] = b.ReportID
	binary.LittleEndian.PutUint16(buf[3:5], b.Timestamp)
	buf[5] = b.Value
	for i, s := range b.Signals {
		binary.LittleEndian.PutUint16(buf[6+2*i:8+2*i], s)
	}
	return buf, nil
}

// UnmarshalBinary decodes exactly ButtonRecordSize bytes into the record.
func (b *ButtonRecord) UnmarshalBinary(data []byte) error {
	if len(data) != ButtonRecordSize {
		return &SizeError{Kind: "button record", Want: ButtonRecordSize, Got: len(data)}
	}
	b.Length = binary.LittleEndian.Uint16(data[0:2])
	b.ReportID = data[2]
	b.Timestamp = binary.LittleEndian.Uint16(data[3:5])
	b.Value = data[5]
	for i := range b.Signals {
		b.Signals[i] = binary.LittleEndian.Uint16(data[6+2*i : 8+2*i])
	}
	return nil
}
