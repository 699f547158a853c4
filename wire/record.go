package wire

import "encoding/binary"

// TouchRecordSize is the encoded size of a TouchRecord.
const TouchRecordSize = 10

// TouchRecord is the per-contact payload of a touch frame. Up to two
// records follow one TouchReport, depending on the frame length.
//
// Encoded layout (10 bytes, little-endian):
//
//	Byte  0:   bits 7-3 padding, bits 2-0 TouchType
//	Byte  1:   bit 7 Tip, bits 6-5 EventID, bits 4-0 TouchID
//	Bytes 2-3: X
//	Bytes 4-5: Y
//	Byte  6:   Pressure
//	Bytes 7-8: MajorAxisLength
//	Byte  9:   Orientation
type TouchRecord struct {
	// TouchType is a 3-bit contact classification code.
	TouchType uint8
	// Tip reports whether the contact is currently touching the panel.
	Tip bool
	// EventID is the 2-bit event phase identifier.
	EventID uint8
	// TouchID distinguishes simultaneous contacts.
	TouchID uint8
	X       uint16
	Y       uint16
	// Pressure is the reported contact pressure.
	Pressure uint8
	// MajorAxisLength is the length of the contact ellipse's major axis.
	MajorAxisLength uint16
	Orientation     uint8
}

// Type byte (record byte 0): 3-bit touch type at bits 2-0 under five
// padding bits.
func recordTouchType(b byte) uint8 { return b & 0x07 }

// ID byte (record byte 1): tip flag at bit 7, 2-bit event phase at bits
// 6-5, 5-bit touch identifier at bits 4-0.
func recordTip(b byte) bool      { return b>>7&0x01 != 0 }
func recordEventID(b byte) uint8 { return b >> 5 & 0x03 }
func recordTouchID(b byte) uint8 { return b & 0x1f }

// MarshalBinary encodes the record into its 10-byte wire layout.
func (r *TouchRecord) MarshalBinary() ([]byte, error) {
	b := make([]byte, TouchRecordSize)
	b[0] = r.TouchType & 0x07
	b[1] = (r.EventID&0x03)<<5 | r.TouchID&0x1f
	if r.Tip {
		b[1] |= 1 << 7
	}
	binary.LittleEndian.PutUint16(b[2:4], r.X)
	binary.LittleEndian.PutUint16(b[4:6], r.Y)
	b[6] = r.Pressure
	binary.LittleEndian.PutUint16(b[7:9], r.MajorAxisLength)
	b[9] = r.Orientation
	return b, nil
}

// UnmarshalBinary decodes exactly TouchRecordSize bytes into the record.
func (r *TouchRecord) UnmarshalBinary(data []byte) error {
	if len(data) != TouchRecordSize {
		return &SizeError{Kind: "touch record", Want: TouchRecordSize, Got: len(data)}
	}
	r.TouchType = recordTouchType(data[0])
	r.Tip = recordTip(data[1])
	r.EventID = recordEventID(data[1])
	r.TouchID = recordTouchID(data[1])
	r.X = binary.LittleEndian.Uint16(data[2:4])
	r.Y = binary.LittleEndian.Uint16(data[4:6])
	r.Pressure = data[6]
	r.MajorAxisLength = binary.LittleEndian.Uint16(data[7:9])
	r.Orientation = data[9]
	return nil
}
