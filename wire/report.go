package wire

import "encoding/binary"

// TouchReportSize is the encoded size of a TouchReport.
const TouchReportSize = 7

// TouchReport is the prelude carried by every touch frame.
//
// Encoded layout (7 bytes, little-endian):
//
//	Bytes 0-1: DataLen, total frame length (7, 17, or 27)
//	Byte  2:   ReportID
//	Bytes 3-4: Timestamp
//	Byte  5:   bits 7-6 padding, bit 5 LargeObject, bits 4-0 RecordNum
//	Byte  6:   bits 7-6 ReportCounter, bits 5-3 padding, bits 2-0 NoiseEffect
//
// Padding bits carry no meaning; they are ignored on decode and written as
// zero on encode.
type TouchReport struct {
	// DataLen is the total frame length the device claims for this
	// report. A value disagreeing with the frame it was decoded from is
	// not fatal, but marks the frame as suspect.
	DataLen   uint16
	ReportID  uint8
	Timestamp uint16
	// LargeObject is set when the controller saw a contact too large to
	// classify as a regular touch.
	LargeObject bool
	// RecordNum is the number of touch records active on the device.
	RecordNum uint8
	// ReportCounter is a 2-bit rolling counter incremented per report.
	ReportCounter uint8
	// NoiseEffect is a 3-bit noise condition code.
	NoiseEffect uint8
}

// Flags byte (report byte 5): the large-object flag sits at bit 5 under
// two padding bits; the 5-bit record count occupies bits 4-0.
func reportLargeObject(b byte) bool { return b>>5&0x01 != 0 }
func reportRecordNum(b byte) uint8  { return b & 0x1f }

// Counter byte (report byte 6): 2-bit rolling counter at bits 7-6, three
// padding bits, 3-bit noise code at bits 2-0.
func reportCounter(b byte) uint8     { return b >> 6 & 0x03 }
func reportNoiseEffect(b byte) uint8 { return b & 0x07 }

// MarshalBinary encodes the report into its 7-byte wire layout.
func (r *TouchReport) MarshalBinary() ([]byte, error) {
	b := make([]byte, TouchReportSize)
	binary.LittleEndian.PutUint16(b[0:2], r.DataLen)
	b[2] = r.ReportID
	binary.LittleEndian.PutUint16(b[3:5], r.Timestamp)
	b[5] = r.RecordNum & 0x1f
	if r.LargeObject {
		b[5] |= 1 << 5
	}
	b[6] = (r.ReportCounter&0x03)<<6 | r.NoiseEffect&0x07
	return b, nil
}

// UnmarshalBinary decodes exactly TouchReportSize bytes into the report.
func (r *TouchReport) UnmarshalBinary(data []byte) error {
	if len(data) != TouchReportSize {
		return &SizeError{Kind: "touch report", Want: TouchReportSize, Got: len(data)}
	}
	r.DataLen = binary.LittleEndian.Uint16(data[0:2])
	r.ReportID = data[2]
	r.Timestamp = binary.LittleEndian.Uint16(data[3:5])
	r.LargeObject = reportLargeObject(data[5])
	r.RecordNum = reportRecordNum(data[5])
	r.ReportCounter = reportCounter(data[6])
	r.NoiseEffect = reportNoiseEffect(data[6])
	return nil
}
