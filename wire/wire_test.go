package wire_test

import (
	"errors"
	"testing"

	"github.com/Alia5/tt21100/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	type testCase struct {
		length int
		kind   wire.Kind
	}
	for _, tc := range []testCase{
		{2, wire.KindEmpty},
		{7, wire.KindTouch},
		{17, wire.KindTouch},
		{27, wire.KindTouch},
		{14, wire.KindButton},
	} {
		kind, err := wire.Classify(tc.length)
		assert.NoError(t, err, "length %d", tc.length)
		assert.Equal(t, tc.kind, kind, "length %d", tc.length)
	}
}

func TestClassifyInvalidLengths(t *testing.T) {
	for _, n := range []int{0, 1, 3, 6, 8, 13, 15, 16, 26, 28, 32, 255, 65535} {
		_, err := wire.Classify(n)
		var invalid *wire.InvalidLengthError
		require.ErrorAs(t, err, &invalid, "length %d", n)
		assert.Equal(t, n, invalid.Len, "length %d", n)
	}
}

func TestMessageLength(t *testing.T) {
	n, err := wire.MessageLength([]byte{0x1b, 0x00})
	require.NoError(t, err)
	assert.Equal(t, 27, n)

	n, err = wire.MessageLength([]byte{0x02, 0x01, 0xff})
	require.NoError(t, err)
	assert.Equal(t, 0x0102, n)

	_, err = wire.MessageLength([]byte{0x02})
	var size *wire.SizeError
	require.ErrorAs(t, err, &size)
	assert.Equal(t, 2, size.Want)
	assert.Equal(t, 1, size.Got)
}

func marshalFrame(t *testing.T, parts ...interface{ MarshalBinary() ([]byte, error) }) []byte {
	t.Helper()
	var frame []byte
	for _, p := range parts {
		b, err := p.MarshalBinary()
		require.NoError(t, err)
		frame = append(frame, b...)
	}
	return frame
}

func TestDecodeEventTouchShapes(t *testing.T) {
	report := &wire.TouchReport{DataLen: 7, ReportID: 1, Timestamp: 0x1234, RecordNum: 0}
	rec0 := &wire.TouchRecord{TouchType: 1, Tip: true, EventID: 1, TouchID: 3, X: 120, Y: 240, Pressure: 50, MajorAxisLength: 9, Orientation: 2}
	rec1 := &wire.TouchRecord{TouchType: 1, Tip: false, EventID: 2, TouchID: 4, X: 10, Y: 20, Pressure: 1, MajorAxisLength: 3, Orientation: 0}

	ev, err := wire.DecodeEvent(marshalFrame(t, report))
	require.NoError(t, err)
	touch, ok := ev.(wire.TouchEvent)
	require.True(t, ok)
	assert.Equal(t, *report, touch.Report)
	assert.Nil(t, touch.Primary)
	assert.Nil(t, touch.Secondary)

	report.DataLen = 17
	report.RecordNum = 1
	ev, err = wire.DecodeEvent(marshalFrame(t, report, rec0))
	require.NoError(t, err)
	touch, ok = ev.(wire.TouchEvent)
	require.True(t, ok)
	require.NotNil(t, touch.Primary)
	assert.Equal(t, *rec0, *touch.Primary)
	assert.Nil(t, touch.Secondary)

	report.DataLen = 27
	report.RecordNum = 2
	ev, err = wire.DecodeEvent(marshalFrame(t, report, rec0, rec1))
	require.NoError(t, err)
	touch, ok = ev.(wire.TouchEvent)
	require.True(t, ok)
	require.NotNil(t, touch.Primary)
	require.NotNil(t, touch.Secondary)
	assert.Equal(t, *rec0, *touch.Primary)
	assert.Equal(t, *rec1, *touch.Secondary)
}

func TestDecodeEventButton(t *testing.T) {
	frame := []byte{
		0x0e, 0x00, // length = 14
		0x03,       // report id = 3
		0x10, 0x27, // timestamp = 10000 (1 second)
		0x05,                   // buttons 0 and 2
		0x00, 0x00, 0x00, 0x00, // signals
		0x00, 0x00, 0x00, 0x00,
	}
	ev, err := wire.DecodeEvent(frame)
	require.NoError(t, err)
	button, ok := ev.(wire.ButtonEvent)
	require.True(t, ok)
	assert.Equal(t, uint16(14), button.Record.Length)
	assert.Equal(t, uint8(wire.ButtonReportID), button.Record.ReportID)
	assert.Equal(t, uint16(10000), button.Record.Timestamp)
	assert.Equal(t, uint8(5), button.Record.Buttons())
	assert.True(t, button.Record.Pressed(0))
	assert.False(t, button.Record.Pressed(1))
	assert.True(t, button.Record.Pressed(2))
	assert.False(t, button.Record.Pressed(3))
}

func TestDecodeEventSentinel(t *testing.T) {
	ev, err := wire.DecodeEvent([]byte{0x02, 0x00})
	assert.Nil(t, ev)
	assert.ErrorIs(t, err, wire.ErrNoData)
}

func TestDecodeEventInvalidLength(t *testing.T) {
	ev, err := wire.DecodeEvent(make([]byte, 9))
	assert.Nil(t, ev)
	var invalid *wire.InvalidLengthError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 9, invalid.Len)
}

func TestTouchReportRoundTrip(t *testing.T) {
	raw := []byte{
		0x1b, 0x00, // data_len = 27
		0x01,       // report id
		0x34, 0x12, // timestamp
		0b00101101, // large_object=1, record_num=13
		0b10000101, // report_counter=2, noise_effect=5
	}
	var report wire.TouchReport
	require.NoError(t, report.UnmarshalBinary(raw))
	assert.Equal(t, uint16(27), report.DataLen)
	assert.Equal(t, uint16(0x1234), report.Timestamp)
	assert.True(t, report.LargeObject)
	assert.Equal(t, uint8(13), report.RecordNum)
	assert.Equal(t, uint8(2), report.ReportCounter)
	assert.Equal(t, uint8(5), report.NoiseEffect)

	out, err := report.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestTouchRecordRoundTrip(t *testing.T) {
	raw := []byte{
		0b00000010, // touch_type = 2
		0b10100111, // tip=1, event_id=1, touch_id=7
		0xe8, 0x03, // x = 1000
		0xd0, 0x07, // y = 2000
		0x2a,       // pressure
		0x0b, 0x00, // major axis length
		0x03, // orientation
	}
	var rec wire.TouchRecord
	require.NoError(t, rec.UnmarshalBinary(raw))
	assert.Equal(t, uint8(2), rec.TouchType)
	assert.True(t, rec.Tip)
	assert.Equal(t, uint8(1), rec.EventID)
	assert.Equal(t, uint8(7), rec.TouchID)
	assert.Equal(t, uint16(1000), rec.X)
	assert.Equal(t, uint16(2000), rec.Y)

	out, err := rec.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestButtonRecordRoundTrip(t *testing.T) {
	rec := wire.ButtonRecord{
		Length:    14,
		ReportID:  wire.ButtonReportID,
		Timestamp: 777,
		Value:     0x0a,
		Signals:   [4]uint16{100, 200, 300, 400},
	}
	raw, err := rec.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, raw, wire.ButtonRecordSize)

	var back wire.ButtonRecord
	require.NoError(t, back.UnmarshalBinary(raw))
	assert.Equal(t, rec, back)
}

func TestUnmarshalSizeMismatch(t *testing.T) {
	var report wire.TouchReport
	var rec wire.TouchRecord
	var button wire.ButtonRecord

	type testCase struct {
		name string
		err  error
		want int
	}
	cases := []testCase{
		{"report short", report.UnmarshalBinary(make([]byte, 6)), wire.TouchReportSize},
		{"report long", report.UnmarshalBinary(make([]byte, 8)), wire.TouchReportSize},
		{"record short", rec.UnmarshalBinary(make([]byte, 9)), wire.TouchRecordSize},
		{"button short", button.UnmarshalBinary(make([]byte, 13)), wire.ButtonRecordSize},
	}
	for _, tc := range cases {
		var size *wire.SizeError
		require.ErrorAs(t, tc.err, &size, tc.name)
		assert.Equal(t, tc.want, size.Want, tc.name)
	}
}

func TestPaddingIgnoredOnDecode(t *testing.T) {
	// Same frame with every padding bit set must decode identically and
	// re-encode with the padding canonically zeroed.
	clean := []byte{0x07, 0x00, 0x01, 0x00, 0x00, 0b00101101, 0b10000101}
	dirty := []byte{0x07, 0x00, 0x01, 0x00, 0x00, 0b11101101, 0b10111101}

	var a, b wire.TouchReport
	require.NoError(t, a.UnmarshalBinary(clean))
	require.NoError(t, b.UnmarshalBinary(dirty))
	assert.Equal(t, a, b)

	out, err := b.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, clean, out)
}

func TestDecodeTruncatedFrameFailsClassification(t *testing.T) {
	// A transport that truncates a 17-byte frame to 16 bytes must surface
	// an error rather than decode garbage.
	_, err := wire.DecodeEvent(make([]byte, 16))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, wire.ErrNoData))
}
