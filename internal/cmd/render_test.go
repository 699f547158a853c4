package cmd

import (
	"bytes"
	"testing"

	"github.com/Alia5/tt21100/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventDocTouch(t *testing.T) {
	rec := &wire.TouchRecord{TouchID: 3, EventID: 1, Tip: true, X: 10, Y: 20}
	ev := wire.TouchEvent{
		Report:  wire.TouchReport{DataLen: 17, ReportID: 1, RecordNum: 1},
		Primary: rec,
	}

	doc := newEventDoc(ev)
	assert.Equal(t, "touch", doc.Kind)
	require.NotNil(t, doc.Report)
	assert.Equal(t, uint16(17), doc.Report.DataLen)
	require.Len(t, doc.Touches, 1)
	assert.Equal(t, uint8(3), doc.Touches[0].TouchID)
	assert.Nil(t, doc.Button)
}

func TestNewEventDocButton(t *testing.T) {
	ev := wire.ButtonEvent{Record: wire.ButtonRecord{
		Length:    14,
		ReportID:  wire.ButtonReportID,
		Timestamp: 9,
		Value:     0xf5, // upper nibble must not leak into the doc
	}}

	doc := newEventDoc(ev)
	assert.Equal(t, "button", doc.Kind)
	require.NotNil(t, doc.Button)
	assert.Equal(t, uint8(5), doc.Button.Buttons)
	assert.Nil(t, doc.Report)
}

func TestWriteEventText(t *testing.T) {
	var out bytes.Buffer
	writeEventText(&out, wire.TouchEvent{
		Report:  wire.TouchReport{ReportID: 1, RecordNum: 1},
		Primary: &wire.TouchRecord{TouchID: 2, Tip: true, X: 7, Y: 8},
	})
	assert.Contains(t, out.String(), "touch")
	assert.Contains(t, out.String(), "contact id=2")

	out.Reset()
	writeEventText(&out, wire.ButtonEvent{Record: wire.ButtonRecord{Value: 0x05}})
	assert.Contains(t, out.String(), "button buttons=0101")
}
