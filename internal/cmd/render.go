package cmd

import (
	"fmt"
	"io"

	"github.com/Alia5/tt21100/wire"
)

// eventDoc is the serialized shape of a decoded event for the json and
// yaml output formats.
type eventDoc struct {
	Kind    string     `json:"kind" yaml:"kind"`
	Report  *reportDoc `json:"report,omitempty" yaml:"report,omitempty"`
	Touches []touchDoc `json:"touches,omitempty" yaml:"touches,omitempty"`
	Button  *buttonDoc `json:"button,omitempty" yaml:"button,omitempty"`
}

type reportDoc struct {
	DataLen       uint16 `json:"dataLen" yaml:"dataLen"`
	ReportID      uint8  `json:"reportId" yaml:"reportId"`
	Timestamp     uint16 `json:"timestamp" yaml:"timestamp"`
	LargeObject   bool   `json:"largeObject" yaml:"largeObject"`
	RecordNum     uint8  `json:"recordNum" yaml:"recordNum"`
	ReportCounter uint8  `json:"reportCounter" yaml:"reportCounter"`
	NoiseEffect   uint8  `json:"noiseEffect" yaml:"noiseEffect"`
}

type touchDoc struct {
	TouchType       uint8  `json:"touchType" yaml:"touchType"`
	Tip             bool   `json:"tip" yaml:"tip"`
	EventID         uint8  `json:"eventId" yaml:"eventId"`
	TouchID         uint8  `json:"touchId" yaml:"touchId"`
	X               uint16 `json:"x" yaml:"x"`
	Y               uint16 `json:"y" yaml:"y"`
	Pressure        uint8  `json:"pressure" yaml:"pressure"`
	MajorAxisLength uint16 `json:"majorAxisLength" yaml:"majorAxisLength"`
	Orientation     uint8  `json:"orientation" yaml:"orientation"`
}

type buttonDoc struct {
	Timestamp uint16    `json:"timestamp" yaml:"timestamp"`
	Buttons   uint8     `json:"buttons" yaml:"buttons"`
	Signals   [4]uint16 `json:"signals" yaml:"signals"`
}

func newTouchDoc(r *wire.TouchRecord) touchDoc {
	return touchDoc{
		TouchType:       r.TouchType,
		Tip:             r.Tip,
		EventID:         r.EventID,
		TouchID:         r.TouchID,
		X:               r.X,
		Y:               r.Y,
		Pressure:        r.Pressure,
		MajorAxisLength: r.MajorAxisLength,
		Orientation:     r.Orientation,
	}
}

func newEventDoc(ev wire.Event) eventDoc {
	switch e := ev.(type) {
	case wire.TouchEvent:
		doc := eventDoc{
			Kind: "touch",
			Report: &reportDoc{
				DataLen:       e.Report.DataLen,
				ReportID:      e.Report.ReportID,
				Timestamp:     e.Report.Timestamp,
				LargeObject:   e.Report.LargeObject,
				RecordNum:     e.Report.RecordNum,
				ReportCounter: e.Report.ReportCounter,
				NoiseEffect:   e.Report.NoiseEffect,
			},
		}
		if e.Primary != nil {
			doc.Touches = append(doc.Touches, newTouchDoc(e.Primary))
		}
		if e.Secondary != nil {
			doc.Touches = append(doc.Touches, newTouchDoc(e.Secondary))
		}
		return doc
	case wire.ButtonEvent:
		return eventDoc{
			Kind: "button",
			Button: &buttonDoc{
				Timestamp: e.Record.Timestamp,
				Buttons:   e.Record.Buttons(),
				Signals:   e.Record.Signals,
			},
		}
	default:
		return eventDoc{Kind: "unknown"}
	}
}

// writeEventText prints one event in the human-readable format used on
// terminals.
func writeEventText(w io.Writer, ev wire.Event) {
	switch e := ev.(type) {
	case wire.TouchEvent:
		fmt.Fprintf(w, "touch  id=%d ts=%d records=%d counter=%d noise=%d large_object=%t\n",
			e.Report.ReportID, e.Report.Timestamp, e.Report.RecordNum,
			e.Report.ReportCounter, e.Report.NoiseEffect, e.Report.LargeObject)
		for _, rec := range []*wire.TouchRecord{e.Primary, e.Secondary} {
			if rec == nil {
				continue
			}
			fmt.Fprintf(w, "  contact id=%d phase=%d tip=%t x=%d y=%d pressure=%d axis=%d orientation=%d\n",
				rec.TouchID, rec.EventID, rec.Tip, rec.X, rec.Y,
				rec.Pressure, rec.MajorAxisLength, rec.Orientation)
		}
	case wire.ButtonEvent:
		fmt.Fprintf(w, "button buttons=%04b ts=%d signals=%v\n",
			e.Record.Buttons(), e.Record.Timestamp, e.Record.Signals)
	}
}
