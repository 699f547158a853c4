package wire

// Event is one decoded frame: either a TouchEvent or a ButtonEvent.
// Events are plain values materialized from a single read cycle; they hold
// no reference to the transport they were read from.
type Event interface {
	event()
}

// TouchEvent is a touch report plus its optional contact records.
type TouchEvent struct {
	Report TouchReport
	// Primary and Secondary are the optional contact records: a 7-byte
	// frame carries neither, a 17-byte frame only Primary, a 27-byte
	// frame both. Nil means absent.
	Primary   *TouchRecord
	Secondary *TouchRecord
}

// ButtonEvent is a button state change.
type ButtonEvent struct {
	Record ButtonRecord
}

func (TouchEvent) event()  {}
func (ButtonEvent) event() {}

// DecodeEvent classifies and decodes one complete frame, length prefix
// included. The length-2 sentinel yields ErrNoData; lengths matching no
// frame shape yield *InvalidLengthError.
func DecodeEvent(frame []byte) (Event, error) {
	kind, err := Classify(len(frame))
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindEmpty:
		return nil, ErrNoData
	case KindTouch:
		return decodeTouch(frame)
	default:
		return decodeButton(frame)
	}
}

func decodeTouch(frame []byte) (Event, error) {
	var ev TouchEvent
	if err := ev.Report.UnmarshalBinary(frame[:TouchReportSize]); err != nil {
		return nil, err
	}
	if len(frame) >= LenTouchOne {
		rec := new(TouchRecord)
		if err := rec.UnmarshalBinary(frame[TouchReportSize : TouchReportSize+TouchRecordSize]); err != nil {
			return nil, err
		}
		ev.Primary = rec
	}
	if len(frame) == LenTouchTwo {
		rec := new(TouchRecord)
		if err := rec.UnmarshalBinary(frame[LenTouchOne:LenTouchTwo]); err != nil {
			return nil, err
		}
		ev.Secondary = rec
	}
	return ev, nil
}

func decodeButton(frame []byte) (Event, error) {
	var ev ButtonEvent
	if err := ev.Record.UnmarshalBinary(frame); err != nil {
		return nil, err
	}
	return ev, nil
}
