package bus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Alia5/tt21100/bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlockingBus struct {
	calls int
	addr  uint8
	err   error
	data  []byte
}

func (f *fakeBlockingBus) Exchange(addr uint8, w, r []byte) error {
	f.calls++
	f.addr = addr
	if f.err != nil {
		return f.err
	}
	copy(r, f.data)
	return nil
}

type fakeBlockingLine struct {
	calls    int
	asserted bool
	err      error
}

func (f *fakeBlockingLine) Asserted() (bool, error) {
	f.calls++
	return f.asserted, f.err
}

func TestFromBlockingDelegates(t *testing.T) {
	fake := &fakeBlockingBus{data: []byte{0x02, 0x00}}
	ex := bus.FromBlocking(fake)

	buf := make([]byte, 2)
	require.NoError(t, ex.Exchange(context.Background(), 0x24, nil, buf))
	assert.Equal(t, []byte{0x02, 0x00}, buf)
	assert.Equal(t, uint8(0x24), fake.addr)
	assert.Equal(t, 1, fake.calls)

	fake.err = errors.New("nack")
	assert.Error(t, ex.Exchange(context.Background(), 0x24, nil, buf))
}

func TestFromBlockingChecksContextFirst(t *testing.T) {
	fake := &fakeBlockingBus{}
	ex := bus.FromBlocking(fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ex.Exchange(ctx, 0x24, nil, make([]byte, 2))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, fake.calls, "cancelled context must not reach the bus")
}

func TestLineFromBlocking(t *testing.T) {
	fake := &fakeBlockingLine{asserted: true}
	line := bus.LineFromBlocking(fake)

	queued, err := line.Asserted(context.Background())
	require.NoError(t, err)
	assert.True(t, queued)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = line.Asserted(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, fake.calls)
}
