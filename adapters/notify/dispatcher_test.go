package notify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

type fakeChannel struct {
	name  string
	fail  bool
	calls atomic.Int32
}

func (f *fakeChannel) Name() string { return f.name }

func (f *fakeChannel) Send(_ context.Context, _ Message) error {
	f.calls.Add(1)
	if f.fail {
		return errors.New("boom")
	}
	return nil
}

func TestDispatch_FansOutToAllChannels(t *testing.T) {
	a := &fakeChannel{name: "a"}
	b := &fakeChannel{name: "b"}

	d := NewDispatcher(logger.NewNop(), a, b)
	d.Dispatch(Message{Kind: KindContact, Subject: "hello"})
	d.Wait()

	assert.Equal(t, int32(1), a.calls.Load())
	assert.Equal(t, int32(1), b.calls.Load())
}

func TestDispatch_OneFailureDoesNotStopOthers(t *testing.T) {
	failing := &fakeChannel{name: "failing", fail: true}
	healthy := &fakeChannel{name: "healthy"}

	d := NewDispatcher(logger.NewNop(), failing, healthy)

	// Dispatch must not panic or return anything on failure
	d.Dispatch(Message{Kind: KindBooking, Subject: "x"})
	d.Wait()

	assert.Equal(t, int32(1), failing.calls.Load())
	assert.Equal(t, int32(1), healthy.calls.Load())
}

func TestDispatch_NoChannelsIsANoOp(t *testing.T) {
	d := NewDispatcher(logger.NewNop())
	d.Dispatch(Message{Kind: KindContact})
	d.Wait()
}
