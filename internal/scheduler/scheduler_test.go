package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"omniflow-broadcast/internal/core/domain"
	"omniflow-broadcast/internal/core/port"
	"omniflow-broadcast/internal/core/port/mocks"
)

func waitForAtLeast(t *testing.T, counter *atomic.Int32, want int32) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if counter.Load() >= want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d ticks, got %d", want, counter.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(0, func(context.Context) {})
	assert.Error(t, err)

	_, err = New(time.Second, nil)
	assert.Error(t, err)

	s, err := New(time.Second, func(context.Context) {})
	require.NoError(t, err)
	assert.False(t, s.IsRunning())
}

func TestScheduler_TicksImmediatelyThenOnInterval(t *testing.T) {
	var ticks atomic.Int32
	s, err := New(20*time.Millisecond, func(context.Context) { ticks.Add(1) })
	require.NoError(t, err)

	require.True(t, s.Start())
	defer s.Stop()

	// first tick fires before the first interval elapses
	waitForAtLeast(t, &ticks, 1)
	waitForAtLeast(t, &ticks, 3)
}

func TestScheduler_StartIsIdempotent(t *testing.T) {
	s, err := New(time.Hour, func(context.Context) {})
	require.NoError(t, err)

	require.True(t, s.Start())
	defer s.Stop()
	assert.False(t, s.Start())
	assert.True(t, s.IsRunning())
}

func TestScheduler_StopWaitsForLoop(t *testing.T) {
	var ticks atomic.Int32
	s, err := New(10*time.Millisecond, func(context.Context) { ticks.Add(1) })
	require.NoError(t, err)

	require.True(t, s.Start())
	waitForAtLeast(t, &ticks, 1)

	require.True(t, s.Stop())
	assert.False(t, s.IsRunning())
	assert.False(t, s.Stop())

	at := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, at, ticks.Load())
}

func TestScheduler_RestartsAfterStop(t *testing.T) {
	var ticks atomic.Int32
	s, err := New(10*time.Millisecond, func(context.Context) { ticks.Add(1) })
	require.NoError(t, err)

	require.True(t, s.Start())
	waitForAtLeast(t, &ticks, 1)
	require.True(t, s.Stop())

	require.True(t, s.Start())
	defer s.Stop()
	before := ticks.Load()
	waitForAtLeast(t, &ticks, before+1)
}

func TestScheduler_RecoversFromPanic(t *testing.T) {
	var ticks atomic.Int32
	s, err := New(10*time.Millisecond, func(context.Context) {
		if ticks.Add(1) == 1 {
			panic("boom")
		}
	})
	require.NoError(t, err)

	require.True(t, s.Start())
	defer s.Stop()

	// the loop survives the first tick's panic and keeps ticking
	waitForAtLeast(t, &ticks, 3)
}

func TestBroadcastTick_AdvancesRunningCampaigns(t *testing.T) {
	svc := mocks.NewMockBroadcastUseCase(t)
	logger := slog.New(slog.DiscardHandler)

	svc.EXPECT().ListCampaigns(mock.Anything, "", domain.CampaignRunning).
		Return([]domain.Campaign{{ID: "camp-1"}, {ID: "camp-2"}}, nil)
	svc.EXPECT().Send(mock.Anything, "camp-1", mock.MatchedBy(func(opts port.SendOptions) bool {
		return opts.BatchSize == 20 && opts.DelayMs != nil && *opts.DelayMs == 250
	})).Return(&port.SendResult{Sent: 20, Remaining: 5}, nil)
	svc.EXPECT().Send(mock.Anything, "camp-2", mock.Anything).
		Return(&port.SendResult{Sent: 5, Completed: true}, nil)

	tick := NewBroadcastTick(svc, logger, 20, 250)
	tick(context.Background())
}

func TestBroadcastTick_OneFailureDoesNotStopOthers(t *testing.T) {
	svc := mocks.NewMockBroadcastUseCase(t)
	logger := slog.New(slog.DiscardHandler)

	svc.EXPECT().ListCampaigns(mock.Anything, "", domain.CampaignRunning).
		Return([]domain.Campaign{{ID: "camp-1"}, {ID: "camp-2"}}, nil)
	svc.EXPECT().Send(mock.Anything, "camp-1", mock.Anything).
		Return(nil, errors.New("pool exhausted"))
	svc.EXPECT().Send(mock.Anything, "camp-2", mock.Anything).
		Return(&port.SendResult{Sent: 1}, nil)

	tick := NewBroadcastTick(svc, logger, 10, 0)
	tick(context.Background())

	svc.AssertNumberOfCalls(t, "Send", 2)
}

func TestBroadcastTick_StopsOnCancelledContext(t *testing.T) {
	svc := mocks.NewMockBroadcastUseCase(t)
	logger := slog.New(slog.DiscardHandler)

	svc.EXPECT().ListCampaigns(mock.Anything, "", domain.CampaignRunning).
		Return([]domain.Campaign{{ID: "camp-1"}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tick := NewBroadcastTick(svc, logger, 10, 0)
	tick(ctx)

	svc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
