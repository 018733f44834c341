package autoplay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDisabledTimerNeverStarts(t *testing.T) {
	t.Parallel()

	timer := NewTimer(0)
	require.False(t, timer.Enabled())

	_, ok := timer.Start()
	require.False(t, ok)
	require.False(t, timer.Running())
}

func TestThreeUninterruptedTicks(t *testing.T) {
	t.Parallel()

	timer := NewTimer(time.Second)
	gen, ok := timer.Start()
	require.True(t, ok)

	fired := 0
	for i := 0; i < 3; i++ {
		next, valid := timer.Fire(gen)
		require.True(t, valid)
		fired++
		gen = next
	}
	require.Equal(t, 3, fired)
}

func TestStaleTickIsRejected(t *testing.T) {
	t.Parallel()

	timer := NewTimer(time.Second)
	gen, _ := timer.Start()

	next, ok := timer.Fire(gen)
	require.True(t, ok)

	// The consumed token cannot fire twice.
	_, ok = timer.Fire(gen)
	require.False(t, ok)

	_, ok = timer.Fire(next)
	require.True(t, ok)
}

func TestPauseSuppressesScheduledTick(t *testing.T) {
	t.Parallel()

	timer := NewTimer(time.Second)
	gen, _ := timer.Start()

	// Drag starts mid-interval: the already-scheduled tick must not fire.
	timer.Pause()
	require.True(t, timer.Paused())

	_, ok := timer.Fire(gen)
	require.False(t, ok)
}

func TestResumeMintsFreshToken(t *testing.T) {
	t.Parallel()

	timer := NewTimer(time.Second)
	timer.Start()
	timer.Pause()

	gen, ok := timer.Resume()
	require.True(t, ok)
	require.False(t, timer.Paused())

	_, ok = timer.Fire(gen)
	require.True(t, ok)
}

func TestResumeWithoutPauseIsNoOp(t *testing.T) {
	t.Parallel()

	timer := NewTimer(time.Second)

	_, ok := timer.Resume()
	require.False(t, ok, "stopped timer cannot resume")

	timer.Start()
	_, ok = timer.Resume()
	require.False(t, ok, "running unpaused timer cannot resume")
}

func TestStopInvalidatesEverything(t *testing.T) {
	t.Parallel()

	timer := NewTimer(time.Second)
	gen, _ := timer.Start()
	timer.Stop()

	require.False(t, timer.Running())
	_, ok := timer.Fire(gen)
	require.False(t, ok)

	_, ok = timer.Resume()
	require.False(t, ok)
}

func TestReconfigureClearingIntervalStops(t *testing.T) {
	t.Parallel()

	timer := NewTimer(time.Second)
	gen, _ := timer.Start()

	_, reschedule := timer.Reconfigure(0)
	require.False(t, reschedule)
	require.False(t, timer.Running())

	_, ok := timer.Fire(gen)
	require.False(t, ok)
}

func TestReconfigureWhileRunningReschedules(t *testing.T) {
	t.Parallel()

	timer := NewTimer(time.Second)
	old, _ := timer.Start()

	gen, reschedule := timer.Reconfigure(2 * time.Second)
	require.True(t, reschedule)
	require.Equal(t, 2*time.Second, timer.Interval())

	_, ok := timer.Fire(old)
	require.False(t, ok, "tick scheduled under the old interval is stale")

	_, ok = timer.Fire(gen)
	require.True(t, ok)
}

func TestReconfigureWhilePausedStaysPaused(t *testing.T) {
	t.Parallel()

	timer := NewTimer(time.Second)
	timer.Start()
	timer.Pause()

	_, reschedule := timer.Reconfigure(500 * time.Millisecond)
	require.False(t, reschedule)
	require.True(t, timer.Paused())

	gen, ok := timer.Resume()
	require.True(t, ok)
	_, ok = timer.Fire(gen)
	require.True(t, ok)
}

func TestReconfigureEnablingIntervalStarts(t *testing.T) {
	t.Parallel()

	timer := NewTimer(0)
	_, ok := timer.Start()
	require.False(t, ok)

	gen, reschedule := timer.Reconfigure(time.Second)
	require.True(t, reschedule)
	require.True(t, timer.Running())

	next, ok := timer.Fire(gen)
	require.True(t, ok)
	_, ok = timer.Fire(next)
	require.True(t, ok)
}

func TestNegativeIntervalDisables(t *testing.T) {
	t.Parallel()

	timer := NewTimer(-5 * time.Second)
	require.False(t, timer.Enabled())
}
