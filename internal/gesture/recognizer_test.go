package gesture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwipeWithinThresholdCommits(t *testing.T) {
	t.Parallel()

	r := NewRecognizer(true, 200)
	require.True(t, r.Start(Point{X: 300, Y: 10}))

	decision := r.End(Point{X: 150, Y: 12})
	require.True(t, decision.Commit)
	require.Equal(t, DirectionNext, decision.Direction)
	require.Equal(t, -150, decision.Delta)
}

func TestSwipeBeyondThresholdCancels(t *testing.T) {
	t.Parallel()

	r := NewRecognizer(true, 200)
	r.Start(Point{X: 300, Y: 0})

	decision := r.End(Point{X: 50, Y: 0})
	require.False(t, decision.Commit, "a 250-cell drag exceeds the maximum allowed distance")
	require.Equal(t, DirectionNone, decision.Direction)
	require.Equal(t, -250, decision.Delta)
}

func TestSwipeExactlyAtThresholdCommits(t *testing.T) {
	t.Parallel()

	r := NewRecognizer(true, 200)
	r.Start(Point{X: 0, Y: 0})

	decision := r.End(Point{X: 200, Y: 0})
	require.True(t, decision.Commit)
	require.Equal(t, DirectionPrevious, decision.Direction)
}

func TestDirectionMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		endX int
		want Direction
	}{
		{name: "leftward drag advances", endX: 80, want: DirectionNext},
		{name: "rightward drag goes back", endX: 120, want: DirectionPrevious},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := NewRecognizer(true, 50)
			r.Start(Point{X: 100})
			decision := r.End(Point{X: tc.endX})
			require.True(t, decision.Commit)
			require.Equal(t, tc.want, decision.Direction)
		})
	}
}

func TestZeroDisplacementCancels(t *testing.T) {
	t.Parallel()

	r := NewRecognizer(true, 200)
	r.Start(Point{X: 40, Y: 3})

	decision := r.End(Point{X: 40, Y: 9})
	require.False(t, decision.Commit)
	require.Equal(t, DirectionNone, decision.Direction)
}

func TestVerticalMovementIgnored(t *testing.T) {
	t.Parallel()

	r := NewRecognizer(true, 10)
	r.Start(Point{X: 0, Y: 0})

	// Large vertical travel, small horizontal travel: still a commit.
	decision := r.End(Point{X: -5, Y: 500})
	require.True(t, decision.Commit)
	require.Equal(t, DirectionNext, decision.Direction)
}

func TestDisabledRecognizerIgnoresDrags(t *testing.T) {
	t.Parallel()

	r := NewRecognizer(false, 200)
	require.False(t, r.Start(Point{X: 0}))
	require.False(t, r.Active())

	decision := r.End(Point{X: 50})
	require.False(t, decision.Commit)
}

func TestMoveTracksOffset(t *testing.T) {
	t.Parallel()

	r := NewRecognizer(true, 200)
	r.Start(Point{X: 100})
	require.Zero(t, r.Offset())

	r.Move(Point{X: 70})
	require.Equal(t, -30, r.Offset())

	r.Move(Point{X: 130})
	require.Equal(t, 30, r.Offset())
}

func TestCancelAbandonsDrag(t *testing.T) {
	t.Parallel()

	r := NewRecognizer(true, 200)
	r.Start(Point{X: 0})
	r.Cancel()

	require.False(t, r.Active())
	require.False(t, r.End(Point{X: 10}).Commit)
}

func TestConfigureAbandonsActiveDrag(t *testing.T) {
	t.Parallel()

	r := NewRecognizer(true, 200)
	r.Start(Point{X: 0})
	r.Configure(true, 100)

	require.False(t, r.Active())
	require.Zero(t, r.Offset())
}
