package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerNoCollision(t *testing.T) {
	tr := NewTracker()

	collided, err := tr.Track("price", "price")
	require.NoError(t, err)
	require.False(t, collided)
	require.False(t, tr.HasCollision())
	require.Equal(t, 1, tr.Count())
}

func TestTrackerDetectsCollision(t *testing.T) {
	tr := NewTracker()

	_, err := tr.Track("price_", "price!")
	require.NoError(t, err)

	collided, err := tr.Track("price_", "price?")
	require.NoError(t, err)
	require.True(t, collided)
	require.True(t, tr.HasCollision())
	require.Equal(t, 1, tr.Count())
}

func TestTrackerSameKeyAndLabelIsAlreadyTracked(t *testing.T) {
	tr := NewTracker()

	_, err := tr.Track("price", "price")
	require.NoError(t, err)

	_, err = tr.Track("price", "price")
	require.ErrorIs(t, err, ErrAlreadyTracked)
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()

	_, _ = tr.Track("a", "a")
	_, _ = tr.Track("a", "b")
	require.True(t, tr.HasCollision())
	require.Equal(t, 1, tr.Count())

	tr.Reset()
	require.False(t, tr.HasCollision())
	require.Equal(t, 0, tr.Count())

	collided, err := tr.Track("a", "a")
	require.NoError(t, err)
	require.False(t, collided)
}

func TestTrackerMultipleCollisions(t *testing.T) {
	tr := NewTracker()

	_, err := tr.Track("k1", "m1")
	require.NoError(t, err)
	collided, err := tr.Track("k1", "m2")
	require.NoError(t, err)
	require.True(t, collided)

	_, err = tr.Track("k2", "m3")
	require.NoError(t, err)
	collided, err = tr.Track("k2", "m4")
	require.NoError(t, err)
	require.True(t, collided)

	require.True(t, tr.HasCollision())
	require.Equal(t, 2, tr.Count())
}
