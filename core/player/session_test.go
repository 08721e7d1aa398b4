package player

import (
	"errors"
	"testing"

	"distrohub/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func track(id string) model.Track {
	return model.Track{
		ID:       id,
		Title:    "Title " + id,
		Artist:   "Artist",
		AudioURL: "https://cdn/" + id + ".mp3",
	}
}

func newTestSession() (*Session, *MockOutput) {
	out := NewMockOutput()
	return NewSession(out, 0.7), out
}

func TestSession_InitialState(t *testing.T) {
	s, _ := newTestSession()

	state := s.Snapshot()
	assert.True(t, state.IsIdle())
	assert.False(t, state.IsPlaying)
	assert.Equal(t, 0.7, state.Volume)
	assert.Empty(t, state.Queue)
	assert.False(t, state.IsShuffleMode)
}

func TestSession_PlayTrack(t *testing.T) {
	s, out := newTestSession()

	s.PlayTrack(track("a"))

	state := s.Snapshot()
	require.NotNil(t, state.CurrentTrack)
	assert.Equal(t, "a", state.CurrentTrack.ID)
	assert.True(t, state.IsPlaying)
	assert.Equal(t, 0.0, state.Progress)
	// Duration is unknown until the output reports metadata.
	assert.Equal(t, 0.0, state.Duration)
	assert.Equal(t, "https://cdn/a.mp3", out.Source())

	out.ReportMetadata(215)
	assert.Equal(t, 215.0, s.Snapshot().Duration)
}

func TestSession_PlayTrack_ResetsProgress(t *testing.T) {
	s, out := newTestSession()

	s.PlayTrack(track("a"))
	out.ReportMetadata(200)
	out.ReportTime(42)
	require.Equal(t, 42.0, s.Snapshot().Progress)

	s.PlayTrack(track("b"))
	state := s.Snapshot()
	assert.Equal(t, 0.0, state.Progress)
	assert.Equal(t, 0.0, state.Duration)
}

func TestSession_PlayTrack_StartFailureNotPlaying(t *testing.T) {
	s, out := newTestSession()
	out.SetPlayError(errors.New("autoplay blocked"))

	s.PlayTrack(track("a"))

	state := s.Snapshot()
	require.NotNil(t, state.CurrentTrack)
	// The playing flag reflects the actual output state, never optimism.
	assert.False(t, state.IsPlaying)
}

func TestSession_TogglePlay(t *testing.T) {
	s, _ := newTestSession()

	s.PlayTrack(track("a"))
	require.True(t, s.Snapshot().IsPlaying)

	s.TogglePlay()
	assert.False(t, s.Snapshot().IsPlaying)

	s.TogglePlay()
	assert.True(t, s.Snapshot().IsPlaying)
}

func TestSession_TogglePlay_IdleNoop(t *testing.T) {
	s, out := newTestSession()

	s.TogglePlay()

	assert.True(t, s.Snapshot().IsIdle())
	assert.False(t, s.Snapshot().IsPlaying)
	assert.False(t, out.Playing())
}

func TestSession_SeekClamped(t *testing.T) {
	s, out := newTestSession()
	s.PlayTrack(track("a"))
	out.ReportMetadata(100)

	s.SeekTo(-5)
	assert.Equal(t, 0.0, s.Snapshot().Progress)

	s.SeekTo(250)
	assert.Equal(t, 100.0, s.Snapshot().Progress)

	s.SeekTo(60)
	assert.Equal(t, 60.0, s.Snapshot().Progress)
	assert.Equal(t, []float64{0, 100, 60}, out.SeekCalls())
}

func TestSession_SeekBeforeMetadataOnlyClampsLow(t *testing.T) {
	s, _ := newTestSession()
	s.PlayTrack(track("a"))

	// Duration not yet reported: only the lower bound applies.
	s.SeekTo(500)
	assert.Equal(t, 500.0, s.Snapshot().Progress)

	s.SeekTo(-1)
	assert.Equal(t, 0.0, s.Snapshot().Progress)
}

func TestSession_SeekIdleNoop(t *testing.T) {
	s, out := newTestSession()

	s.SeekTo(30)

	assert.Empty(t, out.SeekCalls())
}

func TestSession_VolumeClamped(t *testing.T) {
	s, out := newTestSession()

	s.SetVolume(1.5)
	assert.Equal(t, 1.0, s.Snapshot().Volume)
	assert.Equal(t, 1.0, out.Volume())

	s.SetVolume(-0.2)
	assert.Equal(t, 0.0, s.Snapshot().Volume)

	s.SetVolume(0.4)
	assert.Equal(t, 0.4, s.Snapshot().Volume)
}

func TestSession_NextTrackConsumesQueue(t *testing.T) {
	s, _ := newTestSession()
	s.AddToQueue(track("a"))
	s.AddToQueue(track("b"))

	s.NextTrack()
	state := s.Snapshot()
	require.NotNil(t, state.CurrentTrack)
	assert.Equal(t, "a", state.CurrentTrack.ID)
	require.Len(t, state.Queue, 1)
	assert.Equal(t, "b", state.Queue[0].ID)

	s.NextTrack()
	state = s.Snapshot()
	assert.Equal(t, "b", state.CurrentTrack.ID)
	assert.Empty(t, state.Queue)

	// Empty queue: stop playback but keep showing the current track.
	s.NextTrack()
	state = s.Snapshot()
	assert.Equal(t, "b", state.CurrentTrack.ID)
	assert.False(t, state.IsPlaying)
}

func TestSession_PrevTrackRestartsOnly(t *testing.T) {
	s, out := newTestSession()
	s.AddToQueue(track("b"))
	s.PlayTrack(track("a"))
	out.ReportTime(90)

	s.PrevTrack()

	state := s.Snapshot()
	require.NotNil(t, state.CurrentTrack)
	assert.Equal(t, "a", state.CurrentTrack.ID)
	assert.Equal(t, 0.0, state.Progress)
	// The queue is untouched: prev never navigates backwards.
	require.Len(t, state.Queue, 1)
	assert.Equal(t, []float64{0}, out.SeekCalls())
}

func TestSession_EndedAdvancesLikeNext(t *testing.T) {
	s, out := newTestSession()
	s.PlayTrack(track("a"))
	s.AddToQueue(track("b"))

	out.ReportEnded()

	state := s.Snapshot()
	assert.Equal(t, "b", state.CurrentTrack.ID)
	assert.True(t, state.IsPlaying)
	assert.Empty(t, state.Queue)
}

func TestSession_EndedWithEmptyQueueStops(t *testing.T) {
	s, out := newTestSession()
	s.PlayTrack(track("a"))

	out.ReportEnded()

	state := s.Snapshot()
	assert.Equal(t, "a", state.CurrentTrack.ID)
	assert.False(t, state.IsPlaying)
}

func TestSession_QueueNeverContainsCurrent(t *testing.T) {
	s, _ := newTestSession()
	s.PlayTrack(track("a"))

	s.AddToQueue(track("a"))
	assert.Empty(t, s.Snapshot().Queue)

	s.AddToQueue(track("b"))
	s.PlayTrack(track("b"))
	assert.Empty(t, s.Snapshot().Queue)
}

func TestSession_ClearQueue(t *testing.T) {
	s, _ := newTestSession()
	s.PlayTrack(track("a"))
	s.AddToQueue(track("b"))
	s.AddToQueue(track("c"))

	s.ClearQueue()

	state := s.Snapshot()
	assert.Empty(t, state.Queue)
	// Current playback is untouched.
	assert.Equal(t, "a", state.CurrentTrack.ID)
	assert.True(t, state.IsPlaying)
}

func TestSession_ShufflePlay(t *testing.T) {
	s, _ := newTestSession()
	tracks := []model.Track{track("a"), track("b"), track("c"), track("d")}

	s.ShufflePlay(tracks)

	state := s.Snapshot()
	require.NotNil(t, state.CurrentTrack)
	assert.True(t, state.IsPlaying)
	assert.True(t, state.IsShuffleMode)
	require.Len(t, state.Queue, 3)

	// Current plus queue is a permutation of the input.
	seen := map[string]bool{state.CurrentTrack.ID: true}
	for _, q := range state.Queue {
		seen[q.ID] = true
	}
	assert.Len(t, seen, 4)
}

func TestSession_ShufflePlayEmptyNoop(t *testing.T) {
	s, _ := newTestSession()

	s.ShufflePlay(nil)

	assert.True(t, s.Snapshot().IsIdle())
}

func TestSession_ToggleShuffle(t *testing.T) {
	s, _ := newTestSession()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		s.AddToQueue(track(id))
	}

	s.ToggleShuffle()
	state := s.Snapshot()
	assert.True(t, state.IsShuffleMode)
	assert.Len(t, state.Queue, 5)

	// Turning shuffle off keeps the queue order as-is.
	before := s.Snapshot().Queue
	s.ToggleShuffle()
	state = s.Snapshot()
	assert.False(t, state.IsShuffleMode)
	assert.Equal(t, before, state.Queue)
}

func TestSession_ToggleExpand(t *testing.T) {
	s, _ := newTestSession()

	s.ToggleExpand()
	assert.True(t, s.Snapshot().IsExpanded)

	s.ToggleExpand()
	assert.False(t, s.Snapshot().IsExpanded)
}

func TestSession_OnChangeNotified(t *testing.T) {
	s, _ := newTestSession()

	var states []State
	s.OnChange(func(state State) {
		states = append(states, state)
	})

	s.PlayTrack(track("a"))
	require.NotEmpty(t, states)
	last := states[len(states)-1]
	assert.Equal(t, "a", last.CurrentTrack.ID)
	assert.True(t, last.IsPlaying)
}

func TestSession_Restore(t *testing.T) {
	s, out := newTestSession()
	current := track("a")

	s.Restore(State{
		CurrentTrack:  &current,
		IsPlaying:     true, // ignored, restore never auto-plays
		Progress:      30,
		Duration:      200,
		Volume:        0.5,
		Queue:         []model.Track{track("b")},
		IsShuffleMode: true,
	})

	state := s.Snapshot()
	require.NotNil(t, state.CurrentTrack)
	assert.Equal(t, "a", state.CurrentTrack.ID)
	assert.False(t, state.IsPlaying)
	assert.Equal(t, 0.5, state.Volume)
	assert.True(t, state.IsShuffleMode)
	require.Len(t, state.Queue, 1)
	assert.Equal(t, "https://cdn/a.mp3", out.Source())
}
