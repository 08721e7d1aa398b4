package player

import (
	"sync"

	"distrohub/logger"
	"distrohub/model"
)

// Session is the single process-wide playback session. It owns the one
// shared audio output handle: current track, transport state, progress,
// volume and the upcoming queue all live here, and every playback-triggering
// action mutates it.
//
// All mutations are serialized by a mutex so that user commands and
// asynchronous output callbacks interleave with last-write-wins semantics.
// Output commands run outside the lock: outputs may deliver their state
// callbacks synchronously and must be able to re-enter the session.
//
// Invariants: IsPlaying is false whenever no track is loaded; the queue
// never contains the current track; progress stays within [0,duration] once
// the duration is known (modulo the transient overshoot at end of track).
type Session struct {
	mu sync.Mutex

	out Output

	current     *model.Track
	playing     bool
	expanded    bool
	progress    float64
	duration    float64
	volume      float64
	queue       []model.Track
	shuffleMode bool

	subsMu sync.Mutex
	subs   []func(State)
}

// NewSession creates the session around its audio output and registers the
// output event handlers once for the session's whole lifetime.
func NewSession(out Output, defaultVolume float64) *Session {
	s := &Session{
		out:    out,
		volume: clamp01(defaultVolume),
	}

	out.OnTimeUpdate(s.handleTimeUpdate)
	out.OnMetadata(s.handleMetadata)
	out.OnEnded(s.handleEnded)
	out.OnStateChange(s.handleStateChange)
	out.SetVolume(s.volume)

	return s
}

// OnChange registers a hook invoked with a fresh snapshot after every state
// change. Hooks run outside the session lock.
func (s *Session) OnChange(fn func(State)) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() State {
	state := State{
		IsPlaying:     s.playing,
		IsExpanded:    s.expanded,
		Progress:      s.progress,
		Duration:      s.duration,
		Volume:        s.volume,
		IsShuffleMode: s.shuffleMode,
		Queue:         make([]model.Track, len(s.queue)),
	}
	copy(state.Queue, s.queue)
	if s.current != nil {
		track := *s.current
		state.CurrentTrack = &track
	}
	return state
}

func (s *Session) notify() {
	state := s.Snapshot()
	s.subsMu.Lock()
	subs := s.subs
	s.subsMu.Unlock()
	for _, fn := range subs {
		fn(state)
	}
}

// PlayTrack loads track as the new source and starts playback. Progress
// resets to zero; the duration is only learned once the output reports
// metadata. The playing flag is never set speculatively: it flips when the
// output confirms it started.
func (s *Session) PlayTrack(track model.Track) {
	s.mu.Lock()
	t := track
	s.current = &t
	s.progress = 0
	s.duration = 0
	// A queued copy of the now-current track would violate the queue
	// invariant; drop it.
	s.queue = removeTrack(s.queue, track.ID)
	s.mu.Unlock()

	s.out.SetSource(track.AudioURL)
	if err := s.out.Play(); err != nil {
		logger.Error("playback failed to start",
			logger.String("trackId", track.ID),
			logger.String("title", track.Title),
			logger.ErrorField(err))
	}
	s.notify()
}

// TogglePlay pauses a playing session or resumes a paused one. With no
// loaded track there is nothing to toggle and the call is a no-op.
func (s *Session) TogglePlay() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	playing := s.playing
	s.mu.Unlock()

	if playing {
		s.out.Pause()
	} else if err := s.out.Play(); err != nil {
		logger.Error("playback failed to resume", logger.ErrorField(err))
	}
	s.notify()
}

// ToggleExpand flips the full-screen player view flag. UI-only state,
// carried here because it travels with the player across pages.
func (s *Session) ToggleExpand() {
	s.mu.Lock()
	s.expanded = !s.expanded
	s.mu.Unlock()
	s.notify()
}

// SetVolume applies a volume for current and future playback. Out-of-range
// input is clamped into [0,1].
func (s *Session) SetVolume(volume float64) {
	volume = clamp01(volume)
	s.mu.Lock()
	s.volume = volume
	s.mu.Unlock()

	s.out.SetVolume(volume)
	s.notify()
}

// SeekTo jumps to the given position in seconds, clamped to [0,duration].
// While the duration is still unknown only the lower bound applies. No-op
// when no track is loaded.
func (s *Session) SeekTo(seconds float64) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	if s.duration > 0 && seconds > s.duration {
		seconds = s.duration
	}
	s.progress = seconds
	s.mu.Unlock()

	s.out.Seek(seconds)
	s.notify()
}

// NextTrack pops the queue head and plays it. With an empty queue playback
// stops but the current track stays loaded and displayed (end-of-queue UX).
func (s *Session) NextTrack() {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		s.out.Pause()
		s.notify()
		return
	}
	next := s.queue[0]
	s.queue = append([]model.Track(nil), s.queue[1:]...)
	s.mu.Unlock()

	s.PlayTrack(next)
}

// PrevTrack restarts the current track from zero. There is no play-history
// stack: it never navigates to an earlier track.
func (s *Session) PrevTrack() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.progress = 0
	s.mu.Unlock()

	s.out.Seek(0)
	s.notify()
}

// AddToQueue appends track to the upcoming queue. Current playback is not
// affected. Appending the track that is already current is refused to keep
// the queue invariant.
func (s *Session) AddToQueue(track model.Track) {
	s.mu.Lock()
	if s.current != nil && s.current.ID == track.ID {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, track)
	s.mu.Unlock()
	s.notify()
}

// ClearQueue drops every upcoming track. Current playback is not affected.
func (s *Session) ClearQueue() {
	s.mu.Lock()
	s.queue = nil
	s.mu.Unlock()
	s.notify()
}

// ShufflePlay permutes tracks uniformly at random, plays the first permuted
// element immediately and queues the remainder. Shuffle mode turns on.
// Empty input is a no-op.
func (s *Session) ShufflePlay(tracks []model.Track) {
	if len(tracks) == 0 {
		return
	}
	shuffled := Shuffle(tracks)

	s.mu.Lock()
	s.shuffleMode = true
	s.queue = append([]model.Track(nil), shuffled[1:]...)
	s.mu.Unlock()

	s.PlayTrack(shuffled[0])
}

// ToggleShuffle flips shuffle mode. Turning it on re-permutes the existing
// queue in place (the current track is unaffected); turning it off keeps
// the order as-is, since no original order is retained.
func (s *Session) ToggleShuffle() {
	s.mu.Lock()
	s.shuffleMode = !s.shuffleMode
	if s.shuffleMode && len(s.queue) > 0 {
		s.queue = Shuffle(s.queue)
	}
	s.mu.Unlock()
	s.notify()
}

// Restore seeds the session from a persisted snapshot: track, queue, volume
// and shuffle mode come back; playback always resumes stopped.
func (s *Session) Restore(state State) {
	s.mu.Lock()
	s.current = nil
	if state.CurrentTrack != nil {
		track := *state.CurrentTrack
		s.current = &track
	}
	s.playing = false
	s.expanded = false
	s.progress = state.Progress
	s.duration = state.Duration
	s.volume = clamp01(state.Volume)
	s.queue = append([]model.Track(nil), state.Queue...)
	s.shuffleMode = state.IsShuffleMode
	current := s.current
	volume := s.volume
	s.mu.Unlock()

	s.out.SetVolume(volume)
	if current != nil {
		s.out.SetSource(current.AudioURL)
	}
	s.notify()
}

// Close releases the underlying output. The session itself lives for the
// whole process; this runs only at shutdown.
func (s *Session) Close() error {
	return s.out.Close()
}

// Output event handlers. These may interleave arbitrarily with user
// commands; the session lock makes each one atomic.

func (s *Session) handleTimeUpdate(seconds float64) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.progress = seconds
	s.mu.Unlock()
	s.notify()
}

func (s *Session) handleMetadata(durationSeconds float64) {
	s.mu.Lock()
	s.duration = durationSeconds
	s.mu.Unlock()
	s.notify()
}

func (s *Session) handleEnded() {
	// Natural completion triggers the same transition as NextTrack.
	s.NextTrack()
}

func (s *Session) handleStateChange(playing bool) {
	s.mu.Lock()
	s.playing = playing && s.current != nil
	s.mu.Unlock()
	s.notify()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func removeTrack(tracks []model.Track, id string) []model.Track {
	result := tracks[:0]
	for _, t := range tracks {
		if t.ID != id {
			result = append(result, t)
		}
	}
	return result
}
