package player

import "errors"

// ErrNoOutput indicates no audio output is attached, so a playback command
// has nowhere to go.
var ErrNoOutput = errors.New("no audio output attached")

// Output abstracts the single shared audio output handle. Exactly one Output
// exists per session and only the session mutates it.
//
// The output reports back through the On* callbacks: position while playing,
// duration once metadata is known, natural end of a track, and the actual
// playing/paused state. The session derives its isPlaying flag from
// OnStateChange rather than setting it optimistically, so a source that
// fails to start never leaves the UI claiming to play.
type Output interface {
	// SetSource binds a new audio source. Position restarts at zero and the
	// previous duration becomes stale until the next metadata callback.
	SetSource(url string)
	// Play starts or resumes playback of the current source. An immediate
	// failure (no source, no sink) is returned synchronously; asynchronous
	// start/stop is reported through OnStateChange.
	Play() error
	Pause()
	// Seek jumps to the given position in seconds.
	Seek(seconds float64)
	// SetVolume applies a volume in [0,1] to current and future playback.
	SetVolume(volume float64)

	OnTimeUpdate(fn func(seconds float64))
	OnMetadata(fn func(durationSeconds float64))
	OnEnded(fn func())
	OnStateChange(fn func(playing bool))

	Close() error
}
