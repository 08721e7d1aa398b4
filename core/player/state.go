package player

import "distrohub/model"

// State is an immutable snapshot of the playback session, shaped for the
// API, the websocket push and the Redis snapshot store.
//
// The compound playback state reads as: Idle (CurrentTrack nil),
// Loaded-Paused (CurrentTrack set, IsPlaying false) or Loaded-Playing
// (CurrentTrack set, IsPlaying true).
type State struct {
	CurrentTrack  *model.Track  `json:"currentTrack"`
	IsPlaying     bool          `json:"isPlaying"`
	IsExpanded    bool          `json:"isExpanded"`
	Progress      float64       `json:"progress"` // seconds
	Duration      float64       `json:"duration"` // seconds, 0 until metadata arrives
	Volume        float64       `json:"volume"`   // [0,1]
	Queue         []model.Track `json:"queue"`
	IsShuffleMode bool          `json:"isShuffleMode"`
}

// IsIdle reports whether no track has ever been loaded.
func (s State) IsIdle() bool {
	return s.CurrentTrack == nil
}
