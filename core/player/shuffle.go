package player

import (
	"math/rand"

	"distrohub/model"
)

// Shuffle returns a uniformly random permutation of tracks. The input is
// copied first and never mutated. Fisher–Yates: for each index from the last
// down to 1, swap with a uniformly chosen index in [0, i].
func Shuffle(tracks []model.Track) []model.Track {
	shuffled := make([]model.Track, len(tracks))
	copy(shuffled, tracks)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
