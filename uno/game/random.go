package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is the source of shuffles and bot choices.
type Random interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

func NewRandom() Random {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}
