package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// RandomPolicy picks uniformly among the playable cards and the four colors.
type RandomPolicy struct {
	rng game.Random
}

func NewRandomPolicy(rng game.Random) RandomPolicy {
	if rng == nil {
		rng = game.NewRandom()
	}
	return RandomPolicy{rng: rng}
}

func (p RandomPolicy) Choose(playable []*card.Card, _ game.State) *card.Card {
	return playable[p.rng.Intn(len(playable))]
}

func (p RandomPolicy) PickColor(_ game.State) color.Color {
	return color.All[p.rng.Intn(len(color.All))]
}
