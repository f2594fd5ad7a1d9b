package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidate may go on top of the discard pile.
// A number top accepts numbers by rank or color and other cards by color or
// the active wild color; any other top also accepts a matching action.
func Playable(candidate *card.Card, top *card.Card, wildColor color.Color) bool {
	if candidate.IsWild() {
		return true
	}
	if top == nil {
		return false
	}
	topColor := top.MatchColor()
	if top.IsNumber() {
		if candidate.IsNumber() {
			return candidate.Rank() == top.Rank() || candidate.Color() == topColor
		}
		return candidate.Color() == topColor || matchesWild(candidate, wildColor)
	}
	return candidate.Color() == topColor ||
		matchesWild(candidate, wildColor) ||
		candidate.Action() == top.Action()
}

func matchesWild(candidate *card.Card, wildColor color.Color) bool {
	return wildColor != color.None && candidate.Color() == wildColor
}
