package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Rig replaces the piles and the hands (creation order, human first) of s.
// The last card of each slice is the top. The top of discard counts as a fresh play.
func Rig(s *Session, draw []*card.Card, discard []*card.Card, hands ...[]*card.Card) {
	s.drawPile = NewPile()
	for _, c := range draw {
		s.drawPile.Push(c)
	}
	s.discardPile = NewPile()
	for _, c := range discard {
		s.discardPile.Push(c)
	}
	for i, cards := range hands {
		s.players[i].hand = NewHand()
		for _, c := range cards {
			s.players[i].hand.Add(c)
		}
	}
	s.wildColor = color.None
	if top := s.discardPile.Top(); top != nil && top.IsWild() {
		s.wildColor = top.ChosenColor()
	}
	s.plays++
}
