package game

import (
	"github.com/ratel-online/uno/uno/card"
)

type Kind int

const (
	Human Kind = iota
	Bot
)

// Player holds a hand and a non-owning reference to the session it sits in.
type Player struct {
	id      int
	kind    Kind
	name    string
	hand    *Hand
	session *Session
}

func (p *Player) ID() int {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Kind() Kind {
	return p.kind
}

func (p *Player) IsHuman() bool {
	return p.kind == Human
}

func (p *Player) Hand() []*card.Card {
	return p.hand.Cards()
}

// SortedHand is the hand in display order.
func (p *Player) SortedHand() []*card.Card {
	return SortedView(p.hand.Cards())
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) Holds(c *card.Card) bool {
	return p.hand.Contains(c)
}

// Draw moves c from the session draw pile into the hand. It fails when the
// player sits in no session or c is not in the draw pile.
func (p *Player) Draw(c *card.Card) bool {
	if p.session == nil || c == nil {
		return false
	}
	if !p.session.drawPile.Remove(c) {
		return false
	}
	p.hand.Add(c)
	return true
}

// Play moves c from the hand onto the discard pile. Playability is the caller's concern.
func (p *Player) Play(c *card.Card) bool {
	if p.session == nil {
		return false
	}
	if !p.hand.Remove(c) {
		return false
	}
	p.session.discard(c)
	return true
}

func (p *Player) String() string {
	return p.name
}
