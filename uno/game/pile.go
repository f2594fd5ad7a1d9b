package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is a stack of cards; the end of the slice is the top.
type Pile struct {
	cards []*card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]*card.Card, 0, 108)}
}

func (p *Pile) Push(c *card.Card) {
	p.cards = append(p.cards, c)
}

// PushBottom puts c under every other card.
func (p *Pile) PushBottom(c *card.Card) {
	p.cards = append([]*card.Card{c}, p.cards...)
}

func (p *Pile) Pop() *card.Card {
	size := len(p.cards)
	if size == 0 {
		return nil
	}
	top := p.cards[size-1]
	p.cards[size-1] = nil
	p.cards = p.cards[:size-1]
	return top
}

func (p *Pile) Top() *card.Card {
	size := len(p.cards)
	if size == 0 {
		return nil
	}
	return p.cards[size-1]
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) Cards() []*card.Card {
	cards := make([]*card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Contains(c *card.Card) bool {
	return indexOf(p.cards, c) >= 0
}

// Remove takes out the given instance, keeping the order of the rest.
func (p *Pile) Remove(c *card.Card) bool {
	index := indexOf(p.cards, c)
	if index < 0 {
		return false
	}
	p.cards = append(p.cards[:index], p.cards[index+1:]...)
	return true
}

// TakeUnderTop removes and returns every card except the top one.
func (p *Pile) TakeUnderTop() []*card.Card {
	size := len(p.cards)
	if size <= 1 {
		return nil
	}
	under := make([]*card.Card, size-1)
	copy(under, p.cards[:size-1])
	p.cards = []*card.Card{p.cards[size-1]}
	return under
}

func (p *Pile) Shuffle(rng Random) {
	rng.Shuffle(len(p.cards), func(i, j int) { p.cards[i], p.cards[j] = p.cards[j], p.cards[i] })
}

func indexOf(cards []*card.Card, c *card.Card) int {
	for index, candidate := range cards {
		if candidate == c {
			return index
		}
	}
	return -1
}
