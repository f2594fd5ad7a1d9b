package game

import (
	"github.com/ratel-online/uno/uno/card"
)

type Hand struct {
	cards []*card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]*card.Card, 0, 7)}
}

func (h *Hand) Add(c *card.Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) Cards() []*card.Card {
	cards := make([]*card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(c *card.Card) bool {
	return indexOf(h.cards, c) >= 0
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// Remove takes the given instance out of the hand. Other copies of the same face stay.
func (h *Hand) Remove(c *card.Card) bool {
	index := indexOf(h.cards, c)
	if index < 0 {
		return false
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return true
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Score() int {
	score := 0
	for _, c := range h.cards {
		score += c.Score()
	}
	return score
}
