package game

import (
	"sort"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

const DeckSize = 108

// BuildDrawPile returns the 108 standard cards shuffled with rng.
func BuildDrawPile(rng Random) *Pile {
	pile := NewPile()
	for _, c := range StandardCards() {
		pile.Push(c)
	}
	pile.Shuffle(rng)
	return pile
}

func StandardCards() []*card.Card {
	cards := make([]*card.Card, 0, DeckSize)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []*card.Card {
	cards := make([]*card.Card, 0, 25)
	for _, action := range []card.Action{card.Skip, card.Reverse, card.DrawTwo} {
		cards = append(cards, card.NewActionCard(cardColor, action), card.NewActionCard(cardColor, action))
	}
	cards = append(cards, card.NewNumberCard(cardColor, 0))
	for number := 1; number <= 9; number++ {
		cards = append(cards, card.NewNumberCard(cardColor, number), card.NewNumberCard(cardColor, number))
	}
	return cards
}

func createBlackCards() []*card.Card {
	cards := make([]*card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(card.Wild))
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(card.WildFour))
	}
	return cards
}

var colorRanks = map[color.Color]int{
	color.Red:    0,
	color.Green:  1,
	color.Blue:   2,
	color.Yellow: 3,
}

var actionRanks = map[card.Action]int{
	card.DrawTwo: 0,
	card.Reverse: 1,
	card.Skip:    2,
	card.Number:  3,
}

// sortKey orders wild fours, then wilds, then each color bucket in
// RED, GREEN, BLUE, YELLOW order holding DRAWTWO, REVERSE, SKIP and numbers ascending.
func sortKey(c *card.Card) int {
	switch {
	case c.IsWild() && c.Action() == card.WildFour:
		return 0
	case c.IsWild():
		return 1
	default:
		return 2 + colorRanks[c.Color()]*100 + actionRanks[c.Action()]*10 + c.Rank()
	}
}

// SortedView returns a new slice holding cards in display order.
func SortedView(cards []*card.Card) []*card.Card {
	view := make([]*card.Card, len(cards))
	copy(view, cards)
	sort.SliceStable(view, func(i, j int) bool {
		return sortKey(view[i]) < sortKey(view[j])
	})
	return view
}
