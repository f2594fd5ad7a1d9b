package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

var testBotNames = []string{"Connor", "Markus", "Kara", "Hank", "Mat", "John", "Evelyn", "Emily", "Mike"}

func newTestSession(t *testing.T, playerCount int) (*game.Session, *event.DummyListener) {
	t.Helper()
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.Subscribe(listener)
	session, err := game.New(game.Config{
		Name:        "test",
		PlayerCount: playerCount,
		BotNames:    testBotNames,
		Random:      game.NewSeededRandom(7),
		Bus:         bus,
	})
	require.NoError(t, err)
	return session, listener
}

// firstPolicy plays the first playable card and picks a fixed color.
type firstPolicy struct {
	color color.Color
}

func (p firstPolicy) Choose(playable []*card.Card, _ game.State) *card.Card {
	return playable[0]
}

func (p firstPolicy) PickColor(_ game.State) color.Color {
	return p.color
}

func numbers(c color.Color, ranks ...int) []*card.Card {
	cards := make([]*card.Card, 0, len(ranks))
	for _, rank := range ranks {
		cards = append(cards, card.NewNumberCard(c, rank))
	}
	return cards
}

func cards(cs ...*card.Card) []*card.Card {
	return cs
}

// requireConserved checks every card instance sits in exactly one place.
func requireConserved(t *testing.T, session *game.Session) {
	t.Helper()
	seen := make(map[*card.Card]int, game.DeckSize)
	total := 0
	collect := func(cs []*card.Card) {
		for _, c := range cs {
			seen[c]++
			total++
		}
	}
	collect(session.DrawPile())
	collect(session.DiscardPile())
	for _, player := range session.Players() {
		collect(player.Hand())
	}
	require.Equal(t, game.DeckSize, total)
	require.Len(t, seen, game.DeckSize)
	for c, count := range seen {
		require.Equal(t, 1, count, "card %s seen %d times", c, count)
	}
}

func cardsPlayedBy(listener *event.DummyListener) []string {
	var names []string
	for _, payload := range listener.ReceivedPayloads() {
		if played, ok := payload.(event.CardPlayedPayload); ok {
			names = append(names, played.PlayerName)
		}
	}
	return names
}
