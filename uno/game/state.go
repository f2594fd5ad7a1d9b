package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type State struct {
	LastPlayedCard    *card.Card
	WildColor         color.Color
	CurrentPlayerHand []*card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	DrawPileSize      int
}

func (s State) String() string {
	var lines []string
	lastPlayed := "none"
	if s.LastPlayedCard != nil {
		lastPlayed = s.LastPlayedCard.Paint()
	}
	if s.WildColor != color.None {
		lastPlayed += fmt.Sprintf(" (%s)", s.WildColor.Paint(s.WildColor.Title()))
	}
	lines = append(lines, fmt.Sprintf("Last played card: %s", lastPlayed))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Draw pile: %d card(s)", s.DrawPileSize))

	hand := make([]string, 0, len(s.CurrentPlayerHand))
	for _, c := range s.CurrentPlayerHand {
		hand = append(hand, c.Paint())
	}
	lines = append(lines, fmt.Sprintf("Your hand: %s", strings.Join(hand, " ")))

	return strings.Join(lines, "\n")
}
