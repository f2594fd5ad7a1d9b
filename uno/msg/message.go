package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter owns the wording of every line the game prints or journals.
// Journal lines carry no trailing newline.
type MessageWriter struct{}

func (m MessageWriter) GameStarted(gameName string) string {
	return fmt.Sprintf("Started game with name: %s", gameName)
}

func (m MessageWriter) CardDrawn(playerName string, human bool, c *card.Card) string {
	if human {
		return fmt.Sprintf("%s draws card: %s", playerName, c)
	}
	return fmt.Sprintf("%s drew a card: %s", playerName, c)
}

func (m MessageWriter) CardPlayed(playerName string, human bool, c *card.Card, picked color.Color) string {
	var line string
	if human {
		line = fmt.Sprintf("%s plays: %s", playerName, c)
	} else {
		line = fmt.Sprintf("%s played card: %s", playerName, c)
	}
	if picked != color.None {
		line += fmt.Sprintf(" with color: %s", picked)
	}
	return line
}

func (m MessageWriter) UnoAnnounced(playerName string) string {
	return fmt.Sprintf("%s says: UNO!", playerName)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return fmt.Sprintf("%s wins the game", playerName)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return fmt.Sprintf("%s passed", playerName)
}

func (m MessageWriter) FirstCardPlayed(c *card.Card) string {
	return fmt.Sprintf("First card is %s", c.Paint())
}

func (m MessageWriter) PlayerPickedColor(playerName string, picked color.Color) string {
	return fmt.Sprintf("%s picked color %s!", playerName, picked.Paint(picked.Title()))
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return fmt.Sprintf("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed(order []string) string {
	return fmt.Sprintf("Turn order has been reversed: %s", strings.Join(order, " -> "))
}

func (m MessageWriter) PileReshuffled(drawPileSize int) string {
	return fmt.Sprintf("Discard pile shuffled back, %d cards to draw", drawPileSize)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return fmt.Sprintf("It's your turn, %s!", playerName)
}

func (m MessageWriter) HumanPlayerOwesCards(amount int) string {
	if amount == 1 {
		return "You must draw a card before playing."
	}
	return fmt.Sprintf("You must draw %d cards before playing.", amount)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, top *card.Card) string {
	return fmt.Sprintf("%s, none of your cards match %s!", playerName, top.Paint())
}

func (m MessageWriter) UnoPenalty(playerName string, amount int) string {
	return fmt.Sprintf("%s forgot to say UNO and draws %d cards!", playerName, amount)
}

func (m MessageWriter) Welcome() string {
	return fmt.Sprintf(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) Scores(scores map[string]int, order []string) string {
	lines := make([]string, 0, len(order)+1)
	lines = append(lines, "Scores:")
	for _, name := range order {
		lines = append(lines, fmt.Sprintf("  %s: %d", name, scores[name]))
	}
	return strings.Join(lines, "\n")
}
