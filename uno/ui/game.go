package ui

import (
	"errors"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
)

// Setup asks for the game name and the number of players.
func (c *Console) Setup(defaultName string) (string, int, error) {
	name, err := c.PromptString("Enter a name for the game:")
	if err != nil {
		return "", 0, err
	}
	if name == "-" {
		name = defaultName
	}
	count, err := c.PromptIntegerInRange(consts.MinPlayers, consts.MaxPlayers, "How many players (you included)?")
	if err != nil {
		return "", 0, err
	}
	return name, count, nil
}

// Play drives the human seat of table until the game ends or input runs out.
// The console must be subscribed to the table's bus.
func (c *Console) Play(table *service.Table) error {
	for {
		table.Wait()
		view := table.View()
		if view.Winner != "" {
			c.Println(msg.Message.Scores(view.Scores, view.TurnOrder))
			return nil
		}
		if err := c.turn(table, view); err != nil {
			var e consts.Error
			if errors.As(err, &e) && !e.Exit {
				c.Println(e.Msg)
				continue
			}
			return err
		}
	}
}

func (c *Console) turn(table *service.Table, view service.View) error {
	state := table.State()
	c.Println(msg.Message.HumanPlayerTurnStarted(view.Human))
	c.Println(state.String())

	if view.Owed > 0 {
		c.Println(msg.Message.HumanPlayerOwesCards(view.Owed))
		if _, err := table.Draw(); !errors.Is(err, consts.ErrorsPileExhausted) {
			return err
		}
	}

	if len(view.Playable) == 0 {
		c.Println(msg.Message.HumanPlayerHasNoMatchingCardsInHand(view.Human, state.LastPlayedCard))
		_, err := table.Draw()
		if errors.Is(err, consts.ErrorsPileExhausted) {
			return table.Pass()
		}
		return err
	}

	cards := make([]*card.Card, 0, len(view.Playable))
	for _, i := range view.Playable {
		cards = append(cards, state.CurrentPlayerHand[i])
	}
	commands := []string{CommandDraw}
	if len(view.Hand) <= 2 && !view.SaidUno {
		commands = append(commands, CommandUno)
	}
	selected, command, err := c.PromptCardSelection(cards, commands...)
	if err != nil {
		return err
	}
	switch command {
	case CommandDraw:
		_, err := table.Draw()
		return err
	case CommandUno:
		return table.CallUno()
	}

	picked := color.None
	if cards[selected].IsWild() {
		if picked, err = c.PromptColor(); err != nil {
			return err
		}
	}
	_, err = table.Play(view.Playable[selected], picked)
	return err
}
