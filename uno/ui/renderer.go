package ui

import (
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// The console listens to the session bus and prints what happens at the table.

func (c *Console) OnGameStarted(payload event.GameStartedPayload) {
	c.Println(msg.Message.Welcome())
	c.Println(msg.Message.GameStarted(payload.GameName))
}

func (c *Console) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	c.Println(msg.Message.FirstCardPlayed(payload.Card))
}

func (c *Console) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.Human {
		c.Printfln("You played %s!", payload.Card.Paint())
		return
	}
	c.Printfln("%s played %s!", payload.PlayerName, payload.Card.Paint())
}

func (c *Console) OnColorPicked(payload event.ColorPickedPayload) {
	c.Println(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (c *Console) OnCardDrawn(payload event.CardDrawnPayload) {
	if payload.Human {
		c.Printfln("You drew %s!", payload.Card.Paint())
		return
	}
	c.Printfln("%s drew a card!", payload.PlayerName)
}

func (c *Console) OnTurnSkipped(payload event.TurnSkippedPayload) {
	c.Println(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (c *Console) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	c.Println(msg.Message.TurnOrderReversed(payload.Order))
}

func (c *Console) OnPileReshuffled(payload event.PileReshuffledPayload) {
	c.Println(msg.Message.PileReshuffled(payload.DrawPileSize))
}

func (c *Console) OnUnoAnnounced(payload event.UnoAnnouncedPayload) {
	c.Println(msg.Message.UnoAnnounced(payload.PlayerName))
}

func (c *Console) OnWinnerFound(payload event.WinnerFoundPayload) {
	c.Println(msg.Message.WinnerFound(payload.PlayerName))
}

func (c *Console) OnPlayerPassed(payload event.PlayerPassedPayload) {
	c.Println(msg.Message.PlayerPassed(payload.PlayerName))
}
