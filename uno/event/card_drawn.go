package event

import "github.com/ratel-online/uno/uno/card"

type CardDrawnPayload struct {
	PlayerName string
	Human      bool
	Card       *card.Card
	// Forced is set when the draw was imposed by a draw-two or wild-four.
	Forced bool
}

type CardDrawnListener interface {
	OnCardDrawn(CardDrawnPayload)
}

type cardDrawnEmitter struct {
	listeners []CardDrawnListener
}

func (e *cardDrawnEmitter) AddListener(listener CardDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardDrawnEmitter) Emit(payload CardDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardDrawn(payload)
	}
}
