package event

// Bus carries the events of one session. It is not safe for concurrent use;
// the owner of the session serialises access.
type Bus struct {
	GameStarted       *gameStartedEmitter
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	CardDrawn         *cardDrawnEmitter
	TurnSkipped       *turnSkippedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	PileReshuffled    *pileReshuffledEmitter
	UnoAnnounced      *unoAnnouncedEmitter
	WinnerFound       *winnerFoundEmitter
	PlayerPassed      *playerPassedEmitter
}

func NewBus() *Bus {
	return &Bus{
		GameStarted:       &gameStartedEmitter{},
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		CardDrawn:         &cardDrawnEmitter{},
		TurnSkipped:       &turnSkippedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		PileReshuffled:    &pileReshuffledEmitter{},
		UnoAnnounced:      &unoAnnouncedEmitter{},
		WinnerFound:       &winnerFoundEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
	}
}

// Subscribe registers listener on every emitter whose listener interface it implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(GameStartedListener); ok {
		b.GameStarted.AddListener(l)
	}
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(CardDrawnListener); ok {
		b.CardDrawn.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		b.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		b.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(PileReshuffledListener); ok {
		b.PileReshuffled.AddListener(l)
	}
	if l, ok := listener.(UnoAnnouncedListener); ok {
		b.UnoAnnounced.AddListener(l)
	}
	if l, ok := listener.(WinnerFoundListener); ok {
		b.WinnerFound.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
	}
}
