package event

type GameStartedPayload struct {
	GameName string
	Players  []string
}

type GameStartedListener interface {
	OnGameStarted(GameStartedPayload)
}

type gameStartedEmitter struct {
	listeners []GameStartedListener
}

func (e *gameStartedEmitter) AddListener(listener GameStartedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *gameStartedEmitter) Emit(payload GameStartedPayload) {
	for _, listener := range e.listeners {
		listener.OnGameStarted(payload)
	}
}
