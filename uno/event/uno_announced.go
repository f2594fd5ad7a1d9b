package event

type UnoAnnouncedPayload struct {
	PlayerName string
}

type UnoAnnouncedListener interface {
	OnUnoAnnounced(UnoAnnouncedPayload)
}

type unoAnnouncedEmitter struct {
	listeners []UnoAnnouncedListener
}

func (e *unoAnnouncedEmitter) AddListener(listener UnoAnnouncedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *unoAnnouncedEmitter) Emit(payload UnoAnnouncedPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoAnnounced(payload)
	}
}
