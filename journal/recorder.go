package journal

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// Recorder turns the events of one session into journal lines.
type Recorder struct {
	sink     Sink
	gameName string
}

func NewRecorder(sink Sink, gameName string) *Recorder {
	return &Recorder{sink: sink, gameName: gameName}
}

func (r *Recorder) record(actor, message string) {
	if err := r.sink.Record(actor, message, r.gameName); err != nil {
		log.Error(err)
	}
}

func (r *Recorder) OnGameStarted(payload event.GameStartedPayload) {
	r.record("", msg.Message.GameStarted(payload.GameName))
}

func (r *Recorder) OnCardDrawn(payload event.CardDrawnPayload) {
	r.record(payload.PlayerName, msg.Message.CardDrawn(payload.PlayerName, payload.Human, payload.Card))
}

func (r *Recorder) OnCardPlayed(payload event.CardPlayedPayload) {
	r.record(payload.PlayerName, msg.Message.CardPlayed(payload.PlayerName, payload.Human, payload.Card, payload.Color))
}

func (r *Recorder) OnUnoAnnounced(payload event.UnoAnnouncedPayload) {
	r.record(payload.PlayerName, msg.Message.UnoAnnounced(payload.PlayerName))
}

func (r *Recorder) OnWinnerFound(payload event.WinnerFoundPayload) {
	r.record(payload.PlayerName, msg.Message.WinnerFound(payload.PlayerName))
}

func (r *Recorder) OnPlayerPassed(payload event.PlayerPassedPayload) {
	r.record(payload.PlayerName, msg.Message.PlayerPassed(payload.PlayerName))
}
