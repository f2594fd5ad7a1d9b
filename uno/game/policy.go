package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Policy decides for a bot. Choose is only called with a non-empty list.
type Policy interface {
	Choose(playable []*card.Card, state State) *card.Card
	PickColor(state State) color.Color
}

type Outcome int

const (
	Drew Outcome = iota
	Blocked
	PlayedWild
	PlayedReverse
	PlayedSkip
	PlayedNormal
)

var outcomeNames = map[Outcome]string{
	Drew:          "drew",
	Blocked:       "blocked",
	PlayedWild:    "played-wild",
	PlayedReverse: "played-reverse",
	PlayedSkip:    "played-skip",
	PlayedNormal:  "played-normal",
}

func (o Outcome) String() string {
	return outcomeNames[o]
}

func (o Outcome) Played() bool {
	return o >= PlayedWild
}

type Decision struct {
	Outcome Outcome
	// Card is the card played or drawn, nil when blocked.
	Card  *card.Card
	Color color.Color
}

// BotTurn lets bot play a card chosen by policy, or draw one when it holds nothing playable.
func (s *Session) BotTurn(bot *Player, policy Policy) Decision {
	playable := s.PlayableCards(bot)
	if len(playable) == 0 {
		drawn, err := s.Draw(bot, false)
		if err != nil {
			return Decision{Outcome: Blocked}
		}
		return Decision{Outcome: Drew, Card: drawn}
	}

	state := s.State(bot)
	choice := policy.Choose(playable, state)
	if indexOf(playable, choice) < 0 {
		choice = playable[0]
	}
	picked := color.None
	if choice.IsWild() {
		picked = policy.PickColor(state)
		if !picked.Valid() {
			picked = color.All[s.rng.Intn(len(color.All))]
		}
	}
	if err := s.play(bot, choice, picked); err != nil {
		return Decision{Outcome: Blocked}
	}

	decision := Decision{Card: choice, Color: picked}
	switch {
	case choice.IsWild():
		decision.Outcome = PlayedWild
	case choice.Action() == card.Reverse:
		decision.Outcome = PlayedReverse
	case choice.Action() == card.Skip:
		decision.Outcome = PlayedSkip
	default:
		decision.Outcome = PlayedNormal
	}
	return decision
}
