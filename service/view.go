package service

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

// Step is one bot step as published to subscribers.
type Step struct {
	TableID  string   `json:"tableId"`
	Phase    string   `json:"phase"`
	Player   string   `json:"player,omitempty"`
	Outcome  string   `json:"outcome,omitempty"`
	Card     string   `json:"card,omitempty"`
	Color    string   `json:"color,omitempty"`
	Forced   []string `json:"forced,omitempty"`
	Skipped  string   `json:"skipped,omitempty"`
	Reversed bool     `json:"reversed,omitempty"`
	Uno      bool     `json:"uno,omitempty"`
	Winner   string   `json:"winner,omitempty"`
	// Penalty is the number of cards the human drew for a missed UNO call.
	Penalty int `json:"penalty,omitempty"`
}

func newStep(report game.Report) Step {
	step := Step{
		Phase:    report.Phase.String(),
		Reversed: report.Reversed,
		Uno:      report.Uno,
		Forced:   cardNames(report.Forced),
	}
	if report.Player != nil {
		step.Player = report.Player.Name()
		step.Outcome = report.Decision.Outcome.String()
		if report.Decision.Card != nil {
			step.Card = report.Decision.Card.String()
		}
		if report.Decision.Color.Valid() {
			step.Color = report.Decision.Color.String()
		}
		if report.Phase == game.Won {
			step.Winner = step.Player
		}
	}
	if report.Skipped != nil {
		step.Skipped = report.Skipped.Name()
	}
	return step
}

type View struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Human        string         `json:"human"`
	Top          string         `json:"top"`
	WildColor    string         `json:"wildColor,omitempty"`
	Hand         []string       `json:"hand"`
	Playable     []int          `json:"playable"`
	TurnOrder    []string       `json:"turnOrder"`
	HandCounts   map[string]int `json:"handCounts"`
	DrawPileSize int            `json:"drawPileSize"`
	Owed         int            `json:"owed"`
	SaidUno      bool           `json:"saidUno"`
	Running      bool           `json:"running"`
	Blocked      bool           `json:"blocked"`
	Winner       string         `json:"winner,omitempty"`
	Scores       map[string]int `json:"scores,omitempty"`
}

// View is what the human sees of the table.
func (t *Table) View() View {
	t.Lock()
	defer t.Unlock()
	human := t.session.Human()
	state := t.session.State(human)
	view := View{
		ID:           t.ID,
		Name:         t.Name(),
		Human:        human.Name(),
		Top:          state.LastPlayedCard.String(),
		Hand:         cardNames(state.CurrentPlayerHand),
		Playable:     []int{},
		TurnOrder:    state.PlayerSequence,
		HandCounts:   state.PlayerHandCounts,
		DrawPileSize: state.DrawPileSize,
		Owed:         t.owed,
		SaidUno:      t.saidUno,
		Running:      t.running,
		Blocked:      t.blocked,
	}
	if state.WildColor.Valid() {
		view.WildColor = state.WildColor.String()
	}
	for i, c := range state.CurrentPlayerHand {
		if t.session.Playable(c) {
			view.Playable = append(view.Playable, i)
		}
	}
	if winner := t.session.Winner(); winner != nil {
		view.Winner = winner.Name()
		view.Scores = t.session.Scores()
	}
	return view
}

// State is the session state seen by the human, for console rendering.
func (t *Table) State() game.State {
	t.Lock()
	defer t.Unlock()
	return t.session.State(t.session.Human())
}

func cardNames(cards []*card.Card) []string {
	if len(cards) == 0 {
		return nil
	}
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.String())
	}
	return names
}
