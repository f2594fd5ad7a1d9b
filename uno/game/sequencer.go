package game

import (
	"time"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
)

type Phase int

const (
	AwaitingTopCardEffect Phase = iota
	PlayerActing
	ApplyingEffect
	Advancing
	Won
	Yielded
)

var phaseNames = map[Phase]string{
	AwaitingTopCardEffect: "awaiting-top-card-effect",
	PlayerActing:          "player-acting",
	ApplyingEffect:        "applying-effect",
	Advancing:             "advancing",
	Won:                   "won",
	Yielded:               "yielded",
}

func (p Phase) String() string {
	return phaseNames[p]
}

type Options struct {
	// StartReversed tells the run that the human's reverse on top was already applied.
	StartReversed bool
	// SkipConsumed tells the run that the effect of the card on top already hit the human.
	SkipConsumed bool
	PlayDelay    time.Duration
	DrawDelay    time.Duration
}

// Report describes one step of a run.
type Report struct {
	Phase    Phase
	Player   *Player
	Decision Decision
	// Forced holds the cards Player had to draw before acting.
	Forced   []*card.Card
	Skipped  *Player
	Reversed bool
	Uno      bool
	// Delay is the pause to keep before the next step.
	Delay time.Duration
}

type Result struct {
	Winner      *Player
	PendingSkip bool
	// ForcedDraw is what the human owes before the next play: 0, 2 or 4.
	ForcedDraw int
	Blocked    bool
}

// Sequencer runs the bots' turns between two human actions, one Step at a time.
//
// The card on top carries an effect until the sequencer applies it once: a
// skip passes over the next seat, a draw-two or wild-four makes the next seat
// draw, a reverse flips the order. Effects aimed at the human's seat are
// reported in the Result instead.
type Sequencer struct {
	session  *Session
	policy   Policy
	opts     Options
	bots     []*Player
	index    int
	resolved int
	phase    Phase
	result   Result
}

func NewSequencer(session *Session, policy Policy, opts Options) *Sequencer {
	q := &Sequencer{
		session:  session,
		policy:   policy,
		opts:     opts,
		bots:     session.turnOrder.Without(session.Human()),
		resolved: -1,
		phase:    AwaitingTopCardEffect,
	}
	if opts.StartReversed || opts.SkipConsumed {
		q.resolved = session.Plays()
	}
	return q
}

func (q *Sequencer) Phase() Phase {
	return q.phase
}

func (q *Sequencer) Done() bool {
	return q.phase == Won || q.phase == Yielded
}

func (q *Sequencer) Result() Result {
	return q.result
}

// Step applies the pending effect of the top card, lets the current bot act
// and moves on. It does nothing once the run is done, and ends the run as won
// when somebody already holds no cards.
func (q *Sequencer) Step() Report {
	if q.Done() {
		return Report{Phase: q.phase}
	}

	if winner := q.session.Winner(); winner != nil {
		q.result.Winner = winner
		q.phase = Won
		return Report{Phase: q.phase}
	}

	report := Report{}
	q.phase = AwaitingTopCardEffect
	q.settle(&report)
	if q.index >= len(q.bots) {
		q.phase = Yielded
		report.Phase = q.phase
		return report
	}

	bot := q.bots[q.index]
	report.Player = bot
	q.phase = PlayerActing
	report.Decision = q.session.BotTurn(bot, q.policy)

	switch report.Decision.Outcome {
	case Drew:
		report.Delay = q.opts.DrawDelay
		report.Phase = q.phase
		return report
	case Blocked:
		q.result.Blocked = true
		q.phase = Yielded
		report.Phase = q.phase
		return report
	}

	q.phase = ApplyingEffect
	report.Delay = q.opts.PlayDelay
	switch bot.HandSize() {
	case 0:
		q.result.Winner = bot
		q.phase = Won
		q.session.bus.WinnerFound.Emit(event.WinnerFoundPayload{
			PlayerName: bot.Name(),
			Score:      q.session.Scores()[bot.Name()],
		})
		report.Phase = q.phase
		return report
	case 1:
		report.Uno = true
		q.session.bus.UnoAnnounced.Emit(event.UnoAnnouncedPayload{PlayerName: bot.Name()})
	}

	q.phase = Advancing
	q.index++
	if q.index >= len(q.bots) {
		q.settle(&report)
		if q.index >= len(q.bots) {
			q.phase = Yielded
		}
	}
	report.Phase = q.phase
	return report
}

// Run steps until the run is done, without pausing.
func (q *Sequencer) Run() Result {
	for !q.Done() {
		q.Step()
	}
	return q.result
}

func (q *Sequencer) settle(report *Report) {
	top := q.session.Top()
	if top == nil || q.resolved == q.session.Plays() {
		return
	}
	q.resolved = q.session.Plays()

	switch top.Action() {
	case card.Skip:
		if q.index >= len(q.bots) {
			q.result.PendingSkip = true
			report.Skipped = q.session.Human()
		} else {
			report.Skipped = q.bots[q.index]
			q.index++
		}
		q.session.bus.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: report.Skipped.Name()})
	case card.DrawTwo, card.WildFour:
		amount := top.Action().DrawAmount()
		if q.index >= len(q.bots) {
			q.result.ForcedDraw = amount
			return
		}
		bot := q.bots[q.index]
		for i := 0; i < amount; i++ {
			drawn, err := q.session.Draw(bot, true)
			if err != nil {
				break
			}
			report.Forced = append(report.Forced, drawn)
		}
	case card.Reverse:
		q.session.Reverse()
		q.bots = q.session.turnOrder.Without(q.session.Human())
		// The seat that played the reverse mirrors to len-index; play goes on
		// from the seat after it in the new order.
		if q.index > 0 {
			q.index = len(q.bots) - q.index + 1
		}
		report.Reversed = true
	}
}

// RunBots plays the bots' turns after a human play without pausing.
func RunBots(session *Session, policy Policy, startReversed bool) Result {
	return NewSequencer(session, policy, Options{StartReversed: startReversed}).Run()
}
