package game_test

import (
	"testing"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

var red = firstPolicy{color: color.Red}

func filler() []*card.Card {
	return numbers(color.Yellow, 0, 1, 2, 3, 4, 5)
}

func TestSequencerSkip(t *testing.T) {
	t.Run("skip_on_top_passes_over_the_first_bot", func(t *testing.T) {
		session, listener := newTestSession(t, 3)
		bots := session.TurnOrder()[1:]
		red3 := card.NewNumberCard(color.Red, 3)
		game.Rig(session, filler(), cards(card.NewActionCard(color.Red, card.Skip)),
			numbers(color.Yellow, 4),
			cards(card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Blue, 9)),
			cards(red3, card.NewNumberCard(color.Green, 1)),
		)
		listener.Reset()

		sequencer := game.NewSequencer(session, red, game.Options{})
		report := sequencer.Step()
		require.Same(t, bots[0], report.Skipped)
		require.Same(t, bots[1], report.Player)
		require.Equal(t, game.PlayedNormal, report.Decision.Outcome)
		require.True(t, report.Uno)
		require.Equal(t, game.Yielded, report.Phase)
		require.True(t, sequencer.Done())

		require.Equal(t, game.Result{}, sequencer.Result())
		require.Equal(t, 2, bots[0].HandSize())
		require.Same(t, red3, session.Top())
		require.Contains(t, listener.ReceivedPayloads(), event.TurnSkippedPayload{PlayerName: bots[0].Name()})
		require.Contains(t, listener.ReceivedPayloads(), event.UnoAnnouncedPayload{PlayerName: bots[1].Name()})
	})

	t.Run("skip_by_the_last_bot_is_owed_by_the_human", func(t *testing.T) {
		session, _ := newTestSession(t, 3)
		bots := session.TurnOrder()[1:]
		blue7 := card.NewNumberCard(color.Blue, 7)
		game.Rig(session, append(filler()[:4], blue7), numbers(color.Red, 5),
			numbers(color.Yellow, 4),
			cards(card.NewNumberCard(color.Blue, 5), card.NewNumberCard(color.Green, 2)),
			cards(card.NewActionCard(color.Blue, card.Skip), card.NewNumberCard(color.Yellow, 8)),
		)

		result := game.RunBots(session, red, false)
		require.True(t, result.PendingSkip)
		require.Zero(t, result.ForcedDraw)
		require.Nil(t, result.Winner)

		sequencer := game.NewSequencer(session, red, game.Options{SkipConsumed: true, DrawDelay: 200 * time.Millisecond, PlayDelay: time.Second})
		report := sequencer.Step()
		require.Nil(t, report.Skipped)
		require.Same(t, bots[0], report.Player)
		require.Equal(t, game.Drew, report.Decision.Outcome)
		require.Same(t, blue7, report.Decision.Card)
		require.Equal(t, 200*time.Millisecond, report.Delay)
		require.Equal(t, game.PlayerActing, report.Phase)

		report = sequencer.Step()
		require.Nil(t, report.Skipped)
		require.Same(t, bots[0], report.Player)
		require.Equal(t, game.PlayedNormal, report.Decision.Outcome)
		require.Same(t, blue7, report.Decision.Card)
		require.True(t, report.Uno)
		require.Equal(t, time.Second, report.Delay)
		require.Equal(t, game.Advancing, report.Phase)
	})
}

func TestSequencerDraw(t *testing.T) {
	t.Run("draw_two_on_top_makes_the_first_bot_draw", func(t *testing.T) {
		session, _ := newTestSession(t, 3)
		bots := session.TurnOrder()[1:]
		red1 := card.NewNumberCard(color.Red, 1)
		green9 := card.NewNumberCard(color.Green, 9)
		game.Rig(session, append(filler(), green9, red1), cards(card.NewActionCard(color.Red, card.DrawTwo)),
			numbers(color.Blue, 4),
			numbers(color.Green, 4),
			cards(card.NewNumberCard(color.Yellow, 1), card.NewNumberCard(color.Yellow, 2)),
		)

		sequencer := game.NewSequencer(session, red, game.Options{})
		report := sequencer.Step()
		require.Equal(t, []*card.Card{red1, green9}, report.Forced)
		require.Same(t, bots[0], report.Player)
		require.Same(t, red1, report.Decision.Card)
		require.Equal(t, 2, bots[0].HandSize())

		report = sequencer.Step()
		require.Same(t, bots[1], report.Player)
		require.Empty(t, report.Forced)
		require.Equal(t, game.Yielded, report.Phase)
		require.Equal(t, game.Result{}, sequencer.Result())
	})

	t.Run("wild_four_by_the_last_bot_is_owed_by_the_human", func(t *testing.T) {
		session, _ := newTestSession(t, 3)
		game.Rig(session, filler(), numbers(color.Red, 5),
			numbers(color.Blue, 4),
			cards(card.NewNumberCard(color.Red, 6), card.NewNumberCard(color.Blue, 1)),
			cards(card.NewWildCard(card.WildFour), card.NewNumberCard(color.Green, 3)),
		)

		result := game.RunBots(session, red, false)
		require.Equal(t, 4, result.ForcedDraw)
		require.False(t, result.PendingSkip)
		require.Equal(t, color.Red, session.WildColor())
		require.Equal(t, card.WildFour, session.Top().Action())
		require.Equal(t, 1, session.Human().HandSize())
	})

	t.Run("partial_forced_draw_when_the_piles_run_dry", func(t *testing.T) {
		session, _ := newTestSession(t, 2)
		game.Rig(session, numbers(color.Blue, 8), cards(card.NewActionCard(color.Red, card.DrawTwo)),
			numbers(color.Blue, 4),
			numbers(color.Green, 4),
		)

		sequencer := game.NewSequencer(session, red, game.Options{})
		report := sequencer.Step()
		require.Len(t, report.Forced, 1)
		require.Equal(t, game.Blocked, report.Decision.Outcome)
		require.Equal(t, game.Yielded, report.Phase)
		require.True(t, sequencer.Result().Blocked)
	})
}

func TestSequencerReverse(t *testing.T) {
	t.Run("reverse_mid_segment_turns_back", func(t *testing.T) {
		session, listener := newTestSession(t, 4)
		players := session.Players()
		b1, b2, b3 := players[1], players[2], players[3]
		game.Rig(session, filler(), numbers(color.Red, 5),
			numbers(color.Blue, 4),
			cards(card.NewNumberCard(color.Red, 7), card.NewNumberCard(color.Red, 8), card.NewNumberCard(color.Green, 1)),
			cards(card.NewActionCard(color.Red, card.Reverse), card.NewNumberCard(color.Blue, 2)),
			numbers(color.Yellow, 1, 2),
		)
		listener.Reset()

		sequencer := game.NewSequencer(session, red, game.Options{})
		require.Same(t, b1, sequencer.Step().Player)

		report := sequencer.Step()
		require.Same(t, b2, report.Player)
		require.Equal(t, game.PlayedReverse, report.Decision.Outcome)

		report = sequencer.Step()
		require.True(t, report.Reversed)
		require.Same(t, b1, report.Player)
		require.Equal(t, game.Yielded, report.Phase)

		require.Equal(t, 2, b3.HandSize())
		require.Equal(t, []*game.Player{b3, b2, b1, players[0]}, session.TurnOrder())
		require.Equal(t, []string{b1.Name(), b2.Name(), b1.Name()}, cardsPlayedBy(listener))
	})

	t.Run("reverse_by_the_first_bot_returns_to_the_human", func(t *testing.T) {
		session, _ := newTestSession(t, 4)
		players := session.Players()
		game.Rig(session, filler(), numbers(color.Red, 5),
			numbers(color.Blue, 4),
			cards(card.NewActionCard(color.Red, card.Reverse), card.NewNumberCard(color.Blue, 9)),
			numbers(color.Red, 1, 2),
			numbers(color.Red, 3, 4),
		)

		sequencer := game.NewSequencer(session, red, game.Options{})
		sequencer.Step()
		report := sequencer.Step()
		require.True(t, report.Reversed)
		require.Nil(t, report.Player)
		require.Equal(t, game.Yielded, report.Phase)
		require.Equal(t, game.Result{}, sequencer.Result())
		require.Equal(t, 2, players[2].HandSize())
		require.Equal(t, 2, players[3].HandSize())
	})

	t.Run("human_reverse_is_not_applied_twice", func(t *testing.T) {
		session, listener := newTestSession(t, 4)
		players := session.Players()
		reverse := card.NewActionCard(color.Red, card.Reverse)
		game.Rig(session, filler(), numbers(color.Red, 5),
			cards(reverse, card.NewNumberCard(color.Blue, 4)),
			numbers(color.Red, 1, 9),
			numbers(color.Red, 2, 9),
			numbers(color.Red, 3, 9),
		)
		require.NoError(t, session.PlayForHuman(reverse, color.None))
		listener.Reset()

		result := game.RunBots(session, red, true)
		require.Equal(t, game.Result{}, result)
		require.Equal(t, []string{players[3].Name(), players[2].Name(), players[1].Name()}, cardsPlayedBy(listener))
		require.Equal(t, []*game.Player{players[3], players[2], players[1], players[0]}, session.TurnOrder())
	})
}

func TestSequencerEnd(t *testing.T) {
	t.Run("blocked_when_nothing_can_be_drawn", func(t *testing.T) {
		session, _ := newTestSession(t, 2)
		game.Rig(session, nil, numbers(color.Red, 5), numbers(color.Blue, 4), numbers(color.Blue, 1))

		result := game.RunBots(session, red, false)
		require.True(t, result.Blocked)
		require.Nil(t, result.Winner)
	})

	t.Run("win_stops_the_run", func(t *testing.T) {
		session, listener := newTestSession(t, 3)
		players := session.Players()
		game.Rig(session, filler(), numbers(color.Red, 5),
			numbers(color.Blue, 4),
			numbers(color.Red, 1),
			numbers(color.Red, 2, 3),
		)
		listener.Reset()

		sequencer := game.NewSequencer(session, red, game.Options{})
		report := sequencer.Step()
		require.Equal(t, game.Won, report.Phase)
		require.Same(t, players[1], sequencer.Result().Winner)
		require.Contains(t, listener.ReceivedPayloads(), event.WinnerFoundPayload{PlayerName: players[1].Name(), Score: 9})

		discard := session.DiscardPile()
		report = sequencer.Step()
		require.Equal(t, game.Won, report.Phase)
		require.Nil(t, report.Player)
		require.Equal(t, discard, session.DiscardPile())
		require.Equal(t, 2, players[2].HandSize())
	})

	t.Run("no_turns_after_the_human_won", func(t *testing.T) {
		session, listener := newTestSession(t, 3)
		bots := session.TurnOrder()[1:]
		red3 := card.NewNumberCard(color.Red, 3)
		game.Rig(session, filler(), numbers(color.Red, 5),
			cards(red3),
			numbers(color.Red, 1, 2),
			numbers(color.Red, 4, 6),
		)
		require.NoError(t, session.PlayForHuman(red3, color.None))
		require.Same(t, session.Human(), session.Winner())
		plays := session.Plays()
		listener.Reset()

		result := game.RunBots(session, red, false)
		require.Same(t, session.Human(), result.Winner)
		require.Equal(t, plays, session.Plays())
		require.Equal(t, 2, bots[0].HandSize())
		require.Equal(t, 2, bots[1].HandSize())
		require.Empty(t, listener.ReceivedPayloads())

		drawn, err := session.DrawForHuman()
		require.Nil(t, drawn)
		require.Equal(t, consts.ErrorsGameOver, err)
		_, err = session.Draw(bots[0], true)
		require.Equal(t, consts.ErrorsGameOver, err)
		require.Equal(t, game.Blocked, session.BotTurn(bots[0], red).Outcome)
		require.Equal(t, 2, bots[0].HandSize())
		require.Equal(t, len(filler()), session.DrawPileSize())
		require.Same(t, red3, session.Top())
	})

	t.Run("done_sequencer_ignores_steps", func(t *testing.T) {
		session, _ := newTestSession(t, 2)
		sequencer := game.NewSequencer(session, red, game.Options{})
		sequencer.Run()
		require.True(t, sequencer.Done())
		top := session.Top()
		sequencer.Step()
		require.Same(t, top, session.Top())
	})
}
