package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/journal"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
)

type TableConfig struct {
	Name        string
	PlayerCount int
	HumanName   string
	Random      game.Random
	Policy      game.Policy
	Sink        journal.Sink
	PlayDelay   time.Duration
	DrawDelay   time.Duration
	// Listeners are subscribed to the session bus before the first card is turned.
	Listeners []interface{}
}

// Table wraps one session with the rules of the human's turn and runs the
// bots in the background between human actions.
type Table struct {
	sync.Mutex

	ID      string
	Created time.Time

	session *game.Session
	policy  game.Policy
	sink    journal.Sink
	opts    game.Options

	running bool
	owed    int
	saidUno bool
	blocked bool
	closed  bool
	updated time.Time

	runs        sync.WaitGroup
	subscribers map[int]chan Step
	nextSub     int
}

func NewTable(cfg TableConfig) (*Table, error) {
	if cfg.Random == nil {
		cfg.Random = game.NewRandom()
	}
	if cfg.Policy == nil {
		cfg.Policy = player.NewRandomPolicy(cfg.Random)
	}
	if cfg.Sink == nil {
		cfg.Sink = journal.Discard{}
	}
	bus := event.NewBus()
	bus.Subscribe(journal.NewRecorder(cfg.Sink, cfg.Name))
	for _, listener := range cfg.Listeners {
		bus.Subscribe(listener)
	}
	session, err := game.New(game.Config{
		Name:        cfg.Name,
		PlayerCount: cfg.PlayerCount,
		HumanName:   cfg.HumanName,
		BotNames:    player.BotNames(),
		Random:      cfg.Random,
		Bus:         bus,
	})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Table{
		ID:          uuid.NewString(),
		Created:     now,
		session:     session,
		policy:      cfg.Policy,
		sink:        cfg.Sink,
		opts:        game.Options{PlayDelay: cfg.PlayDelay, DrawDelay: cfg.DrawDelay},
		updated:     now,
		subscribers: map[int]chan Step{},
	}, nil
}

func (t *Table) Name() string {
	return t.session.Name()
}

func (t *Table) checkTurn() error {
	if t.closed || t.session.Winner() != nil {
		return consts.ErrorsGameOver
	}
	if t.running {
		return consts.ErrorsBotsRunning
	}
	return nil
}

// Draw gives the human a card. A draw pays off one owed card and does not end the turn.
func (t *Table) Draw() (*card.Card, error) {
	t.Lock()
	defer t.Unlock()
	if err := t.checkTurn(); err != nil {
		return nil, err
	}
	c, err := t.session.DrawForHuman()
	if err != nil {
		return nil, err
	}
	if t.owed > 0 {
		t.owed--
	}
	t.saidUno = false
	t.updated = time.Now()
	return c, nil
}

// Play plays the card at index of the human's sorted hand and starts the bots.
func (t *Table) Play(index int, picked color.Color) (*card.Card, error) {
	t.Lock()
	defer t.Unlock()
	if err := t.checkTurn(); err != nil {
		return nil, err
	}
	if t.owed > 0 {
		if t.canDraw() {
			return nil, consts.ErrorsDrawOwed
		}
		t.owed = 0
	}
	hand := t.session.Human().SortedHand()
	if index < 0 || index >= len(hand) {
		return nil, consts.ErrorsCardNotInHand
	}
	c := hand[index]
	if err := t.session.PlayForHuman(c, picked); err != nil {
		return nil, err
	}
	t.updated = time.Now()

	human := t.session.Human()
	if human.HandSize() == 0 {
		t.session.Bus().WinnerFound.Emit(event.WinnerFoundPayload{
			PlayerName: human.Name(),
			Score:      t.session.Scores()[human.Name()],
		})
		t.publish(Step{Phase: game.Won.String(), Player: human.Name(), Winner: human.Name()})
		return c, nil
	}
	t.startRun(game.Options{StartReversed: c.Action() == card.Reverse})
	return c, nil
}

// CallUno announces UNO for the human, either holding the last card or about
// to play the second to last one. It is accepted while the bots play.
func (t *Table) CallUno() error {
	t.Lock()
	defer t.Unlock()
	if t.closed || t.session.Winner() != nil {
		return consts.ErrorsGameOver
	}
	human := t.session.Human()
	switch human.HandSize() {
	case 1:
	case 2:
		if len(t.session.PlayableCards(human)) == 0 {
			return consts.ErrorsUnoNotAllowed
		}
	default:
		return consts.ErrorsUnoNotAllowed
	}
	if !t.saidUno {
		t.saidUno = true
		t.session.Bus().UnoAnnounced.Emit(event.UnoAnnouncedPayload{PlayerName: human.Name()})
	}
	return nil
}

// Pass gives up the turn when no card can be drawn or played.
func (t *Table) Pass() error {
	t.Lock()
	defer t.Unlock()
	if err := t.checkTurn(); err != nil {
		return err
	}
	human := t.session.Human()
	if t.canDraw() || len(t.session.PlayableCards(human)) > 0 {
		return consts.ErrorsCannotPass
	}
	t.owed = 0
	t.updated = time.Now()
	t.session.Bus().PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: human.Name()})
	t.startRun(game.Options{SkipConsumed: true})
	return nil
}

func (t *Table) canDraw() bool {
	return t.session.DrawPileSize() > 0 || len(t.session.DiscardPile()) > 1
}

// Wait blocks until the bots are done.
func (t *Table) Wait() {
	t.runs.Wait()
}

func (t *Table) startRun(opts game.Options) {
	opts.PlayDelay = t.opts.PlayDelay
	opts.DrawDelay = t.opts.DrawDelay
	t.running = true
	t.blocked = false
	t.runs.Add(1)
	async.Async(func() {
		defer t.runs.Done()
		t.run(opts)
	})
}

func (t *Table) run(opts game.Options) {
	t.Lock()
	sequencer := game.NewSequencer(t.session, t.policy, opts)
	t.Unlock()
	for {
		t.Lock()
		if t.closed {
			t.running = false
			t.Unlock()
			return
		}
		report := sequencer.Step()
		t.publish(newStep(report))
		if sequencer.Done() {
			result := sequencer.Result()
			if t.settle(result) {
				sequencer = game.NewSequencer(t.session, t.policy, game.Options{
					SkipConsumed: true,
					PlayDelay:    opts.PlayDelay,
					DrawDelay:    opts.DrawDelay,
				})
			} else {
				t.running = false
				t.updated = time.Now()
				t.Unlock()
				return
			}
		}
		t.Unlock()
		if report.Delay > 0 {
			time.Sleep(report.Delay)
		}
	}
}

// settle applies what a finished run left for the human and reports whether
// the bots go again because the human was skipped.
func (t *Table) settle(result game.Result) bool {
	if result.Winner != nil {
		log.Infof("table %s: %s wins\n", t.ID, result.Winner.Name())
		return false
	}
	t.blocked = result.Blocked
	t.owed = result.ForcedDraw
	human := t.session.Human()
	if human.HandSize() == 1 && !t.saidUno {
		drawn := 0
		for i := 0; i < consts.UnoPenalty; i++ {
			if _, err := t.session.Draw(human, true); err != nil {
				break
			}
			drawn++
		}
		t.publish(Step{Phase: game.Yielded.String(), Player: human.Name(), Penalty: drawn})
	}
	if human.HandSize() != 1 {
		t.saidUno = false
	}
	return result.PendingSkip
}

// Subscribe returns a feed of bot steps and a function to stop it.
func (t *Table) Subscribe() (<-chan Step, func()) {
	t.Lock()
	defer t.Unlock()
	id := t.nextSub
	t.nextSub++
	ch := make(chan Step, 64)
	if t.closed {
		close(ch)
		return ch, func() {}
	}
	t.subscribers[id] = ch
	return ch, func() {
		t.Lock()
		defer t.Unlock()
		if sub, ok := t.subscribers[id]; ok {
			delete(t.subscribers, id)
			close(sub)
		}
	}
}

func (t *Table) publish(step Step) {
	step.TableID = t.ID
	for _, ch := range t.subscribers {
		select {
		case ch <- step:
		default:
		}
	}
}

// Close stops the bots after their current step and ends every feed.
func (t *Table) Close() {
	t.Lock()
	if t.closed {
		t.Unlock()
		return
	}
	t.closed = true
	for id, ch := range t.subscribers {
		delete(t.subscribers, id)
		close(ch)
	}
	t.Unlock()
	if closer, ok := t.sink.(interface{ CloseGame(string) error }); ok {
		if err := closer.CloseGame(t.Name()); err != nil {
			log.Error(err)
		}
	}
}

// Finished reports whether somebody won.
func (t *Table) Finished() bool {
	t.Lock()
	defer t.Unlock()
	return t.session.Winner() != nil
}

func (t *Table) idleSince() (time.Time, bool) {
	t.Lock()
	defer t.Unlock()
	return t.updated, t.running
}
