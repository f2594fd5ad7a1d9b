package game

import (
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

type Config struct {
	Name        string
	PlayerCount int
	HumanName   string
	// BotNames is the pool bot names are drawn from without replacement.
	BotNames []string
	Random   Random
	Bus      *event.Bus
}

// Session owns the piles, the players and the turn order of one game.
// It is not safe for concurrent use.
type Session struct {
	name        string
	rng         Random
	bus         *event.Bus
	players     []*Player
	turnOrder   *TurnOrder
	drawPile    *Pile
	discardPile *Pile
	wildColor   color.Color
	plays       int
	nextID      int
}

func New(cfg Config) (*Session, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, consts.ErrorsGameNameInvalid
	}
	if cfg.PlayerCount < consts.MinPlayers || cfg.PlayerCount > consts.MaxPlayers {
		return nil, consts.ErrorsPlayerCountInvalid
	}
	if len(cfg.BotNames) < cfg.PlayerCount-1 {
		return nil, consts.ErrorsBotNamesExhausted
	}
	if cfg.Random == nil {
		cfg.Random = NewRandom()
	}
	if cfg.Bus == nil {
		cfg.Bus = event.NewBus()
	}
	if cfg.HumanName == "" {
		cfg.HumanName = consts.HumanName
	}

	s := &Session{
		name:        cfg.Name,
		rng:         cfg.Random,
		bus:         cfg.Bus,
		drawPile:    BuildDrawPile(cfg.Random),
		discardPile: NewPile(),
		wildColor:   color.None,
	}
	if err := s.turnUpOpener(); err != nil {
		return nil, err
	}

	s.players = append(s.players, s.newPlayer(Human, cfg.HumanName))
	for _, name := range s.pickBotNames(cfg.BotNames, cfg.PlayerCount-1) {
		s.players = append(s.players, s.newPlayer(Bot, name))
	}
	s.turnOrder = NewTurnOrder(s.players)
	s.deal()

	s.bus.GameStarted.Emit(event.GameStartedPayload{GameName: s.name, Players: s.turnOrder.Names()})
	s.bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: s.Top()})
	return s, nil
}

// turnUpOpener moves non-number cards from the top to the bottom of the draw
// pile, at most once per card, then turns the top card onto the discard pile.
func (s *Session) turnUpOpener() error {
	for i := 0; i < s.drawPile.Len() && !s.drawPile.Top().IsNumber(); i++ {
		s.drawPile.PushBottom(s.drawPile.Pop())
	}
	if !s.drawPile.Top().IsNumber() {
		return consts.ErrorsNoOpener
	}
	s.discardPile.Push(s.drawPile.Pop())
	s.plays++
	return nil
}

func (s *Session) pickBotNames(pool []string, amount int) []string {
	names := make([]string, len(pool))
	copy(names, pool)
	s.rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	return names[:amount]
}

func (s *Session) newPlayer(kind Kind, name string) *Player {
	s.nextID++
	return &Player{id: s.nextID, kind: kind, name: name, hand: NewHand(), session: s}
}

func (s *Session) deal() {
	for round := 0; round < consts.StartingHandSize; round++ {
		for _, player := range s.players {
			player.Draw(s.drawPile.Top())
		}
	}
}

func (s *Session) Name() string {
	return s.name
}

func (s *Session) Bus() *event.Bus {
	return s.bus
}

func (s *Session) Top() *card.Card {
	return s.discardPile.Top()
}

// WildColor is the color picked for the wild card on top, None otherwise.
func (s *Session) WildColor() color.Color {
	return s.wildColor
}

func (s *Session) Playable(c *card.Card) bool {
	return Playable(c, s.Top(), s.wildColor)
}

// PlayableCards lists the cards of player's hand that can be played now.
func (s *Session) PlayableCards(player *Player) []*card.Card {
	var playable []*card.Card
	for _, c := range player.Hand() {
		if s.Playable(c) {
			playable = append(playable, c)
		}
	}
	return playable
}

func (s *Session) Human() *Player {
	return s.players[0]
}

func (s *Session) Bots() []*Player {
	bots := make([]*Player, len(s.players)-1)
	copy(bots, s.players[1:])
	return bots
}

// Players lists everyone in creation order.
func (s *Session) Players() []*Player {
	players := make([]*Player, len(s.players))
	copy(players, s.players)
	return players
}

func (s *Session) TurnOrder() []*Player {
	return s.turnOrder.Players()
}

// Plays counts the cards turned onto the discard pile, opener included.
func (s *Session) Plays() int {
	return s.plays
}

func (s *Session) DrawPile() []*card.Card {
	return s.drawPile.Cards()
}

func (s *Session) DiscardPile() []*card.Card {
	return s.discardPile.Cards()
}

func (s *Session) DrawPileSize() int {
	return s.drawPile.Len()
}

func (s *Session) Reverse() {
	s.turnOrder.Reverse()
	s.bus.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{Order: s.turnOrder.Names()})
}

// Reshuffle moves every discard except the top back into the draw pile and
// shuffles it. It reports whether any card moved.
func (s *Session) Reshuffle() bool {
	under := s.discardPile.TakeUnderTop()
	if len(under) == 0 {
		return false
	}
	for _, c := range under {
		c.Recycle()
		s.drawPile.Push(c)
	}
	s.drawPile.Shuffle(s.rng)
	s.bus.PileReshuffled.Emit(event.PileReshuffledPayload{DrawPileSize: s.drawPile.Len()})
	return true
}

func (s *Session) reshuffleIfNeeded() {
	if s.drawPile.Len() < consts.ReshuffleThreshold {
		s.Reshuffle()
	}
}

// Draw gives the top of the draw pile to player, reshuffling first when the
// pile runs low. Nothing is drawn once somebody has won.
func (s *Session) Draw(player *Player, forced bool) (*card.Card, error) {
	if s.Winner() != nil {
		return nil, consts.ErrorsGameOver
	}
	s.reshuffleIfNeeded()
	c := s.drawPile.Top()
	if c == nil || !player.Draw(c) {
		return nil, consts.ErrorsPileExhausted
	}
	s.reshuffleIfNeeded()
	s.bus.CardDrawn.Emit(event.CardDrawnPayload{
		PlayerName: player.Name(),
		Human:      player.IsHuman(),
		Card:       c,
		Forced:     forced,
	})
	return c, nil
}

func (s *Session) DrawForHuman() (*card.Card, error) {
	return s.Draw(s.Human(), false)
}

// PlayForHuman plays c from the human hand. Nothing changes when the move is
// rejected. A reverse flips the turn order right away.
func (s *Session) PlayForHuman(c *card.Card, picked color.Color) error {
	if err := s.play(s.Human(), c, picked); err != nil {
		return err
	}
	if c.Action() == card.Reverse {
		s.Reverse()
	}
	return nil
}

func (s *Session) play(player *Player, c *card.Card, picked color.Color) error {
	if s.Winner() != nil {
		return consts.ErrorsGameOver
	}
	if c == nil || !player.Holds(c) {
		return consts.ErrorsCardNotInHand
	}
	if !s.Playable(c) {
		return consts.ErrorsIllegalMove
	}
	if c.IsWild() {
		if !picked.Valid() {
			return consts.ErrorsColorInvalid
		}
		if err := c.Choose(picked); err != nil {
			return err
		}
	} else {
		picked = color.None
	}
	player.Play(c)
	s.bus.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Human:      player.IsHuman(),
		Card:       c,
		Color:      picked,
	})
	if picked != color.None {
		s.bus.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: player.Name(), Color: picked})
	}
	return nil
}

func (s *Session) discard(c *card.Card) {
	s.discardPile.Push(c)
	s.plays++
	if c.IsWild() {
		s.wildColor = c.ChosenColor()
	} else {
		s.wildColor = color.None
	}
}

// State is what player can see of the table.
func (s *Session) State(player *Player) State {
	counts := make(map[string]int, len(s.players))
	for _, p := range s.players {
		counts[p.Name()] = p.HandSize()
	}
	return State{
		LastPlayedCard:    s.Top(),
		WildColor:         s.wildColor,
		CurrentPlayerHand: player.SortedHand(),
		PlayerSequence:    s.turnOrder.Names(),
		PlayerHandCounts:  counts,
		DrawPileSize:      s.drawPile.Len(),
	}
}

// Winner is the first player, in creation order, holding no cards.
func (s *Session) Winner() *Player {
	for _, p := range s.players {
		if p.hand.Empty() {
			return p
		}
	}
	return nil
}

// Scores credits the winner with the points left in every other hand.
// It is empty while nobody has won.
func (s *Session) Scores() map[string]int {
	winner := s.Winner()
	if winner == nil {
		return map[string]int{}
	}
	scores := make(map[string]int, len(s.players))
	for _, p := range s.players {
		scores[p.Name()] = 0
	}
	for _, p := range s.players {
		if p != winner {
			scores[winner.Name()] += p.hand.Score()
		}
	}
	return scores
}
