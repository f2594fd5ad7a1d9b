package game

// TurnOrder is the seating of a session. Reversing flips the seats in place.
type TurnOrder struct {
	players []*Player
}

func NewTurnOrder(players []*Player) *TurnOrder {
	seats := make([]*Player, len(players))
	copy(seats, players)
	return &TurnOrder{players: seats}
}

func (o *TurnOrder) Players() []*Player {
	players := make([]*Player, len(o.players))
	copy(players, o.players)
	return players
}

func (o *TurnOrder) Len() int {
	return len(o.players)
}

func (o *TurnOrder) Reverse() {
	for i, j := 0, len(o.players)-1; i < j; i, j = i+1, j-1 {
		o.players[i], o.players[j] = o.players[j], o.players[i]
	}
}

// Without returns the seats in order, leaving out player.
func (o *TurnOrder) Without(player *Player) []*Player {
	players := make([]*Player, 0, len(o.players))
	for _, seated := range o.players {
		if seated != player {
			players = append(players, seated)
		}
	}
	return players
}

func (o *TurnOrder) ForEach(function func(*Player)) {
	for _, seated := range o.players {
		function(seated)
	}
}

func (o *TurnOrder) Names() []string {
	names := make([]string, 0, len(o.players))
	o.ForEach(func(player *Player) {
		names = append(names, player.Name())
	})
	return names
}
