package game_test

import (
	"fmt"
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnOrder(t *testing.T) {
	session, _ := newTestSession(t, 4)
	players := session.Players()

	t.Run("for_each_visits_seats_in_order", func(t *testing.T) {
		order := game.NewTurnOrder(players)
		var results []string
		order.ForEach(func(player *game.Player) {
			results = append(results, fmt.Sprintf("called for %d", player.ID()))
		})
		require.Equal(t, []string{"called for 1", "called for 2", "called for 3", "called for 4"}, results)
	})

	t.Run("reverse_flips_in_place", func(t *testing.T) {
		order := game.NewTurnOrder(players)
		order.Reverse()
		assert.Equal(t, []*game.Player{players[3], players[2], players[1], players[0]}, order.Players())
		order.Reverse()
		assert.Equal(t, players, order.Players())
	})

	t.Run("without_keeps_the_order_of_the_rest", func(t *testing.T) {
		order := game.NewTurnOrder(players)
		order.Reverse()
		assert.Equal(t, []*game.Player{players[3], players[2], players[1]}, order.Without(players[0]))
		assert.Equal(t, 4, order.Len())
	})
}
