package network

import (
	"time"

	"github.com/ratel-online/uno/journal"
	"github.com/ratel-online/uno/service"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// Tables holds what every table opened through a network front end shares.
type Tables struct {
	PlayerCount int
	HumanName   string
	PlayDelay   time.Duration
	DrawDelay   time.Duration
	Sink        journal.Sink
}

func (t Tables) config(name string, playerCount int, listeners ...interface{}) service.TableConfig {
	if playerCount == 0 {
		playerCount = t.PlayerCount
	}
	return service.TableConfig{
		Name:        name,
		PlayerCount: playerCount,
		HumanName:   t.HumanName,
		PlayDelay:   t.PlayDelay,
		DrawDelay:   t.DrawDelay,
		Sink:        t.Sink,
		Listeners:   listeners,
	}
}
