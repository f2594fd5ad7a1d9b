package card

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
)

type Kind int

const (
	KindNumber Kind = iota
	KindAction
	KindWild
)

const (
	actionScore = 20
	wildScore   = 50
)

// Card is one physical card. Two cards with the same face are still distinct
// instances, so cards are always handled by pointer.
type Card struct {
	kind   Kind
	color  color.Color
	action Action
	rank   int
	chosen color.Color
}

func NewNumberCard(c color.Color, rank int) *Card {
	return &Card{kind: KindNumber, color: c, action: Number, rank: rank}
}

func NewActionCard(c color.Color, action Action) *Card {
	return &Card{kind: KindAction, color: c, action: action}
}

func NewWildCard(action Action) *Card {
	return &Card{kind: KindWild, color: color.None, action: action}
}

func (c *Card) Kind() Kind {
	return c.kind
}

// Color is the printed color; None for wild cards.
func (c *Card) Color() color.Color {
	return c.color
}

func (c *Card) Action() Action {
	return c.action
}

func (c *Card) Rank() int {
	return c.rank
}

func (c *Card) IsNumber() bool {
	return c.kind == KindNumber
}

func (c *Card) IsAction() bool {
	return c.kind == KindAction
}

func (c *Card) IsWild() bool {
	return c.kind == KindWild
}

func (c *Card) Score() int {
	switch c.kind {
	case KindWild:
		return wildScore
	case KindAction:
		return actionScore
	default:
		return c.rank
	}
}

// ChosenColor is the color assigned to a played wild card, None until assigned.
func (c *Card) ChosenColor() color.Color {
	return c.chosen
}

// MatchColor is the color used for matching: the chosen color of a wild card
// once assigned, the printed color otherwise.
func (c *Card) MatchColor() color.Color {
	if c.kind == KindWild && c.chosen != color.None {
		return c.chosen
	}
	return c.color
}

// Choose assigns the color of a wild card. It can be done once.
func (c *Card) Choose(chosen color.Color) error {
	if c.kind != KindWild {
		return consts.ErrorsNotWild
	}
	if !chosen.Valid() {
		return consts.ErrorsColorInvalid
	}
	if c.chosen != color.None {
		return consts.ErrorsColorAlreadyChosen
	}
	c.chosen = chosen
	return nil
}

// Recycle clears the chosen color when a played wild goes back into the draw pile.
func (c *Card) Recycle() {
	c.chosen = color.None
}

func (c *Card) String() string {
	switch c.kind {
	case KindNumber:
		return fmt.Sprintf("NumberCard(%s, %d)", c.color, c.rank)
	case KindAction:
		return fmt.Sprintf("ActionCard(%s, %s)", c.color, c.action)
	default:
		return fmt.Sprintf("WildCard(%s)", c.action)
	}
}

// Paint renders the card for a terminal.
func (c *Card) Paint() string {
	switch c.kind {
	case KindNumber:
		return c.color.Paintf("[%d]", c.rank)
	case KindAction:
		return c.color.Paint(actionSymbols[c.action])
	default:
		if c.chosen != color.None {
			return c.chosen.Paint(actionSymbols[c.action])
		}
		return color.None.Paint(actionSymbols[c.action])
	}
}
