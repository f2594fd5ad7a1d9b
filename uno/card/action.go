package card

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
)

type Action int

const (
	Number Action = iota
	DrawTwo
	Reverse
	Skip
	Wild
	WildFour
)

var actionNames = map[Action]string{
	Number:   "NUMBER",
	DrawTwo:  "DRAWTWO",
	Reverse:  "REVERSE",
	Skip:     "SKIP",
	Wild:     "WILD",
	WildFour: "WILDFOUR",
}

var actionSymbols = map[Action]string{
	DrawTwo:  "+2!",
	Reverse:  "<=>",
	Skip:     "(/)",
	Wild:     "(*)",
	WildFour: "+4!",
}

func (a Action) String() string {
	name, ok := actionNames[a]
	if !ok {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return name
}

// DrawAmount is the number of cards the next player must draw, zero for non-draw actions.
func (a Action) DrawAmount() int {
	switch a {
	case DrawTwo:
		return consts.DrawTwoAmount
	case WildFour:
		return consts.WildFourAmount
	default:
		return 0
	}
}
