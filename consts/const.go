package consts

import (
	"time"
)

type Mode string

const (
	ModeConsole Mode = "console"
	ModeTCP     Mode = "tcp"
	ModeHTTP    Mode = "http"
)

const (
	MinPlayers = 2
	MaxPlayers = 10

	StartingHandSize = 7
	// ReshuffleThreshold is the draw pile size below which the discard pile is recycled.
	ReshuffleThreshold = 4

	DrawTwoAmount  = 2
	WildFourAmount = 4
	// UnoPenalty is owed by a human left with one card who did not call UNO.
	UnoPenalty = 2

	HumanName = "Player"

	PlayDelay = 1 * time.Second
	DrawDelay = 200 * time.Millisecond

	TableIdleTimeout = 30 * time.Minute
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

const (
	CodeIllegalMove = 10 + iota
	CodeExhausted
	CodeInvalidSetup
	CodeNotYourTurn
	CodeNotFound
)

var (
	ErrorsIllegalMove        = NewErr(CodeIllegalMove, false, "Illegal move. ")
	ErrorsCardNotInHand      = NewErr(CodeIllegalMove, false, "Card is not in hand. ")
	ErrorsColorInvalid       = NewErr(CodeIllegalMove, false, "Color invalid. ")
	ErrorsColorAlreadyChosen = NewErr(CodeIllegalMove, false, "Color already chosen for this card. ")
	ErrorsNotWild            = NewErr(CodeIllegalMove, false, "Only wild cards take a color. ")
	ErrorsCannotPass         = NewErr(CodeIllegalMove, false, "Cannot pass while a card can be drawn or played. ")
	ErrorsUnoNotAllowed      = NewErr(CodeIllegalMove, false, "UNO can only be called with one card left or when about to play the second to last. ")
	ErrorsDrawOwed           = NewErr(CodeIllegalMove, false, "Draw the owed cards first. ")

	ErrorsPileExhausted = NewErr(CodeExhausted, false, "No cards available. ")

	ErrorsPlayerCountInvalid = NewErr(CodeInvalidSetup, false, "Player count invalid. ")
	ErrorsGameNameInvalid    = NewErr(CodeInvalidSetup, false, "Game name invalid. ")
	ErrorsBotNamesExhausted  = NewErr(CodeInvalidSetup, false, "Not enough bot names. ")
	ErrorsNoOpener           = NewErr(CodeInvalidSetup, false, "No number card to open with. ")

	ErrorsGameOver    = NewErr(CodeNotYourTurn, true, "Game over. ")
	ErrorsBotsRunning = NewErr(CodeNotYourTurn, false, "Bots are playing. ")

	ErrorsTableNotFound = NewErr(CodeNotFound, true, "Table not found. ")
)
