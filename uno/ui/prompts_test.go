package ui_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func newConsole(input string) (*ui.Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return ui.NewConsole(strings.NewReader(input), out, 0), out
}

func TestPromptIntegerInRange(t *testing.T) {
	console, out := newConsole("x\n12\n3\n")
	n, err := console.PromptIntegerInRange(2, 10, "How many?")
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Contains(t, out.String(), "Invalid number input")
	require.Contains(t, out.String(), "Input out of range (minimum: 2, maximum: 10)")
}

func TestPromptColor(t *testing.T) {
	console, out := newConsole("purple\ng\n")
	picked, err := console.PromptColor()
	require.NoError(t, err)
	require.Equal(t, color.Green, picked)
	require.Contains(t, out.String(), "Unknown color 'purple'")
}

func TestPromptCardSelection(t *testing.T) {
	cards := []*card.Card{card.NewNumberCard(color.Red, 1), card.NewWildCard(card.Wild)}

	t.Run("selects_by_label", func(t *testing.T) {
		console, out := newConsole("c\nb\n")
		index, command, err := console.PromptCardSelection(cards, ui.CommandDraw)
		require.NoError(t, err)
		require.Equal(t, 1, index)
		require.Empty(t, command)
		require.Contains(t, out.String(), "No card assigned to 'C'")
		require.Contains(t, out.String(), "draw (enter DRAW)")
	})

	t.Run("returns_commands", func(t *testing.T) {
		console, _ := newConsole("uno\n")
		index, command, err := console.PromptCardSelection(cards, ui.CommandDraw, ui.CommandUno)
		require.NoError(t, err)
		require.Equal(t, -1, index)
		require.Equal(t, ui.CommandUno, command)
	})

	t.Run("end_of_input", func(t *testing.T) {
		console, _ := newConsole("")
		_, _, err := console.PromptCardSelection(cards)
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestPromptString(t *testing.T) {
	console, out := newConsole("\n  friday  \n")
	name, err := console.PromptString("Name?")
	require.NoError(t, err)
	require.Equal(t, "friday", name)
	require.Contains(t, out.String(), "Invalid text input")
}
