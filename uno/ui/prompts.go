package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

const (
	CommandDraw = "DRAW"
	CommandUno  = "UNO"
)

func (c *Console) PromptString(message string) (string, error) {
	for {
		c.Println(message)
		input, err := c.readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			c.Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func (c *Console) promptInteger(message string) (int, error) {
	for {
		input, err := c.PromptString(message)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(input)
		if err != nil {
			c.Println("Invalid number input")
			continue
		}
		return n, nil
	}
}

func (c *Console) promptUppercaseString(message string) (string, error) {
	input, err := c.PromptString(message)
	return strings.ToUpper(input), err
}

func (c *Console) PromptIntegerInRange(minimum int, maximum int, message string) (int, error) {
	for {
		input, err := c.promptInteger(message)
		if err != nil {
			return 0, err
		}
		if input < minimum || input > maximum {
			c.Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input, nil
	}
}

// PromptCardSelection asks for one of cards, or one of the extra commands.
// It returns the index of the chosen card, or -1 and the command.
func (c *Console) PromptCardSelection(cards []*card.Card, commands ...string) (int, string, error) {
	options := labels(len(cards))
	lines := []string{"Select a card to play:"}
	for i, option := range options {
		lines = append(lines, fmt.Sprintf("%s (enter %s)", cards[i].Paint(), option))
	}
	for _, command := range commands {
		lines = append(lines, fmt.Sprintf("%s (enter %s)", strings.ToLower(command), command))
	}
	message := strings.Join(lines, "\n")

	for {
		selected, err := c.promptUppercaseString(message)
		if err != nil {
			return -1, "", err
		}
		for _, command := range commands {
			if selected == command {
				return -1, command, nil
			}
		}
		for i, option := range options {
			if selected == option {
				return i, "", nil
			}
		}
		c.Printfln("No card assigned to '%s'", selected)
	}
}

func (c *Console) PromptColor() (color.Color, error) {
	message := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red.Paint(color.Red.Title()),
		color.Yellow.Paint(color.Yellow.Title()),
		color.Green.Paint(color.Green.Title()),
		color.Blue.Paint(color.Blue.Title()),
	)
	for {
		name, err := c.PromptString(message)
		if err != nil {
			return color.None, err
		}
		chosen, err := color.ByName(strings.ToLower(name))
		if err != nil {
			c.Printfln("Unknown color '%s'", name)
			continue
		}
		return chosen, nil
	}
}
