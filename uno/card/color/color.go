package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/uno/consts"
)

type Color int

const (
	None Color = iota
	Red
	Green
	Blue
	Yellow
)

// All lists the colors a player can pick for a wild card, in display order.
var All = []Color{Red, Green, Blue, Yellow}

var names = map[Color]string{
	None:   "NONE",
	Red:    "RED",
	Green:  "GREEN",
	Blue:   "BLUE",
	Yellow: "YELLOW",
}

var painters = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	None:   color.New(color.FgHiMagenta).SprintfFunc(),
}

var Stdout io.Writer = color.Output

func (c Color) String() string {
	name, ok := names[c]
	if !ok {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return name
}

// Title is the capitalised name, e.g. "Red".
func (c Color) Title() string {
	name := c.String()
	return name[:1] + strings.ToLower(name[1:])
}

func (c Color) Valid() bool {
	return c >= Red && c <= Yellow
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	painter, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return painter(format, args...)
}

func ByName(name string) (Color, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, c := range All {
		if names[c] == upper || names[c][:1] == upper {
			return c, nil
		}
	}
	return None, consts.ErrorsColorInvalid
}
