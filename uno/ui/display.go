package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Console reads commands and prints lines for one human player.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	pause time.Duration
	mu    sync.Mutex
}

// NewConsole prints to out and waits pause after every line.
func NewConsole(in io.Reader, out io.Writer, pause time.Duration) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, pause: pause}
}

func (c *Console) Printfln(format string, args ...interface{}) {
	c.Println(fmt.Sprintf(format, args...))
}

func (c *Console) Printlns(lines []string) {
	c.Println(strings.Join(lines, "\n"))
}

func (c *Console) Println(args ...interface{}) {
	c.mu.Lock()
	_, _ = fmt.Fprintln(c.out, args...)
	c.mu.Unlock()
	if c.pause > 0 {
		time.Sleep(c.pause)
	}
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}
