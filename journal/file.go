package journal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// File appends "<n>. <message>" lines to <dir>/<gameName>.txt, carrying on
// the numbering of a file that already exists.
type File struct {
	dir     string
	mu      sync.Mutex
	loggers map[string]*gameLog
}

type gameLog struct {
	logger *logrus.Logger
	file   *os.File
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir %s: %w", dir, err)
	}
	return &File{dir: dir, loggers: make(map[string]*gameLog)}, nil
}

func (f *File) Record(actor, message, gameName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, err := f.open(gameName)
	if err != nil {
		return err
	}
	g.logger.WithField("actor", actor).Info(message)
	return nil
}

// Path is the file the lines of gameName go to.
func (f *File) Path(gameName string) string {
	return filepath.Join(f.dir, fileName(gameName)+".txt")
}

func (f *File) open(gameName string) (*gameLog, error) {
	if g, ok := f.loggers[gameName]; ok {
		return g, nil
	}
	path := f.Path(gameName)
	last, err := LastOrdinal(path)
	if err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetFormatter(&ordinalFormatter{last: last})
	logger.SetLevel(logrus.InfoLevel)

	g := &gameLog{logger: logger, file: file}
	f.loggers[gameName] = g
	return g, nil
}

// CloseGame releases the file of a finished game.
func (f *File) CloseGame(gameName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.loggers[gameName]
	if !ok {
		return nil
	}
	delete(f.loggers, gameName)
	return g.file.Close()
}

func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var first error
	for name, g := range f.loggers {
		if err := g.file.Close(); err != nil && first == nil {
			first = err
		}
		delete(f.loggers, name)
	}
	return first
}

type ordinalFormatter struct {
	last int
}

func (o *ordinalFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	o.last++
	return []byte(fmt.Sprintf("%d. %s\n", o.last, entry.Message)), nil
}

// LastOrdinal reads the number of the last line of a journal file, 0 when
// the file does not exist or holds no numbered line.
func LastOrdinal(path string) (int, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read journal %s: %w", path, err)
	}
	defer file.Close()

	var last string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			last = line
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read journal %s: %w", path, err)
	}
	ordinal, err := strconv.Atoi(strings.SplitN(last, ". ", 2)[0])
	if err != nil {
		return 0, nil
	}
	return ordinal, nil
}

func fileName(gameName string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, gameName)
}
