package journal

import "errors"

// Sink receives one line per game event.
type Sink interface {
	Record(actor, message, gameName string) error
}

// Multi hands every line to each of its sinks.
type Multi []Sink

func (m Multi) Record(actor, message, gameName string) error {
	var errs []error
	for _, sink := range m {
		if err := sink.Record(actor, message, gameName); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CloseGame releases whatever the sinks hold for a finished game.
func (m Multi) CloseGame(gameName string) error {
	var errs []error
	for _, sink := range m {
		if closer, ok := sink.(interface{ CloseGame(string) error }); ok {
			if err := closer.CloseGame(gameName); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

type Discard struct{}

func (Discard) Record(string, string, string) error {
	return nil
}
