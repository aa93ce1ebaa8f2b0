package notify

import (
	"github.com/rs/zerolog"
)

// logNotifier writes notifications to the structured log. In a headless
// deployment this is the only place toasts surface.
type logNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger zerolog.Logger) Notifier {
	return &logNotifier{
		logger: logger.With().Str("component", "notifier").Logger(),
	}
}

// Show logs the notification at a level matching its kind.
func (n *logNotifier) Show(kind Kind, message string) {
	event := n.logger.Info()
	if kind == KindError {
		event = n.logger.Warn()
	}
	event.Str("kind", string(kind)).Msg(message)
}
