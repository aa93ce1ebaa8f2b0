package checkout

import (
	"sync"

	"freshmart/internal/model"

	"github.com/rs/zerolog"
)

// Log keeps the confirmed order summaries for the lifetime of the process so
// the track-order page can find them. Orders are never persisted; there is
// no store behind this.
type Log struct {
	mu     sync.Mutex
	byNum  map[string]model.OrderSummary
	latest string
	logger zerolog.Logger
}

// NewLog creates an empty order log.
func NewLog(logger zerolog.Logger) *Log {
	return &Log{
		byNum:  make(map[string]model.OrderSummary),
		logger: logger.With().Str("component", "order-log").Logger(),
	}
}

// Record stores a confirmed order summary.
func (l *Log) Record(summary model.OrderSummary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.byNum[summary.OrderNumber] = summary
	l.latest = summary.OrderNumber

	l.logger.Debug().
		Str("order_number", summary.OrderNumber).
		Msg("order recorded")
}

// GetByNumber returns the summary for an order number, or nil if unknown.
// The returned summary is a copy; the recorded one cannot be altered.
func (l *Log) GetByNumber(number string) *model.OrderSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	summary, ok := l.byNum[number]
	if !ok {
		return nil
	}
	summary.Lines = copyLines(summary.Lines)
	return &summary
}

// Latest returns the most recently confirmed order, or nil when none exists.
func (l *Log) Latest() *model.OrderSummary {
	l.mu.Lock()
	latest := l.latest
	l.mu.Unlock()

	if latest == "" {
		return nil
	}
	return l.GetByNumber(latest)
}
