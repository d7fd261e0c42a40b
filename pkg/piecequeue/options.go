package piecequeue

import (
	"io"

	"go.uber.org/zap"
)

// Option configures a PieceQueue.
type Option func(*PieceQueue)

// WithOutput sets where confirmations and the queue display are written.
// Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(q *PieceQueue) {
		if w != nil {
			q.out = w
		}
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(q *PieceQueue) {
		if l != nil {
			q.log = l
		}
	}
}
