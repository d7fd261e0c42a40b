package piecequeue

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/huynhanx03/tetris-queue/pkg/common/apperr"
	"github.com/huynhanx03/tetris-queue/pkg/datastructs/queue"
	"github.com/huynhanx03/tetris-queue/pkg/piece"
)

// PieceQueue holds the upcoming pieces in arrival order.
// It owns its piece generator, so IDs are unique per PieceQueue.
// It is NOT thread-safe.
type PieceQueue struct {
	ring *queue.Ring[piece.Piece]
	gen  *piece.Generator
	out  io.Writer
	log  *zap.Logger
}

// New creates an empty PieceQueue holding at most capacity pieces.
func New(capacity int, gen *piece.Generator, opts ...Option) *PieceQueue {
	q := &PieceQueue{
		ring: queue.NewRing[piece.Piece](capacity),
		gen:  gen,
		out:  io.Discard,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(q)
	}
	q.log = q.log.Named(scope)
	return q
}

// IsEmpty reports whether no piece is queued.
func (q *PieceQueue) IsEmpty() bool {
	return q.ring.IsEmpty()
}

// IsFull reports whether the queue holds Capacity pieces.
func (q *PieceQueue) IsFull() bool {
	return q.ring.IsFull()
}

// Len returns the number of queued pieces.
func (q *PieceQueue) Len() int {
	return q.ring.Len()
}

// Capacity returns the maximum number of queued pieces.
func (q *PieceQueue) Capacity() int {
	return int(q.ring.Capacity())
}

// Pieces returns the queued pieces from front to back.
func (q *PieceQueue) Pieces() []piece.Piece {
	return q.ring.Items()
}

// Peek returns the next piece to be played without removing it.
func (q *PieceQueue) Peek() (piece.Piece, bool) {
	return q.ring.Peek()
}

// GeneratePiece creates a new piece with a random kind and the next ID.
func (q *PieceQueue) GeneratePiece() piece.Piece {
	return q.gen.Generate()
}

// Enqueue appends p at the back of the queue.
// Returns ErrQueueFull, leaving the queue unchanged, when there is no room.
func (q *PieceQueue) Enqueue(p piece.Piece) error {
	if !q.ring.Enqueue(p) {
		q.printf("\nERROR: the upcoming pieces queue is full! No more pieces can be added.\n")
		q.log.Warn("enqueue rejected", pieceFields(p, q.Len())...)
		return ErrQueueFull
	}

	q.printf("\nPIECE ADDED: %s added to the back of the queue.\n", p)
	q.log.Debug("piece enqueued", pieceFields(p, q.Len())...)
	return nil
}

// Dequeue removes and returns the piece at the front of the queue.
// Returns ErrQueueEmpty when there is nothing to play.
func (q *PieceQueue) Dequeue() (piece.Piece, error) {
	p, ok := q.ring.Dequeue()
	if !ok {
		q.printf("\nERROR: the upcoming pieces queue is empty! No piece to play.\n")
		q.log.Warn("dequeue rejected", zap.Int("queue.len", 0))
		return piece.Piece{}, ErrQueueEmpty
	}

	q.printf("\nPIECE PLAYED: %s removed from the front of the queue.\n", p)
	q.log.Debug("piece dequeued", pieceFields(p, q.Len())...)
	return p, nil
}

// Display writes the occupancy and the queued pieces from front to back.
func (q *PieceQueue) Display() {
	q.printf("\n--- UPCOMING PIECES (%d/%d) ---\n", q.Len(), q.Capacity())

	if q.IsEmpty() {
		q.printf("The piece queue is empty.\n")
		return
	}

	var sb strings.Builder
	sb.WriteString("Queue: ")
	for _, p := range q.ring.All() {
		sb.WriteString(p.String())
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	q.printf("%s", sb.String())
}

// Initialize fills the queue with n freshly generated pieces.
// It is meant for startup. When n is negative or exceeds the free slots it
// returns ErrInitOverflow before generating anything, so no IDs are consumed.
func (q *PieceQueue) Initialize(n int) error {
	if n < 0 || n > q.ring.Available() {
		q.log.Error("initialize rejected",
			zap.Int("requested", n),
			zap.Int("available", q.ring.Available()),
		)
		return apperr.Wrap(ErrInitOverflow, CodeInitOverflow,
			fmt.Sprintf("cannot place %d pieces in %d free slots", n, q.ring.Available()))
	}

	q.printf("Initializing the piece queue with %d pieces...\n", n)
	for i := 0; i < n; i++ {
		q.ring.Enqueue(q.gen.Generate())
	}
	q.printf("Initialization complete. Next piece ID: %d\n", q.gen.NextID())
	q.log.Info("queue initialized",
		zap.Int("queue.len", q.Len()),
		zap.Int64("next_id", q.gen.NextID()),
	)
	return nil
}

func (q *PieceQueue) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(q.out, format, args...)
}

func pieceFields(p piece.Piece, length int) []zap.Field {
	return []zap.Field{
		zap.Stringer("piece.kind", p.Kind),
		zap.Int64("piece.id", p.ID),
		zap.Int("queue.len", length),
	}
}
