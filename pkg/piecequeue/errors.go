package piecequeue

import "github.com/huynhanx03/tetris-queue/pkg/common/apperr"

const scope = "piecequeue"

// Error codes for queue operations.
const (
	CodeQueueFull    = 1001
	CodeQueueEmpty   = 1002
	CodeInitOverflow = 1003
)

var (
	// ErrQueueFull is returned by Enqueue when every slot is taken.
	ErrQueueFull = apperr.NewError(scope, CodeQueueFull, apperr.MsgEnqueueFailed+": queue is full", nil)

	// ErrQueueEmpty is returned by Dequeue when there is nothing to play.
	ErrQueueEmpty = apperr.NewError(scope, CodeQueueEmpty, apperr.MsgDequeueFailed+": queue is empty", nil)

	// ErrInitOverflow is returned by Initialize when n does not fit the free slots.
	ErrInitOverflow = apperr.NewError(scope, CodeInitOverflow, apperr.MsgInitFailed+": not enough free slots", nil)
)
