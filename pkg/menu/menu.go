package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/tetris-queue/pkg/common/apperr"
	"github.com/huynhanx03/tetris-queue/pkg/logger"
	"github.com/huynhanx03/tetris-queue/pkg/piecequeue"
)

const scope = "menu"

// CodeReadFailed marks input errors other than end of input.
const CodeReadFailed = 2001

// Option is a numbered menu choice.
type Option int

const (
	OptionExit   Option = 0
	OptionPlay   Option = 1
	OptionInsert Option = 2
)

// Menu drives a PieceQueue from line-oriented text input.
type Menu struct {
	queue *piecequeue.PieceQueue
	in    *bufio.Reader
	out   io.Writer
	log   *zap.Logger
}

// New creates a Menu reading selections from in and writing prompts to out.
func New(q *piecequeue.PieceQueue, in io.Reader, out io.Writer, l *zap.Logger) *Menu {
	return &Menu{
		queue: q,
		in:    bufio.NewReader(in),
		out:   out,
		log:   logger.OrNop(l).Named(scope),
	}
}

// Run loops until the exit option is chosen, input ends, or ctx is done.
// Queue errors and malformed input are reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.queue.Display()
		m.printOptions()

		opt, ok, err := m.readOption()
		if err == io.EOF {
			m.log.Info("input closed")
			m.printf("\n")
			return nil
		}
		if err != nil {
			return apperr.MapError(scope, err, CodeReadFailed, apperr.MsgReadFailed)
		}
		if !ok {
			m.printf("\nINVALID INPUT: please type a number.\n")
			continue
		}

		if done := m.dispatch(opt); done {
			return nil
		}
	}
}

// dispatch runs one option and reports whether the loop should stop.
func (m *Menu) dispatch(opt Option) bool {
	m.log.Debug("option selected", zap.Int("option", int(opt)))

	switch opt {
	case OptionPlay:
		// Empty queue is reported by the queue itself.
		_, _ = m.queue.Dequeue()
	case OptionInsert:
		_ = m.queue.Enqueue(m.queue.GeneratePiece())
	case OptionExit:
		m.printf("\nLeaving Tetris Stack... See you soon!\n")
		return true
	default:
		m.printf("\nINVALID OPTION: please choose 1, 2 or 0.\n")
	}
	return false
}

func (m *Menu) printOptions() {
	m.printf("\n--- Actions ---\n")
	m.printf("Code   | Action\n")
	m.printf("-------|------------------------------\n")
	m.printf("%d      | Play piece (dequeue)\n", OptionPlay)
	m.printf("%d      | Insert new piece (enqueue)\n", OptionInsert)
	m.printf("%d      | Exit\n", OptionExit)
	m.printf("--------------------------------------\n")
	m.printf("Choose an option: ")
}

// readOption reads the next non-blank line and parses its first field.
// The rest of the line is discarded. ok is false for non-integers.
func (m *Menu) readOption() (opt Option, ok bool, err error) {
	for {
		line, readErr := m.in.ReadString('\n')
		fields := strings.Fields(line)
		if len(fields) == 0 {
			if readErr == io.EOF {
				return 0, false, io.EOF
			}
			if readErr != nil {
				return 0, false, errors.WithStack(readErr)
			}
			continue
		}

		n, convErr := strconv.Atoi(fields[0])
		if convErr != nil {
			m.log.Debug("non-numeric input", zap.String("input", fields[0]))
			return 0, false, nil
		}
		return Option(n), true, nil
	}
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
