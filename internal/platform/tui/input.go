package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
)

// ErrReceiverGone is returned by InputSource.Run when Stop was called while
// an event was waiting to be delivered.
var ErrReceiverGone = errors.New("tui: input receiver gone")

// DefaultEventBuffer is the capacity of the event channel.
const DefaultEventBuffer = 1024

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// InputSource reads raw terminal input, decodes it into key events and
// delivers them in order on a buffered channel. Sends block rather than drop.
type InputSource struct {
	r        *bufio.Reader
	events   chan core.KeyEvent
	done     chan struct{}
	stopOnce sync.Once
	logger   *log.Logger
}

// NewInputSource creates an input source reading from r.
// A buffer below 1 uses DefaultEventBuffer.
func NewInputSource(r io.Reader, buffer int, logger *log.Logger) *InputSource {
	if buffer < 1 {
		buffer = DefaultEventBuffer
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &InputSource{
		r:      bufio.NewReader(r),
		events: make(chan core.KeyEvent, buffer),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Events returns the receive side of the event channel.
// It is closed when Run returns.
func (s *InputSource) Events() <-chan core.KeyEvent {
	return s.events
}

// Stop tells Run that nobody will receive any more events.
// A blocked read is not interrupted; Run notices on its next send.
func (s *InputSource) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// Run reads until a quit key has been delivered, the input ends, or the
// receiver is gone. It blocks and is meant to run on its own goroutine.
// End of input returns nil.
func (s *InputSource) Run() error {
	defer close(s.events)

	for {
		ch, err := s.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("input ended")
				return nil
			}
			return fmt.Errorf("tui: read input: %w", err)
		}

		select {
		case s.events <- core.KeyDown(ch):
		case <-s.done:
			return ErrReceiverGone
		}

		if core.Decode(ch) == core.CommandQuit {
			s.logger.Debug("quit key read, input stopped")
			return nil
		}
	}
}

// next reads one key. Arrow keys map to w/a/s/d and Ctrl+C maps to q.
func (s *InputSource) next() (rune, error) {
	ch, _, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}

	switch ch {
	case keyCtrlC:
		return 'q', nil
	case keyEscape:
		return s.escape()
	}
	return ch, nil
}

// escape decodes the rest of an escape sequence. A lone escape is returned
// as is. A CSI or SS3 sequence is consumed whole; only arrow finals map to
// keys, with any modifier parameters ignored.
func (s *InputSource) escape() (rune, error) {
	if s.r.Buffered() == 0 {
		return keyEscape, nil
	}
	b, err := s.r.Peek(1)
	if err != nil || (b[0] != '[' && b[0] != 'O') {
		return keyEscape, nil
	}
	s.r.Discard(1)

	for {
		c, err := s.r.ReadByte()
		if err != nil {
			return 0, err
		}
		// parameter (0x30-0x3f) and intermediate (0x20-0x2f) bytes
		if c >= 0x20 && c <= 0x3f {
			continue
		}
		switch c {
		case 'A':
			return 'w', nil
		case 'B':
			return 's', nil
		case 'C':
			return 'd', nil
		case 'D':
			return 'a', nil
		}
		return keyEscape, nil
	}
}
