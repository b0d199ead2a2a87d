package feed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/llehouerou/toaster/internal/errmsg"
	"github.com/llehouerou/toaster/internal/toast"
)

// Feed reads r line by line and adds a toast per line to q on loop.
// Blank lines are skipped and lines longer than MaxLineBytes are truncated
// with a warning. When r is exhausted, Feed waits for the queue to
// drain (every toast removed) unless drain is false.
//
// Feed returns nil on clean EOF, ctx.Err() when cancelled and
// toast.ErrLoopStopped when the loop went away first.
func Feed(ctx context.Context, r io.Reader, loop *toast.Loop, q *toast.Queue, drain bool, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	lines := make(chan feedLine)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			text, truncated, err := readLine(br, MaxLineBytes)
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
			select {
			case lines <- feedLine{text: text, truncated: truncated}:
			case <-ctx.Done():
				return
			}
		}
	}()

	n := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fl, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read feed: %w", err)
					}
				default:
				}
				log.Debug("feed exhausted", zap.Int("lines", n))
				if !drain {
					return nil
				}
				return waitDrained(ctx, loop, q)
			}
			n++
			line := fl.text
			if fl.truncated {
				log.Warn(errmsg.FormatWith(errmsg.OpFeedParse, fmt.Sprintf("line %d", n), ErrLineTooLong),
					zap.Int("kept_bytes", len(line)))
			}

			t, err := ParseLine(line)
			if err != nil {
				if strings.TrimSpace(line) != "" {
					log.Warn(errmsg.FormatWith(errmsg.OpFeedParse, line, err), zap.Int("line", n))
				}
				continue
			}
			if err := loop.Do(func() { q.Add(t) }); err != nil {
				return err
			}
		}
	}
}

type feedLine struct {
	text      string
	truncated bool
}

// readLine reads one line without its terminator, keeping at most limit
// bytes. The rest of a longer line is discarded and reported as truncated.
func readLine(br *bufio.Reader, limit int) (string, bool, error) {
	var (
		buf       []byte
		truncated bool
	)
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return "", false, err
		}
		if room := limit - len(buf); len(chunk) > room {
			chunk = chunk[:max(room, 0)]
			truncated = true
		}
		buf = append(buf, chunk...)
		if !isPrefix {
			break
		}
	}
	if truncated {
		// Don't leave half a rune at the cut.
		for len(buf) > 0 && !utf8.Valid(buf) {
			buf = buf[:len(buf)-1]
		}
	}
	return string(buf), truncated, nil
}

// waitDrained blocks until q holds no toasts.
func waitDrained(ctx context.Context, loop *toast.Loop, q *toast.Queue) error {
	drained := make(chan struct{})
	var unsubscribe func()

	err := loop.Do(func() {
		if q.State().Len() == 0 {
			close(drained)
			return
		}
		done := false
		unsubscribe = q.Subscribe(func(s toast.State) {
			if done || s.Len() > 0 {
				return
			}
			done = true
			close(drained)
		})
	})
	if err != nil {
		return err
	}
	defer func() {
		if unsubscribe != nil {
			_ = loop.Do(unsubscribe)
		}
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-loop.Done():
		return toast.ErrLoopStopped
	}
}
