//go:build !windows

// Package stderr captures writes to file descriptor 2 while the TUI owns the
// terminal. Code that bypasses os.Stderr (cgo, the runtime, D-Bus client
// libraries) would otherwise draw over the screen; captured lines are
// delivered on Messages instead.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	mu         sync.Mutex
	messages   chan string
	origStderr = -1
	pipeWrite  *os.File
)

// Start begins capturing stderr. The program can continue without capture
// when it returns an error.
func Start() error {
	mu.Lock()
	defer mu.Unlock()
	if messages != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr = orig
	pipeWrite = w
	ch := make(chan string, 100)
	messages = ch

	go func() {
		defer close(ch)
		defer r.Close()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case ch <- line:
			default:
				// full, drop
			}
		}
	}()

	return nil
}

// Messages returns the captured lines, or nil when capture is not running.
// The channel is closed by Stop.
func Messages() <-chan string {
	mu.Lock()
	defer mu.Unlock()
	return messages
}

// Stop restores the original stderr.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if messages == nil {
		return
	}

	_ = unix.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = unix.Close(origStderr)
	origStderr = -1

	// Closing the write end ends the reader, which closes the channel.
	pipeWrite.Close()
	pipeWrite = nil
	messages = nil
}
