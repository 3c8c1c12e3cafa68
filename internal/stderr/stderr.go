//go:build !windows

// Package stderr captures output that C libraries (ALSA, PulseAudio) write
// directly to file descriptor 2 and forwards it to the log, so it does not
// corrupt the TUI.
package stderr

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"syscall"
)

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
)

// Start redirects fd 2 into the logger. Call it early in main, before the
// audio device is opened. On failure the program can continue; output
// just goes to the original stderr.
func Start(logger *slog.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if pipeRead != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr = orig
	pipeRead = r
	pipeWrite = w
	done = make(chan struct{})

	go forward(r, logger, done)
	return nil
}

func forward(r io.Reader, logger *slog.Logger, done chan<- struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logger.Warn("native stderr", "line", line)
		}
	}
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Use it for fatal errors that must stay visible.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()
	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(fd, []byte(msg))
}

// Stop restores the original stderr and waits for buffered lines to be
// logged.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if pipeRead == nil {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = -1

	// fd 2 no longer refers to the pipe, so closing the write end ends the
	// reader.
	pipeWrite.Close()
	<-done
	pipeRead.Close()
	pipeRead, pipeWrite = nil, nil
}
