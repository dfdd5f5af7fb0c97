package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// crashState holds what a panic needs to leave the terminal usable
type crashState struct {
	mu      sync.Mutex
	cleanup func()
	report  io.Writer
	exit    func(code int)
	once    sync.Once
}

var crash = &crashState{report: os.Stderr, exit: os.Exit}

// SetCrashCleanup registers the terminal restore hook, typically screen.Fini
func SetCrashCleanup(fn func()) {
	crash.mu.Lock()
	crash.cleanup = fn
	crash.mu.Unlock()
}

// HandleCrash restores the terminal once, prints the panic value with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crash.once.Do(func() {
		crash.mu.Lock()
		cleanup, w, exit := crash.cleanup, crash.report, crash.exit
		crash.mu.Unlock()

		if cleanup != nil {
			cleanup()
		}

		// \r\n keeps the report readable if raw mode survived the cleanup
		fmt.Fprintf(w, "\r\n\x1b[31mPOPIT CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", debug.Stack())
		if f, ok := w.(*os.File); ok {
			f.Sync()
		}

		exit(1)
	})
}

// Go runs fn in a new goroutine, a panic inside it goes through HandleCrash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
