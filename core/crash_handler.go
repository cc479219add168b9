package core

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/pong/terminal"
)

var (
	cleanupMu    sync.Mutex
	crashCleanup func()
)

// SetCrashCleanup registers the function that restores the display before a crash report
// Without one, HandleCrash falls back to terminal.EmergencyReset
func SetCrashCleanup(fn func()) {
	cleanupMu.Lock()
	crashCleanup = fn
	cleanupMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	cleanupMu.Lock()
	cleanup := crashCleanup
	cleanupMu.Unlock()

	if cleanup != nil {
		cleanup()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	stack := debug.Stack()
	slog.Error("crash", "panic", r, "stack", string(stack))

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPONG CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash still restores the terminal
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
