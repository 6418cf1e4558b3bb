package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores the terminal; tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finisher

	// Swapped by tests
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashScreen registers the screen HandleCrash restores before printing
func SetCrashScreen(f Finisher) {
	crashMu.Lock()
	crashScreen = f
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints r with a stack trace and exits
// A nil r is ignored so it can be called as HandleCrash(recover())
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	scr := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	if scr != nil {
		scr.Fini()
	}

	// \r\n for raw mode in case Fini did not run
	fmt.Fprintf(crashOutput, "\r\n\x1b[31mROPESIM CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			HandleCrash(recover())
		}()
		fn()
	}()
}
