package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashCleanup restores the terminal before a crash report, set once the screen is up
var crashCleanup atomic.Pointer[func()]

// SetCrashCleanup registers the terminal restore run by HandleCrash
func SetCrashCleanup(fn func()) {
	crashCleanup.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
// Call as defer func() { core.HandleCrash(recover()) }()
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashCleanup.Load(); fn != nil {
		(*fn)()
	}

	// \r\n in case the terminal is still raw
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			HandleCrash(recover())
		}()
		fn()
	}()
}
