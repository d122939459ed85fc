// Package core holds process-wide crash handling
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashRestore func()

	// Overridden in tests
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// SetCrashHandler registers the terminal restore hook run before a crash report
// Typically the screen's Fini
func SetCrashHandler(restore func()) {
	crashMu.Lock()
	crashRestore = restore
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	restore := crashRestore
	crashRestore = nil
	crashMu.Unlock()

	// Terminal must leave raw mode before anything is printed
	if restore != nil {
		restore()
	}

	fmt.Fprintf(crashOutput, "\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
