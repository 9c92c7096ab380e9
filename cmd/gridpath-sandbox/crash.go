package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu   sync.Mutex
	crashFini func()
)

// setCrashScreen registers the terminal teardown run before a crash report
func setCrashScreen(fini func()) {
	crashMu.Lock()
	crashFini = fini
	crashMu.Unlock()
}

// handleCrash restores the terminal, prints the stack trace and exits
func handleCrash(r any) {
	if r == nil {
		return
	}
	crashMu.Lock()
	fini := crashFini
	crashMu.Unlock()
	if fini != nil {
		fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mSANDBOX CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// goSafe runs fn in a goroutine that reports panics through handleCrash
func goSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		fn()
	}()
}
