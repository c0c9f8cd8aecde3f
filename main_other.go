//go:build !windows

package main

// setupChrome is a no-op on non-Windows platforms; the stock window
// decorations stay in place.
func (a *App) setupChrome() {
	// No-op
}

// teardownChrome is a no-op on non-Windows platforms
func (a *App) teardownChrome() {
	// No-op
}
