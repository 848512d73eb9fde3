//go:build !unix

package terminal

// resetTerminalMode has nothing to restore without a raw backend
func resetTerminalMode() {}
