// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for full-screen animation.
//
// Features:
//   - Raw mode with saved-state restoration
//   - Alternate screen buffer, hidden cursor, auto-wrap disabled while active
//   - Buffered output flushed once per frame
//   - Raw stdin input parsing with bounded polling and escape sequence handling
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
