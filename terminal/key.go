// @lixen: #focus{sys[io,input]}
package terminal

import (
	"strings"
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter, contiguous so byte 0x01..0x1A maps by offset
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// CSI final byte -> key (ESC [ A, ESC [ 1 ; 5 A)
var csiFinalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'Z': KeyBacktab,
}

// CSI number before '~' -> key (ESC [ 3 ~, ESC [ 15 ; 2 ~)
var csiTildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// SS3 final byte -> key (ESC O A)
var ss3Keys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'M': KeyEnter, // Keypad Enter
}

// lookupCSI decodes the bytes after ESC [ up to and including the final byte
// Accepts at most two numeric parameters; the second is the xterm modifier (1 + bitmask)
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if len(seq) == 0 {
		return KeyNone, ModNone, false
	}
	final := seq[len(seq)-1]

	var params [2]int
	n := 0
	seen := false
	for _, b := range seq[:len(seq)-1] {
		switch {
		case b >= '0' && b <= '9':
			params[n] = params[n]*10 + int(b-'0')
			if params[n] > 999 {
				return KeyNone, ModNone, false
			}
			seen = true
		case b == ';':
			n++
			if n >= len(params) {
				return KeyNone, ModNone, false
			}
		default:
			return KeyNone, ModNone, false
		}
	}

	mod := ModNone
	if n == 1 && params[1] > 1 {
		mod = Modifier(params[1] - 1)
	}
	if final == 'Z' {
		mod |= ModShift
	}

	if final == '~' {
		if !seen {
			return KeyNone, ModNone, false
		}
		k, ok := csiTildeKeys[params[0]]
		return k, mod, ok
	}

	k, ok := csiFinalKeys[final]
	return k, mod, ok
}

// lookupSS3 decodes the byte after ESC O
func lookupSS3(b byte) (Key, bool) {
	k, ok := ss3Keys[b]
	return k, ok
}

// keyToName maps non-letter keys to display names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyCtrlSpace:        "ctrl_space",
	KeyCtrlBackslash:    "ctrl_backslash",
	KeyCtrlBracketRight: "ctrl_bracket_right",
	KeyCtrlCaret:        "ctrl_caret",
	KeyCtrlUnderscore:   "ctrl_underscore",
}

// KeyName returns the canonical name for a key
// Returns empty string for KeyNone and KeyRune
func KeyName(k Key) string {
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return "ctrl_" + string(rune('a'+int(k-KeyCtrlA)))
	}
	return keyToName[k]
}

// String renders the event's key for logs, e.g. "q", "alt+x", "ctrl_c"
func (e Event) String() string {
	var sb strings.Builder
	if e.Modifiers&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if e.Modifiers&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if e.Modifiers&ModShift != 0 {
		sb.WriteString("shift+")
	}
	if e.Key == KeyRune {
		sb.WriteRune(e.Rune)
	} else if name := KeyName(e.Key); name != "" {
		sb.WriteString(name)
	} else {
		sb.WriteString("none")
	}
	return sb.String()
}
