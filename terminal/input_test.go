package terminal

import (
	"testing"
	"time"
)

// collectEvents reads n events or fails after timeout
func collectEvents(t *testing.T, ch <-chan Event, n int, timeout time.Duration) []Event {
	t.Helper()
	events := make([]Event, 0, n)
	deadline := time.After(timeout)
	for len(events) < n {
		select {
		case ev := <-ch:
			events = append(events, ev)
		case <-deadline:
			t.Fatalf("Timed out after %d of %d events: %+v", len(events), n, events)
		}
	}
	return events
}

func startReader(t *testing.T, chunks ...string) (*inputReader, *fakeBackend) {
	t.Helper()
	b := newFakeBackend()
	for _, c := range chunks {
		b.reads <- []byte(c)
	}
	r := newInputReader(b)
	r.start()
	t.Cleanup(r.stop)
	return r, b
}

func TestInputReader_Keys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Event
	}{
		{
			name:  "runes",
			input: "qQ",
			want: []Event{
				{Type: EventKey, Key: KeyRune, Rune: 'q'},
				{Type: EventKey, Key: KeyRune, Rune: 'Q'},
			},
		},
		{
			name:  "ctrl c",
			input: "\x03",
			want:  []Event{{Type: EventKey, Key: KeyCtrlC}},
		},
		{
			name:  "enter and tab",
			input: "\r\t",
			want: []Event{
				{Type: EventKey, Key: KeyEnter},
				{Type: EventKey, Key: KeyTab},
			},
		},
		{
			name:  "arrow",
			input: "\x1b[A",
			want:  []Event{{Type: EventKey, Key: KeyUp}},
		},
		{
			name:  "ctrl right",
			input: "\x1b[1;5C",
			want:  []Event{{Type: EventKey, Key: KeyRight, Modifiers: ModCtrl}},
		},
		{
			name:  "delete tilde",
			input: "\x1b[3~",
			want:  []Event{{Type: EventKey, Key: KeyDelete}},
		},
		{
			name:  "ss3 f1",
			input: "\x1bOP",
			want:  []Event{{Type: EventKey, Key: KeyF1}},
		},
		{
			name:  "alt rune",
			input: "\x1bx",
			want:  []Event{{Type: EventKey, Key: KeyRune, Rune: 'x', Modifiers: ModAlt}},
		},
		{
			name:  "unknown csi swallowed",
			input: "\x1b[99zq",
			want:  []Event{{Type: EventKey, Key: KeyRune, Rune: 'q'}},
		},
		{
			name:  "utf8",
			input: "é",
			want:  []Event{{Type: EventKey, Key: KeyRune, Rune: 'é'}},
		},
		{
			name:  "backspace",
			input: "\x7f",
			want:  []Event{{Type: EventKey, Key: KeyBackspace}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := startReader(t, tt.input)
			got := collectEvents(t, r.events(), len(tt.want), time.Second)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Event %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestInputReader_SplitSequences(t *testing.T) {
	// Escape sequence and UTF-8 rune split across reads
	r, _ := startReader(t, "\x1b", "[B", "\xc3", "\xa9")
	got := collectEvents(t, r.events(), 2, time.Second)
	if got[0].Key != KeyDown {
		t.Errorf("Expected KeyDown, got %+v", got[0])
	}
	if got[1].Key != KeyRune || got[1].Rune != 'é' {
		t.Errorf("Expected rune é, got %+v", got[1])
	}
}

func TestInputReader_LoneEscape(t *testing.T) {
	r, _ := startReader(t, "\x1b")
	got := collectEvents(t, r.events(), 1, time.Second)
	if got[0].Type != EventKey || got[0].Key != KeyEscape || got[0].Modifiers != ModNone {
		t.Errorf("Expected bare Escape after timeout, got %+v", got[0])
	}
}

func TestInputReader_EscapeWaitsForTimeout(t *testing.T) {
	b := newFakeBackend()
	r := newInputReader(b)

	now := time.Unix(1000, 0)
	r.now = func() time.Time { return now }
	r.buf = append(r.buf, 0x1b)
	r.escAt = now

	now = now.Add(10 * time.Millisecond)
	r.flushEscape()
	select {
	case ev := <-r.events():
		t.Fatalf("Escape reported before timeout: %+v", ev)
	default:
	}

	now = now.Add(time.Second)
	r.flushEscape()
	select {
	case ev := <-r.events():
		if ev.Key != KeyEscape {
			t.Errorf("Expected Escape, got %+v", ev)
		}
	default:
		t.Fatal("Expected Escape after timeout")
	}
	if len(r.buf) != 0 {
		t.Errorf("Expected buffer cleared, got %q", r.buf)
	}
}

func TestInputReader_EOFCloses(t *testing.T) {
	b := newFakeBackend()
	close(b.reads)
	r := newInputReader(b)
	r.start()
	defer r.stop()

	got := collectEvents(t, r.events(), 1, time.Second)
	if got[0].Type != EventClosed {
		t.Errorf("Expected EventClosed on EOF, got %+v", got[0])
	}
}

func TestInputReader_StopIdempotent(t *testing.T) {
	b := newFakeBackend()
	r := newInputReader(b)
	r.start()
	r.stop()
	r.stop()
	// Start after stop must not relaunch
	r.start()

	got := collectEvents(t, r.events(), 1, time.Second)
	if got[0].Type != EventClosed {
		t.Errorf("Expected EventClosed after stop, got %+v", got[0])
	}
}

func TestLookupCSI(t *testing.T) {
	tests := []struct {
		seq     string
		wantKey Key
		wantMod Modifier
		wantOK  bool
	}{
		{seq: "A", wantKey: KeyUp, wantOK: true},
		{seq: "1;2D", wantKey: KeyLeft, wantMod: ModShift, wantOK: true},
		{seq: "1;8H", wantKey: KeyHome, wantMod: ModShift | ModAlt | ModCtrl, wantOK: true},
		{seq: "15~", wantKey: KeyF5, wantOK: true},
		{seq: "24;5~", wantKey: KeyF12, wantMod: ModCtrl, wantOK: true},
		{seq: "Z", wantKey: KeyBacktab, wantMod: ModShift, wantOK: true},
		{seq: "~", wantOK: false},
		{seq: "1;2;3A", wantOK: false},
		{seq: "99~", wantOK: false},
		{seq: "?1h", wantOK: false},
	}
	for _, tt := range tests {
		k, m, ok := lookupCSI([]byte(tt.seq))
		if ok != tt.wantOK {
			t.Errorf("%q: expected ok=%v, got %v", tt.seq, tt.wantOK, ok)
			continue
		}
		if ok && (k != tt.wantKey || m != tt.wantMod) {
			t.Errorf("%q: expected %v/%v, got %v/%v", tt.seq, tt.wantKey, tt.wantMod, k, m)
		}
	}
}

func TestParseControl_CtrlLetters(t *testing.T) {
	if ev := parseControl(0x01); ev.Key != KeyCtrlA {
		t.Errorf("Expected Ctrl+A, got %v", ev.Key)
	}
	if ev := parseControl(0x03); ev.Key != KeyCtrlC {
		t.Errorf("Expected Ctrl+C, got %v", ev.Key)
	}
	if ev := parseControl(0x1a); ev.Key != KeyCtrlZ {
		t.Errorf("Expected Ctrl+Z, got %v", ev.Key)
	}
	if ev := parseControl(0x08); ev.Key != KeyBackspace {
		t.Errorf("Expected Backspace for 0x08, got %v", ev.Key)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{ev: Event{Key: KeyRune, Rune: 'q'}, want: "q"},
		{ev: Event{Key: KeyEscape}, want: "escape"},
		{ev: Event{Key: KeyCtrlC}, want: "ctrl_c"},
		{ev: Event{Key: KeyRune, Rune: 'x', Modifiers: ModAlt}, want: "alt+x"},
		{ev: Event{Key: KeyNone}, want: "none"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
