package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyBindingMatches(t *testing.T) {
	tests := []struct {
		name     string
		binding  KeyBinding
		msg      tea.KeyMsg
		expected bool
	}{
		{
			name:     "simple rune match",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'},
			msg:      runeKey('j'),
			expected: true,
		},
		{
			name:     "simple rune mismatch",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'},
			msg:      runeKey('k'),
			expected: false,
		},
		{
			name:     "special key match",
			binding:  KeyBinding{KeyType: tea.KeyEnter},
			msg:      tea.KeyMsg{Type: tea.KeyEnter},
			expected: true,
		},
		{
			name:     "special key mismatch",
			binding:  KeyBinding{KeyType: tea.KeyEnter},
			msg:      tea.KeyMsg{Type: tea.KeyEsc},
			expected: false,
		},
		{
			name:     "alt required but missing",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt},
			msg:      runeKey('x'),
			expected: false,
		},
		{
			name:     "alt pressed but not bound",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			expected: false,
		},
		{
			name:     "rune binding against special key",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'q'},
			msg:      tea.KeyMsg{Type: tea.KeyCtrlC},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binding.Matches(tt.msg); got != tt.expected {
				t.Errorf("Matches() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		binding KeyBinding
		want    string
	}{
		{KeyBinding{KeyType: tea.KeyRunes, Rune: '>'}, ">"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: ' '}, "space"},
		{KeyBinding{KeyType: tea.KeyCtrlS}, "ctrl+s"},
		{KeyBinding{KeyType: tea.KeyEsc}, "esc"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt}, "alt+x"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.binding.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseKeySpec(t *testing.T) {
	tests := []struct {
		spec    string
		keyType tea.KeyType
		r       rune
		mods    Modifier
		wantErr bool
	}{
		{"j", tea.KeyRunes, 'j', ModNone, false},
		{"<", tea.KeyRunes, '<', ModNone, false},
		{"enter", tea.KeyEnter, 0, ModNone, false},
		{"esc", tea.KeyEsc, 0, ModNone, false},
		{"ctrl+s", tea.KeyCtrlS, 0, ModNone, false},
		{"ctrl+c", tea.KeyCtrlC, 0, ModNone, false},
		{"shift+tab", tea.KeyShiftTab, 0, ModNone, false},
		{"shift+right", tea.KeyShiftRight, 0, ModNone, false},
		{"alt+x", tea.KeyRunes, 'x', ModAlt, false},
		{"ç", tea.KeyRunes, 'ç', ModNone, false},
		{"hyper+x", 0, 0, ModNone, true},
		{"", 0, 0, ModNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			keyType, r, mods, err := ParseKeySpec(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKeySpec(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if keyType != tt.keyType || r != tt.r || mods != tt.mods {
				t.Errorf("ParseKeySpec(%q) = (%v, %q, %v), want (%v, %q, %v)",
					tt.spec, keyType, r, mods, tt.keyType, tt.r, tt.mods)
			}
		})
	}
}

func TestBind_PanicsOnBadSpec(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Bind() with a bad spec should panic")
		}
	}()
	Bind("not-a-key", CmdQuit, "", "")
}

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name string
		mode Mode
		msg  tea.KeyMsg
		want Command
	}{
		{"h moves left", ModeNormal, runeKey('h'), CmdPrevColumn},
		{"arrow moves right", ModeNormal, tea.KeyMsg{Type: tea.KeyRight}, CmdNextColumn},
		{"greater-than moves card", ModeNormal, runeKey('>'), CmdMoveForward},
		{"shift-left moves card back", ModeNormal, tea.KeyMsg{Type: tea.KeyShiftLeft}, CmdMoveBack},
		{"r reloads", ModeNormal, runeKey('r'), CmdReload},
		{"n opens form", ModeNormal, runeKey('n'), CmdNewTask},
		{"ctrl+c quits", ModeNormal, tea.KeyMsg{Type: tea.KeyCtrlC}, CmdQuit},
		{"tab switches field", ModeForm, tea.KeyMsg{Type: tea.KeyTab}, CmdNextField},
		{"ctrl+s saves form", ModeForm, tea.KeyMsg{Type: tea.KeyCtrlS}, CmdSubmit},
		{"esc cancels edit", ModeEdit, tea.KeyMsg{Type: tea.KeyEsc}, CmdCancel},
		{"y confirms", ModeConfirm, runeKey('y'), CmdConfirmYes},
		{"s confirms in portuguese", ModeConfirm, runeKey('s'), CmdConfirmYes},
		{"esc declines", ModeConfirm, tea.KeyMsg{Type: tea.KeyEsc}, CmdConfirmNo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.GetBinding(tt.msg, tt.mode)
			if !ok || got != tt.want {
				t.Errorf("GetBinding() = (%q, %v), want %q", got, ok, tt.want)
			}
		})
	}

	t.Run("letters are not bound while typing", func(t *testing.T) {
		if cmd, ok := km.GetBinding(runeKey('q'), ModeForm); ok {
			t.Errorf("q in form mode bound to %q", cmd)
		}
	})

	t.Run("confirm mode ignores board keys", func(t *testing.T) {
		if cmd, ok := km.GetBinding(runeKey('r'), ModeConfirm); ok {
			t.Errorf("r in confirm mode bound to %q", cmd)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		if _, ok := km.GetBinding(runeKey('q'), Mode("bogus")); ok {
			t.Error("unknown mode should have no bindings")
		}
	})
}

func TestKeymap_Help(t *testing.T) {
	km := DefaultKeymap()
	entries := km.Help(ModeNormal)

	seen := make(map[Command]bool)
	for _, e := range entries {
		if seen[e.Command] {
			t.Errorf("command %q listed twice", e.Command)
		}
		seen[e.Command] = true
	}
	for _, cmd := range []Command{CmdPrevColumn, CmdMoveForward, CmdEditCard, CmdDeleteCard, CmdNewTask, CmdReload, CmdQuit} {
		if !seen[cmd] {
			t.Errorf("help is missing %q", cmd)
		}
	}
	if seen[CmdFirstCard] {
		t.Error("hidden binding shown in help")
	}

	if entries[0].KeyList() != "h" {
		t.Errorf("first entry keys = %q, want %q", entries[0].KeyList(), "h")
	}
}

func TestKeymap_GetCategories(t *testing.T) {
	km := DefaultKeymap()
	got := km.GetCategories(ModeNormal)
	want := []string{"Navigation", "Card", "Board", "Application"}
	if len(got) != len(want) {
		t.Fatalf("GetCategories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetCategories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

