// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per input mode so the update loop only has to ask
// which command a key means in the current mode.
package keymap

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNormal  Mode = "normal"  // Navigating the board
	ModeForm    Mode = "form"    // Typing into the creation form
	ModeEdit    Mode = "edit"    // Editing a card in place
	ModeConfirm Mode = "confirm" // Answering the delete confirmation
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	// Navigation
	CmdPrevColumn Command = "prev_column"
	CmdNextColumn Command = "next_column"
	CmdPrevCard   Command = "prev_card"
	CmdNextCard   Command = "next_card"
	CmdFirstCard  Command = "first_card"
	CmdLastCard   Command = "last_card"

	// Card actions
	CmdMoveForward Command = "move_forward"
	CmdMoveBack    Command = "move_back"
	CmdEditCard    Command = "edit_card"
	CmdDeleteCard  Command = "delete_card"

	// Board actions
	CmdNewTask      Command = "new_task"
	CmdReload       Command = "reload"
	CmdDismissError Command = "dismiss_error"
	CmdToggleHelp   Command = "toggle_help"

	// Exit
	CmdQuit Command = "quit"
)

// Text entry commands (form and edit modes)
const (
	CmdNextField Command = "next_field"
	CmdPrevField Command = "prev_field"
	CmdSubmit    Command = "submit"
	CmdEnter     Command = "enter"
	CmdCancel    Command = "cancel"
)

// Confirm mode commands
const (
	CmdConfirmYes Command = "confirm_yes"
	CmdConfirmNo  Command = "confirm_no"
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var s string
	if m&ModCtrl != 0 {
		s += "ctrl+"
	}
	if m&ModAlt != 0 {
		s += "alt+"
	}
	if m&ModShift != 0 {
		s += "shift+"
	}
	return s
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding.
	// For rune keys, use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is the English help text. The UI shows the translated
	// text for Command when one exists.
	Description string

	// Category groups related bindings together in help display.
	Category string

	// Hidden bindings work but are left out of the help bar.
	Hidden bool
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}

	switch kb.Rune {
	case ' ':
		return prefix + "space"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap.
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// HelpEntry is one line of help: every key for a command.
type HelpEntry struct {
	Keys        []string
	Command     Command
	Description string
	Category    string
}

// KeyList joins the keys with "/".
func (h HelpEntry) KeyList() string {
	return strings.Join(h.Keys, "/")
}

// Help collapses a mode's visible bindings into one entry per command, in
// declaration order.
func (km *Keymap) Help(mode Mode) []HelpEntry {
	var entries []HelpEntry
	index := make(map[Command]int)
	for _, b := range km.GetModeBindings(mode) {
		if b.Hidden {
			continue
		}
		if i, ok := index[b.Command]; ok {
			entries[i].Keys = append(entries[i].Keys, b.String())
			continue
		}
		index[b.Command] = len(entries)
		entries = append(entries, HelpEntry{
			Keys:        []string{b.String()},
			Command:     b.Command,
			Description: b.Description,
			Category:    b.Category,
		})
	}
	return entries
}

// GetCategories returns all unique categories in a mode's bindings.
func (km *Keymap) GetCategories(mode Mode) []string {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var categories []string

	for _, binding := range mb.Bindings {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}

// ParseKeySpec parses a key specification string into KeyType, Rune, and Modifiers.
// Examples: "ctrl+s", "shift+tab", "j", "enter", "alt+left"
func ParseKeySpec(spec string) (keyType tea.KeyType, r rune, mods Modifier, err error) {
	remaining := spec
	for {
		switch {
		case len(remaining) > 5 && remaining[:5] == "ctrl+":
			mods |= ModCtrl
			remaining = remaining[5:]
		case len(remaining) > 4 && remaining[:4] == "alt+":
			mods |= ModAlt
			remaining = remaining[4:]
		case len(remaining) > 6 && remaining[:6] == "shift+":
			mods |= ModShift
			remaining = remaining[6:]
		default:
			goto parseKey
		}
	}

parseKey:
	switch remaining {
	case "enter":
		return tea.KeyEnter, 0, mods, nil
	case "tab":
		if mods&ModShift != 0 {
			return tea.KeyShiftTab, 0, mods &^ ModShift, nil
		}
		return tea.KeyTab, 0, mods, nil
	case "esc", "escape":
		return tea.KeyEsc, 0, mods, nil
	case "space":
		return tea.KeySpace, 0, mods, nil
	case "backspace":
		return tea.KeyBackspace, 0, mods, nil
	case "delete":
		return tea.KeyDelete, 0, mods, nil
	case "up":
		return tea.KeyUp, 0, mods, nil
	case "down":
		return tea.KeyDown, 0, mods, nil
	case "left":
		if mods&ModShift != 0 {
			return tea.KeyShiftLeft, 0, mods &^ ModShift, nil
		}
		return tea.KeyLeft, 0, mods, nil
	case "right":
		if mods&ModShift != 0 {
			return tea.KeyShiftRight, 0, mods &^ ModShift, nil
		}
		return tea.KeyRight, 0, mods, nil
	case "home":
		return tea.KeyHome, 0, mods, nil
	case "end":
		return tea.KeyEnd, 0, mods, nil
	}

	// ctrl+letter is its own key type in bubbletea
	if mods&ModCtrl != 0 && len(remaining) == 1 {
		ch := remaining[0]
		if ch >= 'a' && ch <= 'z' {
			return tea.KeyCtrlA + tea.KeyType(ch-'a'), 0, mods &^ ModCtrl, nil
		}
	}

	if runes := []rune(remaining); len(runes) == 1 {
		return tea.KeyRunes, runes[0], mods, nil
	}

	return 0, 0, 0, fmt.Errorf("unrecognized key spec: %s", spec)
}

// Bind builds a binding from a key spec. It panics on a malformed spec, so
// it is meant for static tables.
func Bind(spec string, cmd Command, description, category string) KeyBinding {
	keyType, r, mods, err := ParseKeySpec(spec)
	if err != nil {
		panic(err)
	}
	return KeyBinding{
		KeyType:     keyType,
		Rune:        r,
		Modifiers:   mods,
		Command:     cmd,
		Description: description,
		Category:    category,
	}
}
