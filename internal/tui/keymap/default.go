package keymap

// DefaultKeymap returns the board's key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default kanban key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal:  defaultNormalBindings(),
			ModeForm:    defaultTextEntryBindings(ModeForm),
			ModeEdit:    defaultTextEntryBindings(ModeEdit),
			ModeConfirm: defaultConfirmBindings(),
		},
	}
}

func hidden(kb KeyBinding) KeyBinding {
	kb.Hidden = true
	return kb
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Navigation
			Bind("h", CmdPrevColumn, "Previous column", "Navigation"),
			hidden(Bind("left", CmdPrevColumn, "Previous column", "Navigation")),
			Bind("l", CmdNextColumn, "Next column", "Navigation"),
			hidden(Bind("right", CmdNextColumn, "Next column", "Navigation")),
			Bind("k", CmdPrevCard, "Previous card", "Navigation"),
			hidden(Bind("up", CmdPrevCard, "Previous card", "Navigation")),
			Bind("j", CmdNextCard, "Next card", "Navigation"),
			hidden(Bind("down", CmdNextCard, "Next card", "Navigation")),
			hidden(Bind("g", CmdFirstCard, "First card", "Navigation")),
			hidden(Bind("G", CmdLastCard, "Last card", "Navigation")),

			// Card actions
			Bind("<", CmdMoveBack, "Move card back", "Card"),
			hidden(Bind("shift+left", CmdMoveBack, "Move card back", "Card")),
			hidden(Bind("H", CmdMoveBack, "Move card back", "Card")),
			Bind(">", CmdMoveForward, "Move card forward", "Card"),
			hidden(Bind("shift+right", CmdMoveForward, "Move card forward", "Card")),
			hidden(Bind("L", CmdMoveForward, "Move card forward", "Card")),
			Bind("e", CmdEditCard, "Edit card", "Card"),
			hidden(Bind("enter", CmdEditCard, "Edit card", "Card")),
			Bind("d", CmdDeleteCard, "Delete card", "Card"),
			hidden(Bind("x", CmdDeleteCard, "Delete card", "Card")),

			// Board
			Bind("n", CmdNewTask, "New task", "Board"),
			hidden(Bind("a", CmdNewTask, "New task", "Board")),
			Bind("r", CmdReload, "Reload tasks", "Board"),
			Bind("esc", CmdDismissError, "Dismiss error", "Board"),
			Bind("?", CmdToggleHelp, "Toggle help", "Board"),

			// Exit
			Bind("q", CmdQuit, "Quit", "Application"),
			hidden(Bind("ctrl+c", CmdQuit, "Quit", "Application")),
		},
	}
}

func defaultTextEntryBindings(mode Mode) *ModeBindings {
	return &ModeBindings{
		Mode: mode,
		Bindings: []KeyBinding{
			Bind("tab", CmdNextField, "Next field", "Editing"),
			Bind("shift+tab", CmdPrevField, "Previous field", "Editing"),
			Bind("ctrl+s", CmdSubmit, "Save", "Editing"),
			hidden(Bind("enter", CmdEnter, "Save from title, new line in description", "Editing")),
			Bind("esc", CmdCancel, "Cancel", "Editing"),
			hidden(Bind("ctrl+c", CmdQuit, "Quit", "Application")),
		},
	}
}

func defaultConfirmBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeConfirm,
		Bindings: []KeyBinding{
			Bind("y", CmdConfirmYes, "Delete", "Confirm"),
			hidden(Bind("s", CmdConfirmYes, "Delete", "Confirm")),
			hidden(Bind("Y", CmdConfirmYes, "Delete", "Confirm")),
			Bind("n", CmdConfirmNo, "Keep", "Confirm"),
			hidden(Bind("N", CmdConfirmNo, "Keep", "Confirm")),
			hidden(Bind("esc", CmdConfirmNo, "Keep", "Confirm")),
			hidden(Bind("ctrl+c", CmdQuit, "Quit", "Application")),
		},
	}
}
